package systems

import (
	"testing"

	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func keys(down ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, d := range down {
			if d == k {
				return true
			}
		}
		return false
	}
}

func pad(x, y float64, down ...ebiten.StandardGamepadButton) padState {
	return padState{
		x: x,
		y: y,
		pressed: func(b ebiten.StandardGamepadButton) bool {
			for _, d := range down {
				if d == b {
					return true
				}
			}
			return false
		},
	}
}

func TestPollActionsKeyboard(t *testing.T) {
	p := pollActions(keys(ebiten.KeyA, ebiten.KeySpace), nil, cfg.Input)

	assert.True(t, p.keyboard)
	assert.False(t, p.gamepad)
	assert.Equal(t, simulation.Intents{Left: true, Jump: true}, intentsFor(p.held))
}

func TestPollActionsUpKeyJumpsAndNavigates(t *testing.T) {
	p := pollActions(keys(ebiten.KeyUp), nil, cfg.Input)

	assert.True(t, p.held[cfg.ActionJump])
	assert.True(t, p.held[cfg.ActionMenuUp])
}

func TestPollActionsStickRespectsDeadzone(t *testing.T) {
	p := pollActions(keys(), []padState{pad(-0.2, 0.1)}, cfg.Input)
	assert.Equal(t, simulation.Intents{}, intentsFor(p.held))
	assert.False(t, p.gamepad)

	p = pollActions(keys(), []padState{pad(0.9, 0.8)}, cfg.Input)
	assert.Equal(t, simulation.Intents{Right: true, Down: true}, intentsFor(p.held))
	assert.True(t, p.held[cfg.ActionMenuDown])
	assert.True(t, p.gamepad)
}

func TestPollActionsStickUpDoesNotJump(t *testing.T) {
	p := pollActions(keys(), []padState{pad(0, -1)}, cfg.Input)

	assert.False(t, p.held[cfg.ActionJump])
	assert.True(t, p.held[cfg.ActionMenuUp])
}

func TestPollActionsGamepadButtons(t *testing.T) {
	p := pollActions(keys(), []padState{pad(0, 0), pad(0, 0, ebiten.StandardGamepadButtonRightBottom)}, cfg.Input)

	assert.True(t, p.gamepad)
	assert.True(t, p.held[cfg.ActionJump])
	assert.True(t, p.held[cfg.ActionMenuSelect])
}

func TestApplyPolledTracksEdgesAndDevice(t *testing.T) {
	var input components.InputData

	applyPolled(&input, pollActions(keys(ebiten.KeyR), nil, cfg.Input))
	assert.True(t, GetAction(&input, cfg.ActionRestart).JustPressed)
	assert.False(t, input.UsingGamepad)

	applyPolled(&input, pollActions(keys(ebiten.KeyR), nil, cfg.Input))
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(&input, cfg.ActionRestart))

	applyPolled(&input, pollActions(keys(), []padState{pad(-1, 0)}, cfg.Input))
	assert.True(t, GetAction(&input, cfg.ActionRestart).JustReleased)
	assert.True(t, input.UsingGamepad)
	assert.Equal(t, simulation.Intents{Left: true}, input.Intents)

	applyPolled(&input, pollActions(keys(), nil, cfg.Input))
	assert.True(t, input.UsingGamepad, "idle frames keep the last device")
	assert.Equal(t, simulation.Intents{}, input.Intents)
}

func TestCycleSelectionWraps(t *testing.T) {
	var input components.InputData

	applyPolled(&input, pollActions(keys(ebiten.KeyUp), nil, cfg.Input))
	assert.Equal(t, 2, cycleSelection(&input, 0, 3))

	applyPolled(&input, pollActions(keys(ebiten.KeyUp), nil, cfg.Input))
	assert.Equal(t, 0, cycleSelection(&input, 0, 3), "held key only moves once")

	applyPolled(&input, pollActions(keys(ebiten.KeyDown), nil, cfg.Input))
	assert.Equal(t, 0, cycleSelection(&input, 2, 3))
	assert.Equal(t, 1, cycleSelection(&input, 1, 0))
}
