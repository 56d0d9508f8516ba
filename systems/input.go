package systems

import (
	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// padState is one standard-layout gamepad as seen this frame.
type padState struct {
	pressed func(ebiten.StandardGamepadButton) bool
	x, y    float64 // left stick
}

// polled is the binding table resolved against one frame of devices.
type polled struct {
	held     [cfg.ActionCount]bool
	keyboard bool
	gamepad  bool
}

// UpdateInput polls the keyboard and gamepads into the Input component.
// Must run BEFORE UpdateSimulation in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pads := make([]padState, 0, len(gamepadIDs))
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		pads = append(pads, padState{
			pressed: func(b ebiten.StandardGamepadButton) bool { return ebiten.IsStandardGamepadButtonPressed(id, b) },
			x:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			y:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		})
	}

	applyPolled(input, pollActions(ebiten.IsKeyPressed, pads, cfg.Input))
}

func applyPolled(input *components.InputData, p polled) {
	input.Previous = input.Current
	input.Current = p.held
	input.Intents = intentsFor(p.held)

	switch {
	case p.gamepad:
		input.UsingGamepad = true
	case p.keyboard:
		input.UsingGamepad = false
	}
}

func pollActions(keyDown func(ebiten.Key) bool, pads []padState, in cfg.InputConfig) polled {
	var p polled
	for id, binding := range in.Bindings {
		for _, key := range binding.Keys {
			if keyDown(key) {
				p.held[id] = true
				p.keyboard = true
			}
		}
		for _, pad := range pads {
			if stickHeld(pad, binding.Stick, in.AnalogDeadzone) {
				p.held[id] = true
				p.gamepad = true
			}
			for _, btn := range binding.Buttons {
				if pad.pressed(btn) {
					p.held[id] = true
					p.gamepad = true
				}
			}
		}
	}
	return p
}

func stickHeld(pad padState, dir cfg.StickDir, deadzone float64) bool {
	switch dir {
	case cfg.StickLeft:
		return pad.x < -deadzone
	case cfg.StickRight:
		return pad.x > deadzone
	case cfg.StickUp:
		return pad.y < -deadzone
	case cfg.StickDown:
		return pad.y > deadzone
	}
	return false
}

// intentsFor maps held actions to one simulation tick. Movement is
// level-triggered, so a held action acts every tick.
func intentsFor(held [cfg.ActionCount]bool) simulation.Intents {
	return simulation.Intents{
		Left:  held[cfg.ActionMoveLeft],
		Right: held[cfg.ActionMoveRight],
		Down:  held[cfg.ActionMoveDown],
		Jump:  held[cfg.ActionJump],
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// cycleSelection moves sel through n wrapping options on menu up/down edges.
func cycleSelection(input *components.InputData, sel, n int) int {
	if n == 0 {
		return sel
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		sel = (sel - 1 + n) % n
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		sel = (sel + 1) % n
	}
	return sel
}
