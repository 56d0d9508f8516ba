package systems

import (
	"image/color"

	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdatePause returns the pause system. Pausing freezes the tick count;
// RESTART rebuilds the level and onExit runs for the menu option.
func NewUpdatePause(onExit func()) ecs.System {
	return func(ecs *ecs.ECS) {
		pause := GetOrCreatePause(ecs)
		input := getOrCreateInput(ecs)

		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.MenuResume
		}
		if !pause.IsPaused {
			return
		}

		n := int(components.MenuExit) + 1
		pause.SelectedOption = components.PauseMenuOption(cycleSelection(input, int(pause.SelectedOption), n))

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		pause.IsPaused = false
		switch pause.SelectedOption {
		case components.MenuRestart:
			restartSimulation(ecs)
		case components.MenuExit:
			if onExit != nil {
				onExit()
			}
		}
	}
}

// DrawPause dims the level and lists the pause options.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	step := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	top := (float64(height) - float64(len(cfg.Pause.MenuOptions))*step) / 2

	drawCentered(screen, fonts.Title.Get(), cfg.Pause.Title, width, int(top)-cfg.Pause.TitleGap, cfg.Pause.TextColorSelected)

	for i, option := range cfg.Pause.MenuOptions {
		c := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			c = cfg.Pause.TextColorSelected
		}
		y := top + float64(i)*step + cfg.Pause.MenuItemHeight
		drawCentered(screen, fonts.Bold.Get(), option, width, int(y), c)
	}

	hint := cfg.Pause.KeyboardHint
	if getOrCreateInput(ecs).UsingGamepad {
		hint = cfg.Pause.GamepadHint
	}
	drawCentered(screen, fonts.Mono.Get(), hint, width, height-12, cfg.Pause.TextColorNormal)
}

func drawCentered(screen *ebiten.Image, face font.Face, s string, width, y int, c color.Color) {
	x := (width - font.MeasureString(face, s).Ceil()) / 2
	text.Draw(screen, s, face, x, y, c)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
