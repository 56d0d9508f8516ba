package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical action polled once per frame.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionJump
	ActionPause
	ActionRestart
	ActionToggleDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// StickDir is a left-stick direction that also triggers an action.
type StickDir int

const (
	StickNone StickDir = iota
	StickLeft
	StickRight
	StickUp
	StickDown
)

// InputBinding lists every physical input that holds an action.
type InputBinding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
	Stick   StickDir
}

// InputConfig holds the binding table. Bindings is indexed by ActionID.
type InputConfig struct {
	Bindings [ActionCount]InputBinding
	// Stick travel (0.0 to 1.0) ignored before a direction counts
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	var b [ActionCount]InputBinding

	// Squareboy moves one interval per held tick, so movement binds to
	// both the d-pad and the stick.
	b[ActionMoveLeft] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		Stick:   StickLeft,
	}
	b[ActionMoveRight] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		Stick:   StickRight,
	}
	b[ActionMoveDown] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		Stick:   StickDown,
	}
	// Up doubles as jump; stick up stays menu-only so a drifting stick
	// cannot hold a jump.
	b[ActionJump] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
		Buttons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
			ebiten.StandardGamepadButtonLeftTop,
		},
	}
	b[ActionPause] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	}
	b[ActionRestart] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyR},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	}
	b[ActionToggleDebug] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyF1},
	}
	b[ActionMenuUp] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		Stick:   StickUp,
	}
	b[ActionMenuDown] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		Stick:   StickDown,
	}
	b[ActionMenuSelect] = InputBinding{
		Keys:    []ebiten.Key{ebiten.KeyEnter},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	}

	Input = InputConfig{Bindings: b, AnalogDeadzone: 0.25}
}
