package components

import (
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is the frame's polled input. Held actions are kept for two
// frames so edges can be derived; Intents is what the simulation steps on.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Intents  simulation.Intents
	// UsingGamepad follows whichever device was touched last.
	UsingGamepad bool
}

var Input = donburi.NewComponentType[InputData]()
