package systems

import (
	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the keyboard and gamepad driver for the level select
// menu. onHighlight runs whenever the selection changes, onSelect when a
// level is picked and onQuit when the player backs out.
func NewUpdateMenu(names []string, onHighlight, onSelect func(name string), onQuit func()) ecs.System {
	highlighted := false
	ready := false
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// The key that opened the menu may still be down on the first frame.
		if !ready {
			ready = true
			return
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionPause).JustPressed {
			onQuit()
			return
		}

		numOptions := len(names)
		if numOptions == 0 {
			return
		}

		menu := GetOrCreateMenu(e)
		prev := menu.SelectedIndex

		menu.SelectedIndex = cycleSelection(input, menu.SelectedIndex, numOptions)

		if !highlighted || prev != menu.SelectedIndex {
			highlighted = true
			onHighlight(names[menu.SelectedIndex])
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			onSelect(names[menu.SelectedIndex])
		}
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
