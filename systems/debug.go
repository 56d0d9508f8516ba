package systems

import (
	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// DrawDebug outlines the scroll bands, the broadphase candidates for each
// direction, the solids currently blocking the actor and the actor itself.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	sim, ok := getSimulation(ecs)
	if !ok {
		return
	}

	height := screen.Bounds().Dy()
	bands := sim.Bands()
	for _, x := range []int{bands.LeftEdge(), bands.RightEdge()} {
		fillRect(screen, gamemath.NewRect(x, 0, 1, height), cfg.DebugDraw.BandColor)
	}

	for _, c := range sim.Contacts() {
		for _, r := range c.Candidates {
			strokeRect(screen, r, cfg.DebugDraw.CandidateColor)
		}
	}
	for _, c := range sim.Contacts() {
		if c.Blocked {
			strokeRect(screen, c.Blocker, cfg.DebugDraw.BlockerColor)
		}
	}

	strokeRect(screen, sim.Actor().Rect(), cfg.DebugDraw.ActorColor)
}

// GetOrCreateSettings returns the singleton runtime settings, creating them
// from the command-line debug options on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
