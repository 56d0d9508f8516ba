package systems

import (
	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/systems/factory"
	"github.com/automoto/squareboy/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation feeds the held actions to the simulation and steps it
// one tick.
func UpdateSimulation(ecs *ecs.ECS) {
	sim, ok := getSimulation(ecs)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	sim.LastEvents = sim.Step(input.Intents)

	if sim.LastEvents.Reset {
		log.Info("squareboy fell", "level", sim.Level().Name,
			"y", sim.LastEvents.FellAt, "resets", sim.Resets())
		factory.CreateFade(ecs)
	}
	syncEntities(ecs, sim)
}

// UpdateRestart restarts the level on demand.
func UpdateRestart(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionRestart).JustPressed {
		restartSimulation(ecs)
	}
}

func restartSimulation(ecs *ecs.ECS) {
	sim, ok := getSimulation(ecs)
	if !ok {
		return
	}
	sim.Restart()
	log.Info("level restarted", "level", sim.Level().Name)
	syncEntities(ecs, sim)
}

// syncEntities points the solid and squareboy entities at the simulation's
// current objects. A reset replaces both, so solid entities are rebuilt.
func syncEntities(ecs *ecs.ECS, sim *components.SimulationData) {
	if sim.SyncedSpace != sim.Space() {
		factory.RemoveSolids(ecs)
		factory.CreateSolids(ecs, sim.Space())
		sim.SyncedSpace = sim.Space()
	}

	tags.Squareboy.Each(ecs.World, func(e *donburi.Entry) {
		components.Squareboy.Get(e).Squareboy = sim.Actor()
	})
}

func getSimulation(ecs *ecs.ECS) (*components.SimulationData, bool) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}
