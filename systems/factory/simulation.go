package factory

import (
	"fmt"

	"github.com/automoto/squareboy/archetypes"
	"github.com/automoto/squareboy/components"
	"github.com/automoto/squareboy/shared/gameconfig"
	"github.com/automoto/squareboy/shared/leveldata"
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation builds the simulation for a level along with the
// entities that mirror its solids and actor.
func CreateSimulation(ecs *ecs.ECS, settings gameconfig.Settings, data *leveldata.CollisionData) (*donburi.Entry, error) {
	sim, err := simulation.New(settings, data)
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, components.SimulationData{
		Simulation:  sim,
		SyncedSpace: sim.Space(),
	})

	CreateSolids(ecs, sim.Space())
	CreateSquareboy(ecs, sim.Actor())
	return entry, nil
}
