package components

import (
	"github.com/automoto/squareboy/shared/collision"
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/yohamta/donburi"
)

// SimulationData wraps the running simulation and what the last tick did.
type SimulationData struct {
	*simulation.Simulation
	LastEvents simulation.Events

	// SyncedSpace is the solid set the solid entities currently mirror. A
	// reset builds a new one.
	SyncedSpace *collision.Space
}

var Simulation = donburi.NewComponentType[SimulationData]()
