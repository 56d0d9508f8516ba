package simulation

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// IntentSource supplies the intents for the next tick.
type IntentSource interface {
	Intents() Intents
}

// IntentFunc adapts a function to IntentSource.
type IntentFunc func() Intents

func (f IntentFunc) Intents() Intents { return f() }

// TickFunc receives every tick's events and the state after it.
type TickFunc func(Events, Snapshot)

// Loop steps a simulation on a fixed-rate ticker.
type Loop struct {
	sim      *Simulation
	tickRate int
	source   IntentSource
	onTick   TickFunc
}

func NewLoop(sim *Simulation, tickRate int, source IntentSource, onTick TickFunc) *Loop {
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		source:   source,
		onTick:   onTick,
	}
}

// Run ticks until ctx is cancelled. The simulation is only touched from
// the goroutine calling Run.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Debug("game loop started", "ticksPerSecond", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Debug("game loop stopped", "tick", l.sim.Tick())
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *Loop) tick() {
	var in Intents
	if l.source != nil {
		in = l.source.Intents()
	}
	ev := l.sim.Step(in)
	if l.onTick != nil {
		l.onTick(ev, l.sim.Snapshot())
	}
}
