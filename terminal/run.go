// Package terminal plays a level in a terminal through tcell. It drives the
// same simulation as the window client, one terminal cell per tile.
package terminal

import (
	"context"

	"github.com/automoto/squareboy/shared/simulation"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// Options tune the terminal frontend.
type Options struct {
	TickRate int
	// HoldTicks is how long a key counts as held after its last press or
	// repeat.
	HoldTicks int
}

// DefaultHoldTicks covers a typical 250ms key repeat delay at 30 ticks per
// second.
const DefaultHoldTicks = 10

// controller feeds terminal key events to the loop. It runs on the loop
// goroutine, so it may touch the simulation.
type controller struct {
	sim    *simulation.Simulation
	events <-chan tcell.Event
	holds  *Holds
	cancel context.CancelFunc
	resize func()

	last simulation.Intents
}

func (c *controller) Intents() simulation.Intents {
	tick := c.sim.Tick() + 1
	for {
		select {
		case ev := <-c.events:
			c.handle(ev, tick)
		default:
			c.last = c.holds.Intents(tick)
			return c.last
		}
	}
}

func (c *controller) handle(ev tcell.Event, tick int) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := Translate(ev.Key(), ev.Rune())
		switch {
		case cmd.Quit:
			c.cancel()
		case cmd.Restart:
			c.sim.Restart()
			c.holds.Release()
			log.Info("level restarted", "level", c.sim.Level().Name)
		case cmd.HasKey:
			c.holds.Press(cmd.Key, tick)
		}
	case *tcell.EventResize:
		if c.resize != nil {
			c.resize()
		}
	}
}

// Run plays sim on screen until ctx is cancelled or the player quits. The
// caller owns screen and must have initialised it.
func Run(ctx context.Context, screen tcell.Screen, sim *simulation.Simulation, opts Options) {
	if opts.TickRate <= 0 {
		opts.TickRate = sim.Settings().TickRate
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start input handling goroutine
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	settings := sim.Settings()
	cols := settings.WindowWidth / settings.TileSize
	rows := (settings.WindowHeight + settings.TileSize - 1) / settings.TileSize

	ctrl := &controller{
		sim:    sim,
		events: events,
		holds:  NewHolds(opts.HoldTicks),
		cancel: cancel,
		resize: screen.Sync,
	}

	render := func(ev simulation.Events, snap simulation.Snapshot) {
		if ev.Reset {
			log.Debug("squareboy fell", "y", ev.FellAt, "resets", snap.Resets)
		}
		frame := Rasterize(sim.Drawables(), settings.TileSize, cols, rows)
		Draw(screen, frame, Status(snap, ctrl.last))
	}

	render(simulation.Events{}, sim.Snapshot())
	simulation.NewLoop(sim, opts.TickRate, ctrl, render).Run(ctx)
}
