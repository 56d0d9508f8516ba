package main

import (
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagTicks int
	flagHold  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a level headless with held intents",
	Long: `Steps the level a fixed number of ticks while holding the given
intents, then logs every reset and the final state. The run is
deterministic: the same flags always produce the same output.

Intents: left, right, down, jump (comma separated).`,
	Example: `  squareboy run --ticks 30
  squareboy run --ticks 200 --hold right,jump --level stairs`,
	Run: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 60, "Number of ticks to run")
	runCmd.Flags().StringVar(&flagHold, "hold", "", "Intents held every tick, e.g. right,jump")
}

func runHeadless(cmd *cobra.Command, args []string) {
	settings := mustSettings()
	level := mustLevel(settings)

	in, err := simulation.ParseIntents(flagHold)
	if err != nil {
		log.Fatal("bad --hold", "err", err)
	}

	sim, err := simulation.New(settings, level)
	if err != nil {
		log.Fatal("cannot start level", "level", level.Name, "err", err)
	}

	log.Info("running", "level", level.Name, "ticks", flagTicks, "hold", in)
	for _, ev := range simulation.Replay(sim, simulation.Hold(in), flagTicks) {
		log.Info("reset", "tick", ev.Tick, "fellAt", ev.FellAt)
	}

	snap := sim.Snapshot()
	log.Info("done",
		"tick", snap.Tick,
		"x", snap.Actor.X,
		"y", snap.Actor.Y,
		"jump", snap.Jump.Phase,
		"progress", snap.Jump.Progress,
		"scroll", snap.Scroll,
		"resets", snap.Resets,
	)
}
