package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/automoto/squareboy/shared/simulation"
	"github.com/automoto/squareboy/terminal"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var flagHoldTicks int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Plays the level in the terminal, one character per tile.

Terminals do not report key releases, so a key counts as held for
--hold-ticks ticks after its last press or repeat.

Controls:
  Arrows/WASD/hjkl  move
  Up/Space          jump
  r                 restart
  q/Esc             quit`,
	Run: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", terminal.DefaultHoldTicks, "Ticks a key stays held after its last repeat")
}

func runTUI(cmd *cobra.Command, args []string) {
	settings := mustSettings()
	level := mustLevel(settings)

	sim, err := simulation.New(settings, level)
	if err != nil {
		log.Fatal("cannot start level", "level", level.Name, "err", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("cannot open terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal("cannot open terminal", "err", err)
	}

	// Log lines would tear the screen; keep only errors until it is closed.
	prevLevel := log.GetLevel()
	log.SetLevel(log.ErrorLevel)

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	terminal.Run(ctx, screen, sim, terminal.Options{
		TickRate:  settings.TickRate,
		HoldTicks: flagHoldTicks,
	})
	stop()
	screen.Fini()

	log.SetLevel(prevLevel)
	log.Info("bye", "level", level.Name, "ticks", sim.Tick(), "resets", sim.Resets())
}
