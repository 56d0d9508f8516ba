package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/squareboy/shared/leveldata"
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Parses a .txt grid or .tmx map, prints its size and solid count, and
checks that a simulation can start on it with the current settings.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings := mustSettings()

	dir, file := filepath.Split(args[0])
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.Load(os.DirFS(dir), file, settings.TileSize)
	if err != nil {
		return fmt.Errorf("check %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:    %s\n", data.Name)
	fmt.Fprintf(out, "grid:     %d x %d tiles of %dpx\n", data.Columns, data.Rows, data.TileSize)
	fmt.Fprintf(out, "size:     %d x %d px\n", data.Width, data.Height)
	fmt.Fprintf(out, "solids:   %d\n", len(data.Solids))
	if data.Spawn != nil {
		fmt.Fprintf(out, "spawn:    %d,%d\n", data.Spawn.X, data.Spawn.Y)
	} else {
		fmt.Fprintf(out, "spawn:    settings (%d,%d)\n", settings.SpawnX, settings.SpawnY)
	}

	if _, err := simulation.New(settings, data); err != nil {
		return fmt.Errorf("check %s: %w", args[0], err)
	}
	log.Info("level ok", "name", data.Name)
	return nil
}
