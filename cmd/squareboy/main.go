// squareboy is a tile-grid platformer: one square, red blocks, gravity.
//
// Usage:
//
//	squareboy [play]            - Open the game window (menu, then level)
//	squareboy tui               - Play in the terminal
//	squareboy run               - Run a level headless with scripted input
//	squareboy check <file>      - Validate a level file
//
// Global flags:
//
//	--config <path>  - Settings file (default: ~/.squareboy/settings.yaml)
//	--level <name>   - Bundled level name or path to a .txt/.tmx file
//	--debug          - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/automoto/squareboy/levels"
	"github.com/automoto/squareboy/shared/gameconfig"
	"github.com/automoto/squareboy/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagLevel  string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "squareboy",
	Short: "Squareboy - a tile-grid platformer",
	Long: `Squareboy moves a white square through a level of red blocks.
Fall off the bottom of the screen and the level starts over.

Examples:
  squareboy
  squareboy --level stairs
  squareboy tui --level levels/squareboy.txt
  squareboy run --ticks 120 --hold right,jump
  squareboy check levels/stairs.tmx`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Bundled level name or level file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

// mustSettings loads and validates the settings or exits.
func mustSettings() gameconfig.Settings {
	settings, err := gameconfig.Load(flagConfig)
	if err != nil {
		log.Fatal("cannot load settings", "err", err)
	}
	if err := settings.Validate(); err != nil {
		log.Fatal("invalid settings", "err", err)
	}
	return settings
}

// levelName is the --level flag, falling back to the settings file.
func levelName(settings gameconfig.Settings) string {
	if flagLevel != "" {
		return flagLevel
	}
	if settings.Level != "" {
		return settings.Level
	}
	return levels.Default
}

// mustLevel resolves the chosen level or exits.
func mustLevel(settings gameconfig.Settings) *leveldata.CollisionData {
	name := levelName(settings)
	data, err := levels.Resolve(name, settings.TileSize)
	if err != nil {
		log.Fatal("cannot load level", "level", name, "err", err)
	}
	log.Info("level loaded", "name", data.Name, "solids", len(data.Solids),
		"width", data.Width, "height", data.Height)
	return data
}
