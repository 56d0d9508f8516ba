package main

import (
	"image"

	"github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/fonts"
	"github.com/automoto/squareboy/levels"
	"github.com/automoto/squareboy/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSkipMenu bool
	flagOverlay  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Opens the game window with the level select menu. With --skip-menu
the chosen level starts straight away.

Controls:
  Arrows/WASD   move
  Up/W/Space    jump
  R             restart
  Esc/P         pause
  F1            collision overlay`,
	Run: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start the level without the menu")
		cmd.Flags().BoolVar(&flagOverlay, "overlay", false, "Start with the collision overlay on")
	}
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(levelSet *scenes.Levels, start string) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("cannot load fonts", "err", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	data, ok := levelSet.Get(start)
	if config.Debug.SkipMenu && ok {
		g.scene = scenes.NewPlatformerScene(g, levelSet, data)
	} else {
		g.scene = scenes.NewMenuScene(g, levelSet)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, args []string) {
	settings := mustSettings()
	start := mustLevel(settings)

	catalogue, names, err := levels.Catalogue(settings.TileSize)
	if err != nil {
		log.Fatal("cannot load bundled levels", "err", err)
	}
	levelSet := scenes.NewLevels(catalogue, names, start)

	config.Apply(settings, start.Name)
	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.Overlay = flagOverlay

	// One ebiten update is one simulation tick.
	ebiten.SetTPS(settings.TickRate)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(levelSet, start.Name)); err != nil {
		log.Fatal(err)
	}
}
