package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/systems"
	"github.com/automoto/squareboy/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the level select menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       *Levels
	selectUI     *ui.LevelSelectUI
	once         sync.Once

	selected string
	quit     bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, levels *Levels) *MenuScene {
	return &MenuScene{sceneChanger: sc, levels: levels}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.selectUI.Update()

	if ms.quit {
		ms.sceneChanger.Quit()
		return
	}

	if ms.selected != "" {
		name := ms.selected
		ms.selected = ""
		data, ok := ms.levels.Get(name)
		if !ok {
			ms.selectUI.SetStatus("unknown level " + name)
			return
		}
		log.Info("starting level", "level", name)
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.levels, data))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.selectUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.selectUI = ui.NewLevelSelectUI(cfg.Menu.Title, ms.levels.entries(),
		func(name string) { ms.selected = name },
		func() { ms.quit = true },
	)

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.levels.Names,
		func(name string) { ms.selectUI.SetStatus("Enter: play " + name + "   Esc: quit") },
		func(name string) { ms.selected = name },
		func() { ms.quit = true },
	))
}
