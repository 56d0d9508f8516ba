package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/shared/leveldata"
	"github.com/automoto/squareboy/systems"
	"github.com/automoto/squareboy/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       *Levels
	level        *leveldata.CollisionData
	once         sync.Once

	exit bool
}

// NewPlatformerScene creates a scene playing level. levels is handed back to
// the menu on exit.
func NewPlatformerScene(sc SceneChanger, levels *Levels, level *leveldata.CollisionData) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levels: levels, level: level}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if ps.exit {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.levels))
		return
	}
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdatePause(func() { ps.exit = true }))
	ecs.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with the pause check
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRestart))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFade))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawSolids)
	ecs.AddRenderer(cfg.Default, systems.DrawSquareboy)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	factory.CreateLevel(ps.ecs, ps.level)
	if _, err := factory.CreateSimulation(ps.ecs, cfg.C.Settings, ps.level); err != nil {
		log.Error("cannot start level", "level", ps.level.Name, "err", err)
		ps.exit = true
	}
}
