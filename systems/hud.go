package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the level name, tick and reset counters in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sim, ok := getSimulation(ecs)
	if !ok {
		return
	}
	snap := sim.Snapshot()

	name := snap.Level
	if entry, ok := components.Level.First(ecs.World); ok {
		name = components.Level.Get(entry).Name
	}

	lines := []string{
		name,
		fmt.Sprintf("tick %d  resets %d", snap.Tick, snap.Resets),
		fmt.Sprintf("x %d  y %d  scroll %d  %s", snap.Actor.X, snap.Actor.Y, snap.Scroll, snap.Jump.Phase),
	}

	face := fonts.Regular.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	for _, line := range lines {
		drawShadowed(screen, face, line, x, y, cfg.HUD.TextColor, cfg.HUD.ShadowColor)
		y += int(cfg.HUD.LineHeight)
	}
}

func drawShadowed(screen *ebiten.Image, face font.Face, s string, x, y int, fg, shadow color.Color) {
	text.Draw(screen, s, face, x+1, y+1, shadow)
	text.Draw(screen, s, face, x, y, fg)
}
