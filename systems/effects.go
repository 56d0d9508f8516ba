package systems

import (
	"image/color"

	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances every fade overlay and removes finished ones.
func UpdateFade(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))

	var done []donburi.Entity
	tags.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		fade.Alpha, fade.Done = fade.Tween.Update(dt)
		if fade.Done {
			done = append(done, e.Entity())
		}
	})
	for _, entity := range done {
		ecs.World.Remove(entity)
	}
}

// DrawFade renders the fade overlays on top of the level.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	tags.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Alpha <= 0 {
			return
		}
		c := cfg.Fade.Color
		overlay := color.RGBA{
			R: uint8(float32(c.R) * fade.Alpha),
			G: uint8(float32(c.G) * fade.Alpha),
			B: uint8(float32(c.B) * fade.Alpha),
			A: uint8(255 * fade.Alpha),
		}
		vector.FillRect(screen, 0, 0, width, height, overlay, false)
	})
}
