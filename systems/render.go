package systems

import (
	"image/color"

	"github.com/automoto/squareboy/components"
	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/automoto/squareboy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSolids fills every solid that intersects the screen. Solid bounds are
// already in screen space since the viewport scrolls the solids themselves.
func DrawSolids(ecs *ecs.ECS, screen *ebiten.Image) {
	view := screenRect(screen)

	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		solid := components.Solid.Get(e)
		r := solid.Bounds()
		if !r.Intersects(view) {
			return
		}
		fillRect(screen, r, solid.Color)
	})
}

// DrawSquareboy fills the actor.
func DrawSquareboy(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Squareboy.Each(ecs.World, func(e *donburi.Entry) {
		boy := components.Squareboy.Get(e)
		if boy.Squareboy == nil {
			return
		}
		fillRect(screen, boy.Rect(), boy.Color)
	})
}

func screenRect(screen *ebiten.Image) gamemath.Rect {
	return gamemath.NewRect(0, 0, screen.Bounds().Dx(), screen.Bounds().Dy())
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
