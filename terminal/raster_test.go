package terminal

import (
	"testing"

	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(x, y, w, h int) simulation.Drawable {
	return simulation.Drawable{Rect: gamemath.NewRect(x, y, w, h), Kind: simulation.KindSolid}
}

func actor(x, y int) simulation.Drawable {
	return simulation.Drawable{Rect: gamemath.NewRect(x, y, 30, 30), Kind: simulation.KindActor}
}

func TestRasterizeAlignedTiles(t *testing.T) {
	f := Rasterize([]simulation.Drawable{solid(0, 0, 30, 30), solid(60, 30, 30, 30)}, 30, 4, 3)

	require.Len(t, f.Cells, 12)
	assert.Equal(t, CellSolid, f.At(0, 0))
	assert.Equal(t, CellSolid, f.At(2, 1))
	assert.Equal(t, CellEmpty, f.At(1, 0))
	assert.Equal(t, CellEmpty, f.At(3, 2))
}

func TestRasterizeOffGridTileCoversOneCell(t *testing.T) {
	for _, x := range []int{100, 110, 120} {
		f := Rasterize([]simulation.Drawable{actor(x, 0)}, 30, 10, 1)
		count := 0
		for _, c := range f.Cells {
			if c == CellActor {
				count++
			}
		}
		assert.Equal(t, 1, count, "x=%d", x)
	}

	f := Rasterize([]simulation.Drawable{actor(100, 0)}, 30, 10, 1)
	assert.Equal(t, CellActor, f.At(3, 0))
	f = Rasterize([]simulation.Drawable{actor(110, 0)}, 30, 10, 1)
	assert.Equal(t, CellActor, f.At(4, 0))
}

func TestRasterizeClipsToGrid(t *testing.T) {
	f := Rasterize([]simulation.Drawable{solid(-30, -30, 120, 120)}, 30, 2, 2)
	for _, c := range f.Cells {
		assert.Equal(t, CellSolid, c)
	}

	f = Rasterize([]simulation.Drawable{solid(300, 0, 30, 30), solid(-60, 0, 30, 30)}, 30, 2, 2)
	for _, c := range f.Cells {
		assert.Equal(t, CellEmpty, c)
	}
}

func TestRasterizeActorDrawnOverSolid(t *testing.T) {
	f := Rasterize([]simulation.Drawable{solid(0, 0, 60, 30), actor(0, 0)}, 30, 2, 1)
	assert.Equal(t, CellActor, f.At(0, 0))
	assert.Equal(t, CellSolid, f.At(1, 0))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 0, ceilDiv(0, 30))
	assert.Equal(t, 1, ceilDiv(1, 30))
	assert.Equal(t, 1, ceilDiv(30, 30))
	assert.Equal(t, 0, ceilDiv(-15, 30))
	assert.Equal(t, -1, ceilDiv(-30, 30))
	assert.Equal(t, -1, ceilDiv(-35, 30))
}
