package collision

import (
	"image/color"
	"sync"
	"testing"

	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func newTestSpace(t *testing.T, solids ...gamemath.Rect) *Space {
	t.Helper()
	sp := NewSpace(600, 600, 30)
	for _, r := range solids {
		sp.Add(r, red)
	}
	require.Equal(t, len(solids), sp.Len())
	return sp
}

func TestSpaceAgreesWithRects(t *testing.T) {
	sp := newTestSpace(t,
		tile(0, 540), tile(30, 540), tile(60, 540), tile(90, 540),
		tile(150, 450), tile(180, 420), tile(240, 300),
		tile(240, 300), // duplicate
	)

	for _, offset := range []int{0, 10, -20, 30} {
		sp.scroll = ScrollState{}
		sp.Scroll(offset)
		all := sp.Rects()

		for x := -30; x <= 330; x += 10 {
			for y := 270; y <= 570; y += 10 {
				actor := tile(x, y)
				for _, dir := range gamemath.Directions {
					assert.Equal(t, CanMove(actor, dir, all), CanMove(actor, dir, sp),
						"offset %d actor (%d,%d) %s", offset, x, y, dir)
				}
			}
		}
	}
}

func TestSpaceCandidatesIncludeBlocker(t *testing.T) {
	sp := newTestSpace(t, tile(100, 530), tile(400, 100))

	got := sp.Candidates(tile(100, 500), gamemath.Down)
	assert.Contains(t, got, tile(100, 530))
	assert.NotContains(t, got, tile(400, 100))
}

func TestSpaceCandidatesConcurrentQueries(t *testing.T) {
	sp := newTestSpace(t, tile(100, 530), tile(400, 100), tile(250, 300))
	actors := []gamemath.Rect{tile(100, 500), tile(400, 130), tile(250, 270), tile(10, 10)}

	want := make([][]gamemath.Rect, len(actors))
	for i, a := range actors {
		want[i] = sp.Candidates(a, gamemath.Down)
	}

	got := make([][][]gamemath.Rect, len(actors))
	var wg sync.WaitGroup
	for i, a := range actors {
		got[i] = make([][]gamemath.Rect, 50)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range got[i] {
				got[i][n] = sp.Candidates(a, gamemath.Down)
			}
		}()
	}
	wg.Wait()

	for i := range actors {
		for _, g := range got[i] {
			assert.Equal(t, want[i], g, "actor %v", actors[i])
		}
	}
}

func TestSpaceScrollMovesReportedBounds(t *testing.T) {
	sp := newTestSpace(t, tile(100, 530))
	solid := sp.Solids()[0]

	sp.Scroll(10)
	sp.Scroll(10)

	assert.Equal(t, 20, sp.Offset())
	assert.Equal(t, tile(100, 530), solid.Level())
	assert.Equal(t, tile(120, 530), solid.Bounds())
	assert.False(t, CanMove(tile(120, 500), gamemath.Down, sp))
	assert.True(t, CanMove(tile(150, 500), gamemath.Down, sp), "flush against the scrolled solid's right edge")
	assert.True(t, CanMove(tile(70, 500), gamemath.Down, sp), "clear of the scrolled solid")
}

func TestSpaceVisible(t *testing.T) {
	sp := newTestSpace(t, tile(0, 0), tile(570, 0))
	view := gamemath.NewRect(0, 0, 300, 300)

	assert.Len(t, sp.Visible(view), 1)

	sp.Scroll(-300)
	visible := sp.Visible(view)
	require.Len(t, visible, 1)
	assert.Equal(t, tile(270, 0), visible[0].Bounds())
}

func TestBands(t *testing.T) {
	b := Bands{Width: 1200, Count: 3}
	assert.Equal(t, 400, b.LeftEdge())
	assert.Equal(t, 800, b.RightEdge())

	assert.True(t, b.Scrolls(390, gamemath.Left))
	assert.False(t, b.Scrolls(400, gamemath.Left))
	assert.True(t, b.Scrolls(810, gamemath.Right))
	assert.False(t, b.Scrolls(800, gamemath.Right))
	assert.False(t, b.Scrolls(100, gamemath.Down))
}
