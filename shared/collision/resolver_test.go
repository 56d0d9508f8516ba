package collision

import (
	"testing"

	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func tile(x, y int) gamemath.Rect {
	return gamemath.NewRect(x, y, 30, 30)
}

func TestBlockedFlushLeft(t *testing.T) {
	solid := tile(70, 500)

	assert.True(t, Blocked(tile(100, 500), gamemath.Left, solid))
	assert.False(t, Blocked(tile(110, 500), gamemath.Left, solid), "one step away is free")
	assert.False(t, CanMove(tile(100, 500), gamemath.Left, Rects{solid}))
	assert.True(t, CanMove(tile(110, 500), gamemath.Left, Rects{solid}))
}

func TestBlockedEachDirection(t *testing.T) {
	actor := tile(100, 500)

	tests := []struct {
		name  string
		dir   gamemath.Direction
		solid gamemath.Rect
		want  bool
	}{
		{"left flush", gamemath.Left, tile(70, 500), true},
		{"left partial overlap", gamemath.Left, tile(70, 520), true},
		{"left corner only", gamemath.Left, tile(70, 530), false},
		{"left corner above", gamemath.Left, tile(70, 470), false},
		{"right flush", gamemath.Right, tile(130, 500), true},
		{"right partial overlap", gamemath.Right, tile(130, 480), true},
		{"right gap", gamemath.Right, tile(140, 500), false},
		{"up flush", gamemath.Up, tile(100, 470), true},
		{"up partial overlap", gamemath.Up, tile(120, 470), true},
		{"up corner only", gamemath.Up, tile(130, 470), false},
		{"down flush", gamemath.Down, tile(100, 530), true},
		{"down partial overlap", gamemath.Down, tile(80, 530), true},
		{"down corner only", gamemath.Down, tile(70, 530), false},
		{"down solid to the side", gamemath.Down, tile(130, 500), false},
		{"wrong side", gamemath.Right, tile(70, 500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blocked(actor, tt.dir, tt.solid))
		})
	}
}

func TestCanMoveDownOntoSolid(t *testing.T) {
	actor := tile(100, 500)
	solids := Rects{tile(100, 530)}

	assert.False(t, CanMove(actor, gamemath.Down, solids))
	assert.True(t, CanMove(actor, gamemath.Up, solids))
	assert.True(t, CanMove(actor, gamemath.Left, solids))
	assert.True(t, CanMove(actor, gamemath.Right, solids))
}

func TestCanMoveIdempotent(t *testing.T) {
	actor := tile(100, 500)
	solids := Rects{tile(70, 500), tile(100, 530), tile(300, 300)}
	before := append(Rects(nil), solids...)

	for _, dir := range gamemath.Directions {
		first := CanMove(actor, dir, solids)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, CanMove(actor, dir, solids), dir.String())
		}
	}
	assert.Equal(t, before, solids, "the resolver must not mutate solids")
	assert.Equal(t, tile(100, 500), actor)
}

func TestOverlappingSolidsStillBlock(t *testing.T) {
	solids := Rects{tile(100, 530), tile(100, 530), tile(110, 540)}
	assert.False(t, CanMove(tile(100, 500), gamemath.Down, solids))
}

func TestBlockerReturnsTheBlockingSolid(t *testing.T) {
	solids := Rects{tile(300, 300), tile(130, 500)}

	got, ok := Blocker(tile(100, 500), gamemath.Right, solids)
	assert.True(t, ok)
	assert.Equal(t, tile(130, 500), got)

	_, ok = Blocker(tile(100, 500), gamemath.Left, solids)
	assert.False(t, ok)
}

func TestPredicate(t *testing.T) {
	canMove := Predicate(tile(100, 500), Rects{tile(100, 530)})
	assert.False(t, canMove(gamemath.Down))
	assert.True(t, canMove(gamemath.Up))
}
