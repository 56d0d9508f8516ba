// Package collision decides whether a single-axis move is legal against the
// static level geometry. It never mutates the actor or the solids; callers
// apply the move themselves after asking.
//
// The test is a touching-edge test on the actor's current rectangle: a move
// is blocked when the actor is already flush against a solid on the side it
// wants to move toward. This only works when every move lands exactly on
// the tile grid, so the movement interval has to divide the tile size.
package collision

import (
	"github.com/automoto/squareboy/shared/gamemath"
)

// SolidView is a read-only view of the solid geometry. Candidates returns
// every solid that could block actor moving toward dir; it may return more.
type SolidView interface {
	Candidates(actor gamemath.Rect, dir gamemath.Direction) []gamemath.Rect
}

// Rects is a SolidView over a plain slice. Every rectangle is a candidate.
type Rects []gamemath.Rect

func (r Rects) Candidates(gamemath.Rect, gamemath.Direction) []gamemath.Rect {
	return r
}

// Blocked reports whether solid stops actor from moving toward dir.
//
// The actor's leading edge must coincide exactly with the solid's facing
// edge, and the two rectangles must overlap on the other axis. Both axes
// use half-open spans, so an actor that only meets a solid at a corner is
// not blocked.
func Blocked(actor gamemath.Rect, dir gamemath.Direction, solid gamemath.Rect) bool {
	switch dir {
	case gamemath.Left:
		return actor.Left() == solid.Right() && actor.Vertical().Overlaps(solid.Vertical())
	case gamemath.Right:
		return actor.Right() == solid.Left() && actor.Vertical().Overlaps(solid.Vertical())
	case gamemath.Up:
		return actor.Top() == solid.Bottom() && actor.Horizontal().Overlaps(solid.Horizontal())
	case gamemath.Down:
		return actor.Bottom() == solid.Top() && actor.Horizontal().Overlaps(solid.Horizontal())
	}
	return false
}

// Blocker returns the first solid that blocks actor moving toward dir.
func Blocker(actor gamemath.Rect, dir gamemath.Direction, solids SolidView) (gamemath.Rect, bool) {
	for _, s := range solids.Candidates(actor, dir) {
		if Blocked(actor, dir, s) {
			return s, true
		}
	}
	return gamemath.Rect{}, false
}

// CanMove reports whether actor may move one interval toward dir.
func CanMove(actor gamemath.Rect, dir gamemath.Direction, solids SolidView) bool {
	_, blocked := Blocker(actor, dir, solids)
	return !blocked
}

// Predicate binds CanMove to a fixed actor rectangle and solid view, the
// shape the jump state machine expects.
func Predicate(actor gamemath.Rect, solids SolidView) func(gamemath.Direction) bool {
	return func(dir gamemath.Direction) bool {
		return CanMove(actor, dir, solids)
	}
}
