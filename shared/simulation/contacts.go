package simulation

import (
	"github.com/automoto/squareboy/shared/collision"
	"github.com/automoto/squareboy/shared/gamemath"
)

// Contact is the collision picture for one direction, used by debug overlays.
type Contact struct {
	Dir        gamemath.Direction
	Candidates []gamemath.Rect
	Blocker    gamemath.Rect
	Blocked    bool
}

// Contacts asks the broadphase and the resolver about every direction from
// the actor's current position. It does not mutate anything.
func (s *Simulation) Contacts() []Contact {
	rect := s.boy.Rect()
	out := make([]Contact, 0, len(gamemath.Directions))
	for _, dir := range gamemath.Directions {
		p := Contact{Dir: dir, Candidates: s.space.Candidates(rect, dir)}
		p.Blocker, p.Blocked = collision.Blocker(rect, dir, collision.Rects(p.Candidates))
		out = append(out, p)
	}
	return out
}
