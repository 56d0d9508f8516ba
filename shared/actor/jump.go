package actor

import "github.com/automoto/squareboy/shared/gamemath"

// Phase is the actor's vertical mode.
type Phase int

const (
	// Grounded covers resting and falling with a jump available: gravity
	// pulls every tick.
	Grounded Phase = iota
	// Jumping is an ascent bounded by the jump tick budget.
	Jumping
	// Falling is the descent after an arc hit its cap or a ceiling. No new
	// jump starts until the actor comes to rest on a surface.
	Falling
)

func (p Phase) String() string {
	switch p {
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	}
	return "grounded"
}

// JumpState is the tagged jump state. Progress counts ascent ticks while
// Jumping, stays at the spent budget while Falling and is zero when
// Grounded.
type JumpState struct {
	Phase    Phase
	Progress int
}

// Jumping reports whether an ascent is in progress.
func (j JumpState) Jumping() bool {
	return j.Phase == Jumping
}

// Step is the vertical move a transition asks for. Move is false when the
// actor stays put this tick.
type Step struct {
	Dir  gamemath.Direction
	Move bool
}

var (
	stepNone = Step{}
	stepUp   = Step{Dir: gamemath.Up, Move: true}
	stepDown = Step{Dir: gamemath.Down, Move: true}
)

// CanJump reports whether a new ascent may start.
func (j JumpState) CanJump() bool {
	return j.Phase == Grounded
}

// StartJump begins a new ascent. A running or spent arc is left alone.
func StartJump(j JumpState) JumpState {
	if !j.CanJump() {
		return j
	}
	return JumpState{Phase: Jumping}
}

// Advance runs one tick of the jump and gravity rules. canMove answers
// whether the actor may move one interval in a direction right now.
//
// While jumping the actor rises until it has spent maxTicks ticks going up
// or hits a ceiling; the arc then ends and the actor drops one interval in
// the same tick if it can, entering Falling with the budget spent. When
// squeezed between a ceiling and a floor the arc ends without moving.
// Outside a jump the actor falls one interval per tick whenever nothing is
// below it. A Falling actor becomes Grounded on the first tick it cannot
// move down.
func Advance(j JumpState, canMove func(gamemath.Direction) bool, maxTicks int) (JumpState, Step) {
	switch j.Phase {
	case Jumping:
		if j.Progress < maxTicks && canMove(gamemath.Up) {
			return JumpState{Phase: Jumping, Progress: j.Progress + 1}, stepUp
		}
		if canMove(gamemath.Down) {
			return JumpState{Phase: Falling, Progress: maxTicks}, stepDown
		}
		return JumpState{}, stepNone
	case Falling:
		if canMove(gamemath.Down) {
			return j, stepDown
		}
		return JumpState{}, stepNone
	}

	if canMove(gamemath.Down) {
		return JumpState{}, stepDown
	}
	return JumpState{}, stepNone
}
