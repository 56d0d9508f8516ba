// Package actor implements Squareboy, the single player-controlled square.
// Every move is gated by the collision predicate before it is applied; the
// actor never inspects solids itself.
package actor

import (
	"image/color"

	"github.com/automoto/squareboy/shared/collision"
	"github.com/automoto/squareboy/shared/gamemath"
)

// Level is the geometry the actor moves through. The actor queries it and
// asks it to scroll; it does not own it.
type Level interface {
	collision.SolidView
	Scroll(dx int)
}

// Config holds the movement constants for one actor.
type Config struct {
	Size      int // width and height in pixels
	Interval  int // pixels covered by one legal move
	JumpTicks int // ascent budget per jump
	Bands     collision.Bands

	// GroundedJumpOnly rejects jump requests unless something is directly
	// below the actor. Off by default, which allows jumping in mid-air.
	GroundedJumpOnly bool
}

// Squareboy is the player-controlled actor.
type Squareboy struct {
	rect  gamemath.Rect
	jump  JumpState
	cfg   Config
	level Level
	Color color.RGBA
}

// New places a Squareboy at x, y inside level.
func New(x, y int, cfg Config, level Level) *Squareboy {
	return &Squareboy{
		rect:  gamemath.NewRect(x, y, cfg.Size, cfg.Size),
		cfg:   cfg,
		level: level,
		Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Rect returns the actor's bounds.
func (b *Squareboy) Rect() gamemath.Rect { return b.rect }

// JumpState returns the current jump state.
func (b *Squareboy) JumpState() JumpState { return b.jump }

// Jumping reports whether an ascent is in progress.
func (b *Squareboy) Jumping() bool { return b.jump.Jumping() }

// JumpProgress returns the ticks spent rising in the current jump, the
// spent budget while falling from an arc, or zero when grounded.
func (b *Squareboy) JumpProgress() int { return b.jump.Progress }

// CanMove asks the collision predicate about a move toward dir.
func (b *Squareboy) CanMove(dir gamemath.Direction) bool {
	return collision.CanMove(b.rect, dir, b.level)
}

// MoveLeft attempts one interval to the left, scrolling the world instead
// when the actor is in the left scroll band.
func (b *Squareboy) MoveLeft() bool {
	return b.moveHorizontal(gamemath.Left)
}

// MoveRight attempts one interval to the right, scrolling the world instead
// when the actor is in the right scroll band.
func (b *Squareboy) MoveRight() bool {
	return b.moveHorizontal(gamemath.Right)
}

// MoveDown attempts one interval down. It is the same step gravity takes.
func (b *Squareboy) MoveDown() bool {
	return b.moveVertical(gamemath.Down)
}

// MoveUp attempts one interval up.
func (b *Squareboy) MoveUp() bool {
	return b.moveVertical(gamemath.Up)
}

// RequestJump starts a jump unless one is running or the last arc has not
// landed yet. With GroundedJumpOnly set it also requires a surface directly
// below.
func (b *Squareboy) RequestJump() bool {
	if !b.jump.CanJump() {
		return false
	}
	if b.cfg.GroundedJumpOnly && b.CanMove(gamemath.Down) {
		return false
	}
	b.jump = StartJump(b.jump)
	return true
}

// Update advances the jump/gravity state machine by one tick and applies
// the resulting vertical step.
func (b *Squareboy) Update() Step {
	next, step := Advance(b.jump, b.CanMove, b.cfg.JumpTicks)
	b.jump = next
	if step.Move {
		b.rect = b.rect.Step(step.Dir, b.cfg.Interval)
	}
	return step
}

func (b *Squareboy) moveHorizontal(dir gamemath.Direction) bool {
	if !b.CanMove(dir) {
		return false
	}
	if b.cfg.Bands.Scrolls(b.rect.X, dir) {
		dx, _ := dir.Delta()
		b.level.Scroll(-dx * b.cfg.Interval)
		return true
	}
	b.rect = b.rect.Step(dir, b.cfg.Interval)
	return true
}

func (b *Squareboy) moveVertical(dir gamemath.Direction) bool {
	if !b.CanMove(dir) {
		return false
	}
	b.rect = b.rect.Step(dir, b.cfg.Interval)
	return true
}
