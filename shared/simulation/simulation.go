// Package simulation drives one Squareboy level tick by tick. It is the only
// owner of the solids and the actor; frontends feed it intents and read
// drawables and snapshots back.
package simulation

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/squareboy/shared/actor"
	"github.com/automoto/squareboy/shared/collision"
	"github.com/automoto/squareboy/shared/gameconfig"
	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/automoto/squareboy/shared/leveldata"
	"github.com/charmbracelet/log"
)

// Fill colors of the level solids and the actor.
var (
	// SolidColor fills every level solid.
	SolidColor = color.RGBA{R: 255, A: 255}
	// ActorColor fills the Squareboy square.
	ActorColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ErrNoLevel is returned by New when given a nil level.
var ErrNoLevel = errors.New("no level data")

// Intents are the logical inputs for one tick. They are level-triggered:
// a held intent acts on every tick.
type Intents struct {
	Left  bool
	Right bool
	Down  bool
	Jump  bool
}

// Events reports what happened during one tick.
type Events struct {
	Tick   int
	Moved  bool // a horizontal intent moved the actor or scrolled
	Jumped bool // a jump started this tick
	Reset  bool // the actor crossed the loss line and the level restarted
	FellAt int  // actor y when the loss was detected; only set with Reset
}

// Kind tells renderers what a drawable is.
type Kind int

const (
	KindSolid Kind = iota
	KindActor
)

// Drawable is a flat-colored rectangle in viewport coordinates.
type Drawable struct {
	Rect  gamemath.Rect
	Color color.RGBA
	Kind  Kind
}

// Snapshot is a read-only summary of the simulation.
type Snapshot struct {
	Level  string
	Tick   int
	Actor  gamemath.Rect
	Jump   actor.JumpState
	Scroll int
	Resets int
}

// Simulation runs a single level.
type Simulation struct {
	settings gameconfig.Settings
	level    *leveldata.CollisionData
	spawn    leveldata.SpawnPoint
	space    *collision.Space
	boy      *actor.Squareboy
	tick     int
	resets   int
}

// New validates the settings against the level and builds the first run.
func New(settings gameconfig.Settings, level *leveldata.CollisionData) (*Simulation, error) {
	if level == nil {
		return nil, ErrNoLevel
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if level.TileSize%settings.MovementInterval != 0 {
		return nil, fmt.Errorf("level %s: movementInterval %d must divide tile size %d",
			level.Name, settings.MovementInterval, level.TileSize)
	}

	spawn := leveldata.SpawnPoint{X: settings.SpawnX, Y: settings.SpawnY}
	if level.Spawn != nil {
		spawn = *level.Spawn
		if spawn.X%settings.MovementInterval != 0 || spawn.Y%settings.MovementInterval != 0 {
			return nil, fmt.Errorf("level %s: spawn (%d,%d) is off the %d pixel movement grid",
				level.Name, spawn.X, spawn.Y, settings.MovementInterval)
		}
	}

	s := &Simulation{
		settings: settings,
		level:    level,
		spawn:    spawn,
	}
	s.reset()

	log.Debug("simulation ready", "level", level.Name, "solids", s.space.Len(),
		"spawnX", spawn.X, "spawnY", spawn.Y)
	return s, nil
}

// reset rebuilds the solids from the level data and respawns the actor.
func (s *Simulation) reset() {
	cellSize := s.level.TileSize
	s.space = collision.NewSpace(s.level.Width, s.level.Height, cellSize)
	for _, r := range s.level.Solids {
		s.space.Add(r.Rect(), SolidColor)
	}

	s.boy = actor.New(s.spawn.X, s.spawn.Y, actor.Config{
		Size:             s.settings.TileSize,
		Interval:         s.settings.MovementInterval,
		JumpTicks:        s.settings.JumpTicks,
		Bands:            s.Bands(),
		GroundedJumpOnly: s.settings.GroundedJumpOnly,
	}, s.space)
	s.boy.Color = ActorColor
}

// Step runs one tick: horizontal intent, MoveDown, Jump, jump/gravity, then
// the loss check. A loss resets the level before Step returns.
func (s *Simulation) Step(in Intents) Events {
	s.tick++
	ev := Events{Tick: s.tick}

	switch {
	case in.Left && !in.Right:
		ev.Moved = s.boy.MoveLeft()
	case in.Right && !in.Left:
		ev.Moved = s.boy.MoveRight()
	}
	if in.Down {
		s.boy.MoveDown()
	}
	if in.Jump {
		ev.Jumped = s.boy.RequestJump()
	}
	s.boy.Update()

	if y := s.boy.Rect().Y; y >= s.settings.LossLine() {
		ev.Reset = true
		ev.FellAt = y
		s.resets++
		s.reset()
		log.Debug("squareboy fell", "tick", s.tick, "y", y, "resets", s.resets)
	}
	return ev
}

// Restart puts the level back to its starting state without counting a loss.
func (s *Simulation) Restart() {
	s.reset()
}

// Resets returns how many times the actor has been lost.
func (s *Simulation) Resets() int {
	return s.resets
}

// Tick returns the number of ticks stepped so far.
func (s *Simulation) Tick() int {
	return s.tick
}

// Actor returns the live actor. Callers must not move it.
func (s *Simulation) Actor() *actor.Squareboy {
	return s.boy
}

// Space returns the live solid set. Callers must not scroll it.
func (s *Simulation) Space() *collision.Space {
	return s.space
}

// Settings returns the settings the simulation was built with.
func (s *Simulation) Settings() gameconfig.Settings {
	return s.settings
}

// Level returns the level data.
func (s *Simulation) Level() *leveldata.CollisionData {
	return s.level
}

// Bands returns the scroll bands across the viewport width.
func (s *Simulation) Bands() collision.Bands {
	return collision.Bands{Width: s.settings.WindowWidth, Count: s.settings.ScrollBands}
}

// Viewport is the visible area in viewport coordinates.
func (s *Simulation) Viewport() gamemath.Rect {
	return gamemath.NewRect(0, 0, s.settings.WindowWidth, s.settings.WindowHeight)
}

// Drawables lists the visible solids followed by the actor.
func (s *Simulation) Drawables() []Drawable {
	visible := s.space.Visible(s.Viewport())
	out := make([]Drawable, 0, len(visible)+1)
	for _, solid := range visible {
		out = append(out, Drawable{Rect: solid.Bounds(), Color: solid.Color, Kind: KindSolid})
	}
	out = append(out, Drawable{Rect: s.boy.Rect(), Color: s.boy.Color, Kind: KindActor})
	return out
}

// Snapshot summarises the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Level:  s.level.Name,
		Tick:   s.tick,
		Actor:  s.boy.Rect(),
		Jump:   s.boy.JumpState(),
		Scroll: s.space.Offset(),
		Resets: s.resets,
	}
}
