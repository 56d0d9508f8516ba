package terminal

import (
	"github.com/automoto/squareboy/shared/simulation"
	"github.com/gdamore/tcell/v2"
)

// Key is a movement key the terminal tracks as held.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyDown
	KeyJump
	keyCount
)

// Command is what a single terminal key event asks for.
type Command struct {
	Key     Key
	HasKey  bool
	Restart bool
	Quit    bool
}

// Translate maps a key event to a command. Arrows, WASD and hjkl move;
// space or up jumps; r restarts; q, Escape and Ctrl-C quit.
func Translate(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyLeft:
		return Command{Key: KeyLeft, HasKey: true}
	case tcell.KeyRight:
		return Command{Key: KeyRight, HasKey: true}
	case tcell.KeyDown:
		return Command{Key: KeyDown, HasKey: true}
	case tcell.KeyUp:
		return Command{Key: KeyJump, HasKey: true}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Quit: true}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	switch r {
	case 'a', 'A', 'h':
		return Command{Key: KeyLeft, HasKey: true}
	case 'd', 'D', 'l':
		return Command{Key: KeyRight, HasKey: true}
	case 's', 'S', 'j':
		return Command{Key: KeyDown, HasKey: true}
	case 'w', 'W', 'k', ' ':
		return Command{Key: KeyJump, HasKey: true}
	case 'r', 'R':
		return Command{Restart: true}
	case 'q', 'Q':
		return Command{Quit: true}
	}
	return Command{}
}

// Holds turns key presses into held intents.
//
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held for Window ticks after it was last seen. The window has
// to outlast the terminal's key repeat delay or a held key flickers.
type Holds struct {
	Window int

	seen [keyCount]int
	set  [keyCount]bool
}

// NewHolds tracks keys with a hold window of window ticks.
func NewHolds(window int) *Holds {
	if window < 1 {
		window = 1
	}
	return &Holds{Window: window}
}

// Press records k as seen at tick.
func (h *Holds) Press(k Key, tick int) {
	h.seen[k] = tick
	h.set[k] = true
}

// Held reports whether k is still held at tick.
func (h *Holds) Held(k Key, tick int) bool {
	return h.set[k] && tick-h.seen[k] < h.Window
}

// Release forgets every key.
func (h *Holds) Release() {
	h.set = [keyCount]bool{}
}

// Intents returns the intents held at tick. Left and right pressed within
// the same window both count as held; the simulation cancels them.
func (h *Holds) Intents(tick int) simulation.Intents {
	return simulation.Intents{
		Left:  h.Held(KeyLeft, tick),
		Right: h.Held(KeyRight, tick),
		Down:  h.Held(KeyDown, tick),
		Jump:  h.Held(KeyJump, tick),
	}
}
