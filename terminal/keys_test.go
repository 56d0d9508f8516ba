package terminal

import (
	"testing"

	"github.com/automoto/squareboy/shared/simulation"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"arrow left", tcell.KeyLeft, 0, Command{Key: KeyLeft, HasKey: true}},
		{"arrow right", tcell.KeyRight, 0, Command{Key: KeyRight, HasKey: true}},
		{"arrow down", tcell.KeyDown, 0, Command{Key: KeyDown, HasKey: true}},
		{"arrow up jumps", tcell.KeyUp, 0, Command{Key: KeyJump, HasKey: true}},
		{"space jumps", tcell.KeyRune, ' ', Command{Key: KeyJump, HasKey: true}},
		{"wasd", tcell.KeyRune, 'a', Command{Key: KeyLeft, HasKey: true}},
		{"vi keys", tcell.KeyRune, 'l', Command{Key: KeyRight, HasKey: true}},
		{"restart", tcell.KeyRune, 'r', Command{Restart: true}},
		{"q quits", tcell.KeyRune, 'q', Command{Quit: true}},
		{"escape quits", tcell.KeyEscape, 0, Command{Quit: true}},
		{"ctrl-c quits", tcell.KeyCtrlC, 0, Command{Quit: true}},
		{"other rune", tcell.KeyRune, 'z', Command{}},
		{"other key", tcell.KeyTab, 0, Command{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.key, tt.r))
		})
	}
}

func TestHoldsWindow(t *testing.T) {
	h := NewHolds(3)
	assert.False(t, h.Held(KeyRight, 1), "never pressed")

	h.Press(KeyRight, 5)
	assert.True(t, h.Held(KeyRight, 5))
	assert.True(t, h.Held(KeyRight, 7))
	assert.False(t, h.Held(KeyRight, 8))

	// A repeat extends the hold.
	h.Press(KeyRight, 7)
	assert.True(t, h.Held(KeyRight, 9))
}

func TestHoldsIntents(t *testing.T) {
	h := NewHolds(2)
	h.Press(KeyLeft, 1)
	h.Press(KeyRight, 1)
	h.Press(KeyJump, 2)

	assert.Equal(t, simulation.Intents{Left: true, Right: true, Jump: true}, h.Intents(2))
	assert.Equal(t, simulation.Intents{Jump: true}, h.Intents(3))
	assert.Equal(t, simulation.Intents{}, h.Intents(4))
}

func TestHoldsRelease(t *testing.T) {
	h := NewHolds(10)
	h.Press(KeyDown, 1)
	h.Release()
	assert.False(t, h.Held(KeyDown, 1))
}

func TestNewHoldsClampsWindow(t *testing.T) {
	h := NewHolds(0)
	h.Press(KeyJump, 4)
	assert.True(t, h.Held(KeyJump, 4))
	assert.False(t, h.Held(KeyJump, 5))
}
