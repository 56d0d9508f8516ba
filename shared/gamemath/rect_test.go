package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"identical", Span{0, 30}, Span{0, 30}, true},
		{"partial", Span{0, 30}, Span{20, 50}, true},
		{"contained", Span{0, 30}, Span{10, 20}, true},
		{"meeting", Span{0, 30}, Span{30, 60}, false},
		{"meeting reversed", Span{30, 60}, Span{0, 30}, false},
		{"apart", Span{0, 10}, Span{20, 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(100, 500, 30, 40)
	assert.Equal(t, 100, r.Left())
	assert.Equal(t, 130, r.Right())
	assert.Equal(t, 500, r.Top())
	assert.Equal(t, 540, r.Bottom())
	assert.Equal(t, Span{100, 130}, r.Horizontal())
	assert.Equal(t, Span{500, 540}, r.Vertical())
}

func TestRectStep(t *testing.T) {
	r := NewRect(100, 500, 30, 30)
	assert.Equal(t, NewRect(90, 500, 30, 30), r.Step(Left, 10))
	assert.Equal(t, NewRect(110, 500, 30, 30), r.Step(Right, 10))
	assert.Equal(t, NewRect(100, 490, 30, 30), r.Step(Up, 10))
	assert.Equal(t, NewRect(100, 510, 30, 30), r.Step(Down, 10))
	assert.Equal(t, NewRect(100, 500, 30, 30), r, "Step must not mutate the receiver")
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 30, 30)
	assert.True(t, r.Intersects(NewRect(29, 29, 30, 30)))
	assert.False(t, r.Intersects(NewRect(30, 0, 30, 30)))
	assert.False(t, r.Intersects(NewRect(0, 30, 30, 30)))
	assert.False(t, r.Intersects(NewRect(30, 30, 30, 30)))
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, -dx, ox, d.String())
		assert.Equal(t, -dy, oy, d.String())
		assert.Equal(t, dx != 0, d.Horizontal(), d.String())
	}
}
