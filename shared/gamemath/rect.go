// Package gamemath holds the integer geometry shared by the simulation,
// the client and the terminal frontend. It has no dependencies on
// ebitengine, donburi, or resolv.
package gamemath

// Rect is an axis-aligned rectangle in world pixels. X, Y is the top-left
// corner and y grows downward.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns a Rect at x, y sized w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Horizontal returns the rectangle's extent on the x axis.
func (r Rect) Horizontal() Span {
	return Span{Lo: r.X, Hi: r.X + r.W}
}

// Vertical returns the rectangle's extent on the y axis.
func (r Rect) Vertical() Span {
	return Span{Lo: r.Y, Hi: r.Y + r.H}
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Step returns r moved distance pixels toward dir.
func (r Rect) Step(dir Direction, distance int) Rect {
	dx, dy := dir.Delta()
	return r.Translate(dx*distance, dy*distance)
}

// Intersects reports whether r and o share any area. Rectangles that only
// touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Horizontal().Overlaps(o.Horizontal()) && r.Vertical().Overlaps(o.Vertical())
}

// Span is the half-open interval [Lo, Hi) a rectangle covers on one axis.
type Span struct {
	Lo, Hi int
}

// Overlaps reports whether the two half-open spans share at least one
// pixel. Spans that merely meet (s.Hi == o.Lo) do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Lo < o.Hi && o.Lo < s.Hi
}
