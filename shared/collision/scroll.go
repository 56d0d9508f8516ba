package collision

import "github.com/automoto/squareboy/shared/gamemath"

// ScrollState is the cumulative horizontal camera shift applied to every
// solid. A positive offset means the world has moved right on screen.
type ScrollState struct {
	Offset int
}

// Bands splits the viewport width into equal bands. A horizontal move that
// starts in the outermost band on its side scrolls the world instead of
// moving the actor. With Count 3 the outer thirds scroll and the middle
// third moves the actor.
type Bands struct {
	Width int
	Count int
}

// LeftEdge is the x below which a left move scrolls.
func (b Bands) LeftEdge() int {
	return b.Width / b.Count
}

// RightEdge is the x above which a right move scrolls.
func (b Bands) RightEdge() int {
	return (b.Width / b.Count) * (b.Count - 1)
}

// Scrolls reports whether a legal move toward dir from x should scroll the
// world rather than move the actor.
func (b Bands) Scrolls(x int, dir gamemath.Direction) bool {
	switch dir {
	case gamemath.Left:
		return x < b.LeftEdge()
	case gamemath.Right:
		return x > b.RightEdge()
	}
	return false
}
