package collision

import (
	"image/color"

	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags for objects in the broadphase space.
const (
	TagSolid = "solid"
	TagQuery = "query"
)

// Solid is an immovable block of level geometry. Its size never changes;
// its reported x follows the space's scroll offset.
type Solid struct {
	obj   *resolv.Object
	space *Space
	Color color.RGBA
}

// Level returns the solid's bounds in level coordinates (scroll ignored).
func (s *Solid) Level() gamemath.Rect {
	return gamemath.NewRect(int(s.obj.X), int(s.obj.Y), int(s.obj.W), int(s.obj.H))
}

// Bounds returns the solid's bounds in viewport coordinates.
func (s *Solid) Bounds() gamemath.Rect {
	return s.Level().Translate(s.space.scroll.Offset, 0)
}

// Space owns the level's solids and indexes them in a resolv spatial hash.
//
// Solids stay indexed at level coordinates. Scrolling only changes the
// offset added when bounds are reported, so it never re-indexes anything.
// Candidates may run concurrently with itself; Add and Scroll may not.
type Space struct {
	space  *resolv.Space
	solids []*Solid
	scroll ScrollState
}

// NewSpace creates an empty space covering width by height level pixels,
// hashed into cells of cellSize. Solids outside that area are kept but are
// never returned as candidates.
func NewSpace(width, height, cellSize int) *Space {
	return &Space{space: resolv.NewSpace(width, height, cellSize, cellSize)}
}

// Add creates a solid at r, given in level coordinates.
func (s *Space) Add(r gamemath.Rect, c color.RGBA) *Solid {
	obj := resolv.NewObject(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(r.W), float64(r.H)))
	solid := &Solid{obj: obj, space: s, Color: c}
	obj.Data = solid
	s.space.Add(obj)
	s.solids = append(s.solids, solid)
	return solid
}

// Solids returns every solid in insertion order.
func (s *Space) Solids() []*Solid {
	return s.solids
}

// Len returns the number of solids.
func (s *Space) Len() int {
	return len(s.solids)
}

// Rects returns every solid's viewport bounds as a brute-force view.
func (s *Space) Rects() Rects {
	out := make(Rects, len(s.solids))
	for i, solid := range s.solids {
		out[i] = solid.Bounds()
	}
	return out
}

// Scroll translates every solid's x by dx.
func (s *Space) Scroll(dx int) {
	s.scroll.Offset += dx
}

// Offset returns the cumulative scroll offset.
func (s *Space) Offset() int {
	return s.scroll.Offset
}

// Visible returns the solids whose viewport bounds intersect view.
func (s *Space) Visible(view gamemath.Rect) []*Solid {
	var out []*Solid
	for _, solid := range s.solids {
		if solid.Bounds().Intersects(view) {
			out = append(out, solid)
		}
	}
	return out
}

// Candidates returns the viewport bounds of every solid sharing a hash cell
// with actor nudged one pixel toward dir. Any solid flush against that side
// of the actor overlaps the nudged rectangle, so it is always included.
func (s *Space) Candidates(actor gamemath.Rect, dir gamemath.Direction) []gamemath.Rect {
	level := actor.Translate(-s.scroll.Offset, 0)
	query := resolv.NewObject(float64(level.X), float64(level.Y), float64(level.W), float64(level.H), TagQuery)
	// Bound to the space for Check without occupying any cell.
	query.Space = s.space

	dx, dy := dir.Delta()
	check := query.Check(float64(dx), float64(dy), TagSolid)
	if check == nil {
		return nil
	}

	objects := check.ObjectsByTags(TagSolid)
	out := make([]gamemath.Rect, 0, len(objects))
	for _, obj := range objects {
		if solid, ok := obj.Data.(*Solid); ok {
			out = append(out, solid.Bounds())
		}
	}
	return out
}
