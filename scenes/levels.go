package scenes

import (
	"github.com/automoto/squareboy/shared/leveldata"
	"github.com/automoto/squareboy/ui"
)

// Levels is the set of levels the menu offers, in display order.
type Levels struct {
	Names []string
	Data  map[string]*leveldata.CollisionData
}

// NewLevels wraps a loaded catalogue. extra, when set, is offered first
// and replaces a bundled level of the same name.
func NewLevels(data map[string]*leveldata.CollisionData, names []string, extra *leveldata.CollisionData) *Levels {
	l := &Levels{Data: make(map[string]*leveldata.CollisionData, len(data)+1)}
	for _, name := range names {
		l.Data[name] = data[name]
	}
	if extra != nil {
		if _, ok := l.Data[extra.Name]; !ok {
			l.Names = append(l.Names, extra.Name)
		}
		l.Data[extra.Name] = extra
	}
	l.Names = append(l.Names, names...)
	return l
}

// Get returns the level called name.
func (l *Levels) Get(name string) (*leveldata.CollisionData, bool) {
	data, ok := l.Data[name]
	return data, ok
}

func (l *Levels) entries() []ui.LevelEntry {
	out := make([]ui.LevelEntry, 0, len(l.Names))
	for _, name := range l.Names {
		out = append(out, ui.LevelEntry{Name: name, Solids: len(l.Data[name].Solids)})
	}
	return out
}
