package leveldata

import (
	"fmt"
	"io/fs"
	"strings"
)

// Grid characters.
const (
	SolidCell = 'X'
	RowEnd    = '|'
)

// ParseGrid builds collision data from a tile grid string. Every 'X' at
// column c of row r becomes a tileSize square at (c*tileSize, r*tileSize).
// '|' ends a row; any other character is an empty cell. The last row may
// omit its '|' but must still be full width.
func ParseGrid(name, grid string, tileSize int) (*CollisionData, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("parse %s: %w", name, ErrInvalidTileSize)
	}

	data := &CollisionData{Name: name, TileSize: tileSize}
	want := -1
	col, row := 0, 0

	endRow := func() error {
		if want < 0 {
			want = col
		} else if col != want {
			return &RowWidthError{Row: row, Width: col, Want: want}
		}
		row++
		col = 0
		return nil
	}

	for _, ch := range grid {
		switch ch {
		case RowEnd:
			if err := endRow(); err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
		case SolidCell:
			data.Solids = append(data.Solids, SolidRect{
				X: col * tileSize,
				Y: row * tileSize,
				W: tileSize,
				H: tileSize,
			})
			col++
		default:
			col++
		}
	}
	if col > 0 {
		if err := endRow(); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	if want <= 0 {
		return nil, fmt.Errorf("parse %s: %w", name, ErrEmptyGrid)
	}

	data.Columns = want
	data.Rows = row
	data.Width = want * tileSize
	data.Height = row * tileSize
	return data, nil
}

// LoadGrid reads a grid file from fsys. Line breaks only lay the grid out
// for editing and are dropped before parsing.
func LoadGrid(fsys fs.FS, path string, tileSize int) (*CollisionData, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	grid := strings.NewReplacer("\r", "", "\n", "").Replace(string(raw))
	return ParseGrid(stem(path), grid, tileSize)
}
