package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTileSize = errors.New("tile size must be positive")
	ErrEmptyGrid       = errors.New("grid has no cells")
	ErrUnknownFormat   = errors.New("unknown level format")
	ErrNoSolidsLayer   = errors.New("map has no solids layer")
)

// RowWidthError reports a grid row whose width differs from the first row.
type RowWidthError struct {
	Row   int
	Width int
	Want  int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("row %d has %d columns, want %d", e.Row, e.Width, e.Want)
}
