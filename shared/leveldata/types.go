// Package leveldata turns level files into collision data. It reads the
// plain text tile grid and Tiled TMX maps. It has no dependencies on
// ebitengine, donburi, or resolv; pure data only.
package leveldata

import "github.com/automoto/squareboy/shared/gamemath"

// CollisionData holds everything the simulation needs from one level.
type CollisionData struct {
	Name     string
	TileSize int
	Columns  int
	Rows     int
	Solids   []SolidRect
	Spawn    *SpawnPoint // nil when the level does not set one
	Width    int         // Columns * TileSize
	Height   int         // Rows * TileSize
}

// SolidRect is one solid tile in level coordinates.
type SolidRect struct {
	X, Y, W, H int
}

// Rect converts the tile to a gamemath rectangle.
func (s SolidRect) Rect() gamemath.Rect {
	return gamemath.NewRect(s.X, s.Y, s.W, s.H)
}

// SpawnPoint is where the actor starts.
type SpawnPoint struct {
	X, Y int
}
