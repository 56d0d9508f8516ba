// Package levels embeds the bundled level files.
package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/squareboy/shared/leveldata"
)

// Default is the level played when none is chosen.
const Default = "squareboy"

//go:embed *.txt *.tmx
var FS embed.FS

// Catalogue loads every bundled level. Text grids use tileSize.
func Catalogue(tileSize int) (map[string]*leveldata.CollisionData, []string, error) {
	return leveldata.LoadAll(FS, ".", tileSize)
}

// Resolve returns the bundled level called nameOrPath, or loads it from
// disk when it names an existing file.
func Resolve(nameOrPath string, tileSize int) (*leveldata.CollisionData, error) {
	if nameOrPath == "" {
		nameOrPath = Default
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		dir, file := filepath.Split(nameOrPath)
		if dir == "" {
			dir = "."
		}
		return leveldata.Load(os.DirFS(dir), file, tileSize)
	}

	all, names, err := Catalogue(tileSize)
	if err != nil {
		return nil, err
	}
	data, ok := all[nameOrPath]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (bundled: %v)", nameOrPath, names)
	}
	return data, nil
}
