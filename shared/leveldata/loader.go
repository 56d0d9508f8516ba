package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled names the loader looks for.
const (
	SolidsLayer = "solids"
	SpawnGroup  = "Spawn"
)

// LoadTMX parses a Tiled map. Every non-empty tile of the solids layer is a
// solid and the first object of the Spawn group sets the spawn point. The
// map's tile width is the tile size. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileSize := levelMap.TileWidth
	if tileSize <= 0 || levelMap.TileHeight != tileSize {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrInvalidTileSize)
	}

	data := &CollisionData{
		Name:     stem(tmxPath),
		TileSize: tileSize,
		Columns:  levelMap.Width,
		Rows:     levelMap.Height,
		Width:    levelMap.Width * tileSize,
		Height:   levelMap.Height * tileSize,
	}

	var found bool
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidsLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Solids = append(data.Solids, SolidRect{
					X: x * tileSize,
					Y: y * tileSize,
					W: tileSize,
					H: tileSize,
				})
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSolidsLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		data.Spawn = &SpawnPoint{X: int(o.X), Y: int(o.Y)}
		break
	}

	return data, nil
}

// Load reads a level file, picking the parser from the extension. tileSize
// only applies to text grids; TMX maps carry their own.
func Load(fsys fs.FS, levelPath string, tileSize int) (*CollisionData, error) {
	switch path.Ext(levelPath) {
	case ".txt":
		return LoadGrid(fsys, levelPath, tileSize)
	case ".tmx":
		return LoadTMX(fsys, levelPath)
	}
	return nil, fmt.Errorf("load %s: %w", levelPath, ErrUnknownFormat)
}

// LoadAll loads every .txt and .tmx level in dir and returns them keyed by
// stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string, tileSize int) (map[string]*CollisionData, []string, error) {
	var matches []string
	for _, ext := range []string{"txt", "tmx"} {
		pattern := dir + "/*." + ext
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", dir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := Load(fsys, p, tileSize)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		if _, dup := levels[data.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate level name %q in %s", data.Name, dir)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
