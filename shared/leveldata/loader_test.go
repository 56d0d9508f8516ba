package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stepTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="3" tilewidth="30" tileheight="30" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="blocks" tilewidth="30" tileheight="30" tilecount="1" columns="1">
  <tile id="0"/>
 </tileset>
 <layer id="1" name="solids" width="3" height="3">
  <data encoding="csv">
0,0,0,
0,1,0,
0,1,1
</data>
 </layer>
 <objectgroup id="2" name="Spawn">
  <object id="1" x="0" y="30" width="30" height="30"/>
 </objectgroup>
</map>
`

const noSolidsTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="30" tileheight="30" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="blocks" tilewidth="30" tileheight="30" tilecount="1" columns="1">
  <tile id="0"/>
 </tileset>
 <layer id="1" name="decor" width="1" height="1">
  <data encoding="csv">
1
</data>
 </layer>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/step.tmx":   {Data: []byte(stepTMX)},
		"levels/step2.txt":  {Data: []byte("   |\n X |\n XX|\n")},
		"levels/README.md":  {Data: []byte("not a level")},
		"broken/decor.tmx":  {Data: []byte(noSolidsTMX)},
		"broken/level.json": {Data: []byte("{}")},
	}
}

func TestLoadTMX(t *testing.T) {
	data, err := LoadTMX(testFS(), "levels/step.tmx")
	require.NoError(t, err)

	assert.Equal(t, "step", data.Name)
	assert.Equal(t, 30, data.TileSize)
	assert.Equal(t, 3, data.Columns)
	assert.Equal(t, 3, data.Rows)
	assert.Equal(t, 90, data.Width)
	assert.Equal(t, 90, data.Height)
	require.NotNil(t, data.Spawn)
	assert.Equal(t, SpawnPoint{X: 0, Y: 30}, *data.Spawn)
}

func TestTMXAndGridAgree(t *testing.T) {
	fsys := testFS()

	tmx, err := LoadTMX(fsys, "levels/step.tmx")
	require.NoError(t, err)
	grid, err := LoadGrid(fsys, "levels/step2.txt", 30)
	require.NoError(t, err)

	assert.Equal(t, grid.Solids, tmx.Solids)
	assert.Equal(t, grid.Width, tmx.Width)
	assert.Equal(t, grid.Height, tmx.Height)
}

func TestLoadTMXWithoutSolidsLayer(t *testing.T) {
	_, err := LoadTMX(testFS(), "broken/decor.tmx")
	assert.ErrorIs(t, err, ErrNoSolidsLayer)
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	fsys := testFS()

	data, err := Load(fsys, "levels/step.tmx", 10)
	require.NoError(t, err)
	assert.Equal(t, 30, data.TileSize, "TMX keeps its own tile size")

	data, err = Load(fsys, "levels/step2.txt", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, data.TileSize)

	_, err = Load(fsys, "broken/level.json", 10)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels", 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"step", "step2"}, names)
	assert.Len(t, levels, 2)
	assert.Len(t, levels["step2"].Solids, 3)
}

func TestLoadAllEmptyDir(t *testing.T) {
	_, _, err := LoadAll(fstest.MapFS{}, "levels", 30)
	assert.Error(t, err)
}
