package gameconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.LossY)
	assert.Equal(t, 800, cfg.LossLine())
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("tileSize: 20\nmovementInterval: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.TileSize)
	assert.Equal(t, 5, cfg.MovementInterval)
	assert.Equal(t, 1200, cfg.WindowWidth)
	assert.Equal(t, 15, cfg.JumpTicks)
}

func TestLossLineFallsBackToWindowHeight(t *testing.T) {
	cfg := Default()
	cfg.WindowHeight = 600
	assert.Equal(t, 600, cfg.LossLine())
}

func TestParseLossLineFollowsWindowHeight(t *testing.T) {
	cfg, err := Parse([]byte("windowHeight: 1000\n"))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.LossLine())

	cfg, err = Parse([]byte("windowHeight: 1000\nlossY: 700\n"))
	require.NoError(t, err)
	assert.Equal(t, 700, cfg.LossLine(), "explicit lossY wins")
}

func TestValidateRejectsIntervalThatDoesNotDivideTile(t *testing.T) {
	cfg := Default()
	cfg.MovementInterval = 7

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must divide tileSize")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.WindowWidth = 0
	cfg.JumpTicks = -1
	cfg.ScrollBands = 1
	cfg.SpawnX = 105

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "windowWidth")
	assert.Contains(t, msg, "jumpTicks")
	assert.Contains(t, msg, "scrollBands")
	assert.Contains(t, msg, "movement grid")
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("windowWidth: 900\ngroundedJumpOnly: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.WindowWidth)
	assert.True(t, cfg.GroundedJumpOnly)
	assert.Equal(t, 800, cfg.WindowHeight)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tileSize: [oops"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
