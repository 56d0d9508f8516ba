// Package gameconfig holds the tunable simulation settings shared by every
// frontend.
package gameconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed settings.yaml
var defaultYAML []byte

// FileName is the settings file looked up in the user and local config dirs.
const FileName = "settings.yaml"

// Settings are the simulation options. The first four are the window and
// grid geometry; the rest tune spawning, jumping, scrolling and the loop.
type Settings struct {
	WindowWidth      int `yaml:"windowWidth"`
	WindowHeight     int `yaml:"windowHeight"`
	TileSize         int `yaml:"tileSize"`
	MovementInterval int `yaml:"movementInterval"`

	SpawnX      int `yaml:"spawnX"`
	SpawnY      int `yaml:"spawnY"`
	JumpTicks   int `yaml:"jumpTicks"`
	ScrollBands int `yaml:"scrollBands"`
	LossY       int `yaml:"lossY"` // 0 means WindowHeight
	TickRate    int `yaml:"tickRate"`

	Level            string `yaml:"level"`
	GroundedJumpOnly bool   `yaml:"groundedJumpOnly"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		WindowWidth:      1200,
		WindowHeight:     800,
		TileSize:         30,
		MovementInterval: 10,
		SpawnX:           100,
		SpawnY:           500,
		JumpTicks:        15,
		ScrollBands:      3,
		TickRate:         30,
		Level:            "squareboy",
	}
}

// LossLine returns the y at or below which the actor is lost.
func (s Settings) LossLine() int {
	if s.LossY > 0 {
		return s.LossY
	}
	return s.WindowHeight
}

// Validate checks every option and returns all problems joined together.
func (s Settings) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("windowWidth", s.WindowWidth)
	positive("windowHeight", s.WindowHeight)
	positive("tileSize", s.TileSize)
	positive("movementInterval", s.MovementInterval)
	positive("jumpTicks", s.JumpTicks)
	positive("tickRate", s.TickRate)

	if s.ScrollBands < 2 {
		errs = append(errs, fmt.Errorf("scrollBands must be at least 2, got %d", s.ScrollBands))
	}
	if s.LossY < 0 {
		errs = append(errs, fmt.Errorf("lossY must not be negative, got %d", s.LossY))
	}
	if s.SpawnX < 0 || s.SpawnY < 0 {
		errs = append(errs, fmt.Errorf("spawn (%d,%d) must not be negative", s.SpawnX, s.SpawnY))
	}

	if s.TileSize > 0 && s.MovementInterval > 0 {
		if s.TileSize%s.MovementInterval != 0 {
			errs = append(errs, fmt.Errorf("movementInterval %d must divide tileSize %d", s.MovementInterval, s.TileSize))
		}
		if s.SpawnX%s.MovementInterval != 0 || s.SpawnY%s.MovementInterval != 0 {
			errs = append(errs, fmt.Errorf("spawn (%d,%d) must sit on the %d pixel movement grid", s.SpawnX, s.SpawnY, s.MovementInterval))
		}
	}
	return errors.Join(errs...)
}

// Parse decodes YAML over the defaults, so missing keys keep their default.
func Parse(data []byte) (Settings, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads settings.
// Search order: customPath -> ~/.squareboy/settings.yaml -> ./configs/settings.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".squareboy", filename)
}
