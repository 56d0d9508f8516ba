package config

import (
	"image/color"

	"github.com/automoto/squareboy/shared/gameconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	// Settings drive the simulation; Width and Height mirror its window size.
	Settings gameconfig.Settings
	Level    string
}

// HUDConfig contains the in-game overlay values
type HUDConfig struct {
	Margin      float64
	LineHeight  float64
	TextColor   color.RGBA
	ShadowColor color.RGBA
}

// DebugDrawConfig contains debug overlay colors
type DebugDrawConfig struct {
	CandidateColor color.RGBA
	BlockerColor   color.RGBA
	ActorColor     color.RGBA
	BandColor      color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	TitleGap          int
	Title             string
	MenuOptions       []string // indexed by components.PauseMenuOption
	KeyboardHint      string
	GamepadHint       string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title string
}

// FadeConfig contains the reset fade-in overlay values
type FadeConfig struct {
	Color    color.RGBA
	Duration float32 // seconds
	From     float32 // starting alpha, 0 to 1
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Start with the collision overlay visible
}

// Global configuration instances
var C *Config
var HUD HUDConfig
var DebugDraw DebugDrawConfig
var Pause PauseConfig
var Menu MenuConfig
var Fade FadeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Apply installs settings as the active configuration.
func Apply(s gameconfig.Settings, level string) {
	C.Settings = s
	C.Width = s.WindowWidth
	C.Height = s.WindowHeight
	C.Level = level
}

func init() {
	settings := gameconfig.Default()
	C = &Config{
		Width:    settings.WindowWidth,
		Height:   settings.WindowHeight,
		Settings: settings,
		Level:    settings.Level,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  18,
		TextColor:   White,
		ShadowColor: color.RGBA{R: 0, G: 0, B: 0, A: 200},
	}

	DebugDraw = DebugDrawConfig{
		CandidateColor: Cyan,
		BlockerColor:   Yellow,
		ActorColor:     Green,
		BandColor:      color.RGBA{R: 255, G: 255, B: 255, A: 40},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		TitleGap:          40,
		Title:             "PAUSED",
		MenuOptions:       []string{"RESUME", "RESTART", "MENU"},
		KeyboardHint:      "Arrows: Navigate   Enter: Select   Esc: Resume",
		GamepadHint:       "Stick/D-Pad: Navigate   A: Select   Start: Resume",
	}

	Menu = MenuConfig{
		Title: "SQUAREBOY",
	}

	Fade = FadeConfig{
		Color:    Red,
		Duration: 0.4,
		From:     0.6,
	}
}
