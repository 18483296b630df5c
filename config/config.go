package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64
	JumpForce float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	Color color.RGBA
}

// KeyConfig contains collectible key configuration values
type KeyConfig struct {
	HoverDistance float64 // pixels the sprite bobs up and down
	HoverDuration float32 // seconds per half cycle
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64

	// Collision space cell size in pixels
	CellSize int
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDMargin   float64
	HUDFontSize float64
	HUDColor    color.RGBA

	// Debug colors keyed by collision group name
	DebugColors map[string]color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	// Tick rate the host drives the simulation at
	TPS int

	// World size used for the collision space when a level is smaller
	WorldWidth  int
	WorldHeight int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool // Draw collision boxes (toggled with F1)
	LogLevel      string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Key KeyConfig
var Physics PhysicsConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:       800,
		Height:      600,
		TPS:         60,
		WorldWidth:  3200,
		WorldHeight: 1200,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 10.0,
		CellSize:     16,
	}

	// Player Config
	Player = PlayerConfig{
		MoveSpeed:       3.0,
		JumpForce:       9.0,
		CollisionWidth:  16,
		CollisionHeight: 24,
		Color:           color.RGBA{R: 80, G: 160, B: 255, A: 255},
	}

	// Key Config
	Key = KeyConfig{
		HoverDistance: 3,
		HoverDuration: 0.6,
	}

	// UI Config
	UI = UIConfig{
		HUDMargin:   8,
		HUDFontSize: 14,
		HUDColor:    White,
		DebugColors: map[string]color.RGBA{
			"blocks": Red,
			"doors":  Blue,
			"keys":   Yellow,
			"ghosts": Magenta,
			"player": Green,
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowColliders: false,
		LogLevel:      "info",
	}
}
