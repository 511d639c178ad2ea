package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	// Logical screen size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// TPS is the fixed simulation rate.
	TPS int `yaml:"tps"`
	// ViewportTilesX is the screen width in tiles. Camera holds trigger a
	// quarter screen past their column.
	ViewportTilesX int    `yaml:"viewportTilesX"`
	Title          string `yaml:"title"`
}

// FrameTime is the simulated time that passes each tick.
func (c *Config) FrameTime() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Tiles around the player searched for collisions each frame.
	ScanRadius int `yaml:"scanRadius"`
	// Movement multiplier on both axes while climbing.
	ClimbCoeff float64 `yaml:"climbCoeff"`
	// Distance of the wall slide probes from the body.
	SlideProbe float64 `yaml:"slideProbe"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`
	MaxHealth int     `yaml:"maxHealth"`

	// Analog stick deflection that counts as a direction.
	StickThreshold float64 `yaml:"stickThreshold"`

	JumpTime       time.Duration `yaml:"jumpTime"`
	WallJumpTime   time.Duration `yaml:"wallJumpTime"`
	WallJumpPropel time.Duration `yaml:"wallJumpPropel"`
	ShieldTime     time.Duration `yaml:"shieldTime"`
	KnockbackSpeed float64       `yaml:"knockbackSpeed"`

	// Vertical speed multipliers while wall sliding.
	SlideUpCoeff   float64 `yaml:"slideUpCoeff"`
	SlideDownCoeff float64 `yaml:"slideDownCoeff"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // 0..1, 1 snaps to the player
	Zoom            float64 `yaml:"zoom"`
}

// HUDConfig contains the health bar layout
type HUDConfig struct {
	BarWidth      float64       `yaml:"barWidth"`
	BarHeight     float64       `yaml:"barHeight"`
	BottomMargin  float64       `yaml:"bottomMargin"`
	DrainDuration time.Duration `yaml:"drainDuration"`
	FontSize      float64       `yaml:"fontSize"`
	DebugFontSize float64       `yaml:"debugFontSize"`
	FrameColor    color.RGBA    `yaml:"-"`
	TextColor     color.RGBA    `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled     bool `yaml:"enabled"`
	ShowObjects bool `yaml:"showObjects"`
	ShowScan    bool `yaml:"showScan"`
}

// LevelConfig names the level the hosts start with
type LevelConfig struct {
	Dir   string `yaml:"dir"`
	Start string `yaml:"start"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig
var Level LevelConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	Red          = color.RGBA{R: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{G: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, A: 255}
	Blue         = color.RGBA{G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Brown        = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	BlackOverlay = color.RGBA{A: 180}
)

func init() {
	C = &Config{
		Width:          960,
		Height:         528,
		TPS:            60,
		ViewportTilesX: 60,
		Title:          "Red Headband",
	}

	Physics = PhysicsConfig{
		ScanRadius: 2,
		ClimbCoeff: 0.5,
		SlideProbe: 1,
	}

	Player = PlayerConfig{
		Width:     21,
		Height:    24,
		Speed:     4,
		JumpSpeed: -6,
		MaxHealth: 300,

		StickThreshold: 0.8,

		JumpTime:       350 * time.Millisecond,
		WallJumpTime:   350 * time.Millisecond,
		WallJumpPropel: 150 * time.Millisecond,
		ShieldTime:     750 * time.Millisecond,
		KnockbackSpeed: 1,

		SlideUpCoeff:   0.6,
		SlideDownCoeff: 0.8,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		Zoom:            1,
	}

	HUD = HUDConfig{
		BarWidth:      300,
		BarHeight:     12,
		BottomMargin:  10,
		DrainDuration: 400 * time.Millisecond,
		FontSize:      14,
		DebugFontSize: 10,
		FrameColor:    White,
		TextColor:     White,
	}

	Level = LevelConfig{
		Dir:   "levels",
		Start: "leveln.csv",
	}
}
