package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the layout of a YAML config override. Sections and keys that are
// missing keep their built-in values.
type File struct {
	Game    Config        `yaml:"game"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	HUD     HUDConfig     `yaml:"hud"`
	Debug   DebugConfig   `yaml:"debug"`
	Level   LevelConfig   `yaml:"level"`
}

// LoadFile overlays the YAML document at path onto the global config.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply overlays a YAML document onto the global config. Nothing changes if
// the document fails to parse.
func Apply(data []byte) error {
	f := File{
		Game:    *C,
		Physics: Physics,
		Player:  Player,
		Camera:  Camera,
		HUD:     HUD,
		Debug:   Debug,
		Level:   Level,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if f.Game.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", f.Game.TPS)
	}

	game := f.Game
	C = &game
	Physics = f.Physics
	Player = f.Player
	Camera = f.Camera
	HUD = f.HUD
	Debug = f.Debug
	Level = f.Level
	return nil
}
