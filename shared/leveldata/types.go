// Package leveldata reads level files into plain data: the tile grid from a
// CSV or TMX file, plus the platforms, camera holds and gravity from an
// optional level script next to it.
package leveldata

import (
	"image/color"
	"time"

	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

// Platform size used when a script leaves it out.
const (
	DefaultPlatformWidth  = 128
	DefaultPlatformHeight = 20
)

// Level is everything parsed from one level file and its script.
type Level struct {
	Name       string
	Width      int // tiles
	Height     int // tiles
	Background color.RGBA
	Tiles      []tilemap.Placement
	Script     Script
}

// Script holds the per-level setup that does not live in the tile grid.
type Script struct {
	Platforms   []PlatformSpec `yaml:"platforms"`
	CameraHolds []int          `yaml:"cameraHolds"`
	// Gravity overrides the map default when non-zero.
	Gravity float64 `yaml:"gravity"`
}

// PlatformSpec describes one moving platform. Start and Stop are tile
// coordinates; Width and Height are pixels.
type PlatformSpec struct {
	Start   [2]float64    `yaml:"start"`
	Stop    [2]float64    `yaml:"stop"`
	Speed   float64       `yaml:"speed"`
	Hold    time.Duration `yaml:"hold"`
	OneTime bool          `yaml:"oneTime"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Lethal  *LethalSpec   `yaml:"lethal,omitempty"`
}

// LethalSpec makes a platform sleep until its sensor fires and kill on
// contact from the listed directions.
type LethalSpec struct {
	Sensor [2]int   `yaml:"sensor"`
	Bias   [2]int   `yaml:"bias"`
	Facing []string `yaml:"facing"`
	Kill   []string `yaml:"kill"`
}

func (s *Script) merge(o Script) {
	s.Platforms = append(s.Platforms, o.Platforms...)
	s.CameraHolds = append(s.CameraHolds, o.CameraHolds...)
	if o.Gravity != 0 {
		s.Gravity = o.Gravity
	}
}
