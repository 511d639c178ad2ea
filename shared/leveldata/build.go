package leveldata

import (
	"fmt"
	"image"

	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/platform"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

// BuildMap turns the level into a playable map with its platforms.
func (l *Level) BuildMap() (*tilemap.Map, error) {
	m, err := tilemap.Build(l.Name, l.Width, l.Height, l.Tiles)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", l.Name, err)
	}

	m.Background = l.Background
	if l.Script.Gravity != 0 {
		m.Gravity = l.Script.Gravity
	}
	m.CameraHolds = append([]int(nil), l.Script.CameraHolds...)
	for _, spec := range l.Script.Platforms {
		m.AddPlatform(spec.Build())
	}

	return m, nil
}

// Build creates the platform s describes.
func (s PlatformSpec) Build() *platform.Platform {
	c := platform.NewController(
		gamemath.Vec2{X: s.Start[0], Y: s.Start[1]},
		gamemath.Vec2{X: s.Stop[0], Y: s.Stop[1]},
		s.Speed, s.Hold, s.OneTime,
	)
	if s.Lethal == nil {
		return platform.New(c, s.Width, s.Height)
	}

	sensor := platform.NewSensor(
		image.Pt(s.Lethal.Sensor[0], s.Lethal.Sensor[1]),
		image.Pt(s.Lethal.Bias[0], s.Lethal.Bias[1]),
		platform.ParseFacing(s.Lethal.Facing...),
	)
	return platform.NewLethal(c, s.Width, s.Height, sensor, aabb.ParseDirections(s.Lethal.Kill...))
}
