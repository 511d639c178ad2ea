package gamemath

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointBetween(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 320, Y: 64}

	tests := []struct {
		name string
		pos  Vec2
		want bool
	}{
		{"start endpoint", a, true},
		{"stop endpoint", b, true},
		{"midpoint", Vec2{X: 160, Y: 32}, true},
		{"above y range", Vec2{X: 160, Y: -0.5}, false},
		{"below y range", Vec2{X: 160, Y: 64.5}, false},
		{"past stop on x", Vec2{X: 324, Y: 32}, false},
		{"before start on x", Vec2{X: -4, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointBetween(a, b, tt.pos))
			// Endpoint order does not matter.
			assert.Equal(t, tt.want, PointBetween(b, a, tt.pos))
		})
	}
}

func TestPointBetweenDegenerateSegment(t *testing.T) {
	p := Vec2{X: 96, Y: 96}
	assert.True(t, PointBetween(p, p, p))
	assert.False(t, PointBetween(p, p, Vec2{X: 96, Y: 97}))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.Equal(t, Vec2{X: 1, Y: 0}, Vec2{X: 320, Y: 0}.Normalize())
	assert.Equal(t, Vec2{X: 0, Y: -1}, Vec2{X: 0, Y: -12}.Normalize())

	n := Vec2{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestDirection(t *testing.T) {
	from := TileToPixel(Vec2{X: 26, Y: 22})
	to := TileToPixel(Vec2{X: 36, Y: 22})
	assert.Equal(t, Vec2{X: 5, Y: 0}, Direction(from, to, 5))
	assert.Equal(t, Vec2{}, Direction(from, from, 5))
}

func TestRoundStep(t *testing.T) {
	assert.Equal(t, 2.0, RoundStep(2.5))
	assert.Equal(t, 4.0, RoundStep(3.5))
	assert.Equal(t, -2.0, RoundStep(-2.5))
	assert.Equal(t, 3.0, RoundStep(3.2))
	assert.Equal(t, 0.0, RoundStep(0.4))
}

func TestTileConversions(t *testing.T) {
	assert.Equal(t, Vec2{X: 64, Y: 96}, TileToPixel(Vec2{X: 2, Y: 3}))
	assert.Equal(t, image.Pt(2, 3), PixelToTile(64, 96))
	assert.Equal(t, image.Pt(1, 2), PixelToTile(63.9, 95.9))
	assert.Equal(t, image.Pt(-1, 0), PixelToTile(-0.5, 4))
	assert.Equal(t, image.Pt(3, 3), CenterTile(100, 100, 21, 24))
}

func TestApplySlide(t *testing.T) {
	assert.InDelta(t, 6.4, ApplySlide(8, 0.6, 0.8), 1e-12)
	assert.InDelta(t, -3.6, ApplySlide(-6, 0.6, 0.8), 1e-12)
	assert.Equal(t, 0.0, ApplySlide(0, 0.6, 0.8))
}
