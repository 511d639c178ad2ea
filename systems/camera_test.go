package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/config"
)

func TestClampView(t *testing.T) {
	tests := []struct {
		name          string
		v, lo, hi, hf float64
		want          float64
	}{
		{"inside", 500, 0, 2000, 100, 500},
		{"left edge", 20, 0, 2000, 100, 100},
		{"right edge", 1990, 0, 2000, 100, 1900},
		{"level smaller than view", 20, 0, 150, 100, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampView(tt.v, tt.lo, tt.hi, tt.hf))
		})
	}
}

func TestCameraHolds(t *testing.T) {
	camera := &components.CameraData{MaxX: 10000, Holds: []int{59, 90}}
	peek := float64(59+config.C.ViewportTilesX/4) * 32

	updateCameraHolds(camera, peek)
	assert.Equal(t, 0.0, camera.MinX)
	assert.Len(t, camera.Holds, 2)

	updateCameraHolds(camera, peek+1)
	assert.Equal(t, 59.0*32, camera.MinX)
	assert.Equal(t, []int{90}, camera.Holds)
}

func TestCameraLocksWhenPlayerFallsOut(t *testing.T) {
	l := newTestLevel(t)
	l.place(64, float64(l.m.PixelHeight())+10)

	UpdateBelowMap(l.world)

	assert.False(t, components.Player.Get(l.player).Alive)
	e, ok := components.Camera.First(l.world)
	require.True(t, ok)
	camera := components.Camera.Get(e)
	assert.Equal(t, components.LockBoth, camera.Lock)

	before := camera.Position
	l.place(200, 40)
	UpdateCamera(l.world)
	assert.Equal(t, before, camera.Position)
}

func TestCameraFollowsWithSmoothing(t *testing.T) {
	l := newTestLevel(t)
	e, _ := components.Camera.First(l.world)
	camera := components.Camera.Get(e)
	camera.MaxX, camera.MaxY = 100000, 100000
	camera.Position.X, camera.Position.Y = 1000, 1000

	l.place(2000-10.5, 1000-12)
	UpdateCamera(l.world)

	assert.InDelta(t, 1000+1000*config.Camera.FollowSmoothing, camera.Position.X, 1e-9)
	assert.InDelta(t, 1000.0, camera.Position.Y, 1e-9)
}
