package systems

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/platform"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/tags"
)

const frame = time.Second / 60

// testLevel is 16x8 tiles:
//
//	row 7     solid floor
//	(2,6)     player start
//	(2,3)     ceiling block
//	(5,3-6)   ladder
//	(8,4)     wall block
//	(10,6)    spikes
//	(9,1)     lethal platform, 32x64, kills from the sides
//	(11,5)    platform, 128x20, travels to (13,5)
type testLevel struct {
	world   donburi.World
	player  *donburi.Entry
	m       *tilemap.Map
	ride    *platform.Platform
	crusher *platform.Platform
}

func newTestLevel(t *testing.T) *testLevel {
	t.Helper()

	placements := []tilemap.Placement{
		{X: 2, Y: 6, Type: tilemap.TypePlayer},
		{X: 2, Y: 3, Type: tilemap.TypeTile},
		{X: 8, Y: 4, Type: tilemap.TypeTile},
		{X: 10, Y: 6, Type: tilemap.TypeSpikes},
	}
	for x := 0; x < 16; x++ {
		placements = append(placements, tilemap.Placement{X: x, Y: 7, Type: tilemap.TypeTile})
	}
	for y := 3; y < 7; y++ {
		placements = append(placements, tilemap.Placement{X: 5, Y: y, Type: tilemap.TypeLadder})
	}
	m, err := tilemap.Build("test", 16, 8, placements)
	require.NoError(t, err)

	ride := platform.New(
		platform.NewController(gamemath.Vec2{X: 11, Y: 5}, gamemath.Vec2{X: 13, Y: 5}, 2, time.Second, false),
		128, 20,
	)
	crusher := platform.NewLethal(
		platform.NewController(gamemath.Vec2{X: 9, Y: 1}, gamemath.Vec2{X: 9, Y: 3}, 2, time.Second, false),
		32, 64,
		platform.NewSensor(image.Pt(9, 4), image.Pt(1, 1), platform.Radial),
		aabb.FromLeft|aabb.FromRight,
	)
	m.AddPlatform(ride)
	m.AddPlatform(crusher)

	w := donburi.NewWorld()
	SetLevel(w, m, "test.csv")
	player, ok := tags.Player.First(w)
	require.True(t, ok)

	return &testLevel{world: w, player: player, m: m, ride: ride, crusher: crusher}
}

// place moves the player and centres the collision window on it.
func (l *testLevel) place(x, y float64) body {
	b := bodyOf(l.player)
	b.obj.MoveTo(x, y)
	r := b.obj.Rect()
	b.physics.Resolver.UpdateScanBounds(gamemath.CenterTile(r.X, r.Y, r.W, r.H), 2)
	return b
}

func (l *testLevel) input() *components.InputData {
	return GetOrCreateInput(l.world)
}

// step runs the gameplay systems of one frame without the pause gate.
func (l *testLevel) step() {
	UpdatePlayers(l.world, frame)
	UpdatePlatforms(l.world, frame)
	UpdateBelowMap(l.world)
	UpdateCamera(l.world)
	UpdateHUD(l.world, frame)
}
