package systems

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/shared/platform"
	"github.com/eman41/red-headband-prototype/tags"
)

const roomCSV = `Room,256,128,0,0;0;0
0,3,Tile,0,
1,3,Tile,0,
2,3,Tile,0,
3,3,Tile,0,
1,2,Player,0,
`

func TestLoadLevelSpawnsWorld(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/room.csv":  {Data: []byte(roomCSV)},
		"levels/room.yaml": {Data: []byte("cameraHolds: [2]\nplatforms:\n  - start: [4, 1]\n    stop: [6, 1]\n    speed: 2\n    hold: 1s\n")},
	}
	w := donburi.NewWorld()
	require.NoError(t, LoadLevel(w, fsys, "levels/room.csv"))

	m, ok := CurrentMap(w)
	require.True(t, ok)
	assert.Equal(t, "Room", m.Name)
	assert.Equal(t, 1, count(w, tags.Platform))

	player, ok := tags.Player.First(w)
	require.True(t, ok)
	assert.Equal(t, 32.0, components.Object.Get(player).X)
	assert.Equal(t, 64.0, components.Object.Get(player).Y)

	camEntry, ok := components.Camera.First(w)
	require.True(t, ok)
	assert.Equal(t, []int{2}, components.Camera.Get(camEntry).Holds)

	// Loading again swaps the level but keeps the player.
	require.NoError(t, LoadLevel(w, fsys, "levels/room.csv"))
	assert.Equal(t, 1, count(w, tags.Player))
	assert.Equal(t, 1, count(w, components.Level))
	assert.Equal(t, 1, count(w, tags.Platform))

	again, _ := tags.Player.First(w)
	assert.Equal(t, player.Entity(), again.Entity())
	m2, _ := CurrentMap(w)
	assert.Same(t, m2, components.Physics.Get(again).Resolver.Map())
}

type eacher interface {
	Each(donburi.World, func(*donburi.Entry))
}

func count(w donburi.World, c eacher) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestLoadLevelErrors(t *testing.T) {
	w := donburi.NewWorld()
	err := LoadLevel(w, fstest.MapFS{}, "levels/missing.csv")
	assert.Error(t, err)
	_, ok := CurrentMap(w)
	assert.False(t, ok)
}

func TestPlatformsMoveTheirBodies(t *testing.T) {
	l := newTestLevel(t)
	l.ride.WakeUp()

	UpdatePlatforms(l.world, frame)

	var found bool
	tags.Platform.Each(l.world, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		if p.Platform != l.ride {
			return
		}
		found = true
		assert.Equal(t, p.Bounds().X, components.Object.Get(e).X)
		assert.Equal(t, 354.0, components.Object.Get(e).X)
	})
	assert.True(t, found)
	assert.True(t, l.crusher.Sleeping())
}

func TestSensorWakesCrusher(t *testing.T) {
	l := newTestLevel(t)
	l.place(9*32, 4*32)

	UpdatePlatforms(l.world, frame)
	assert.False(t, l.crusher.Sleeping())
	assert.Equal(t, platform.Moving, l.crusher.Controller().State())
}

func TestReloadWhileDead(t *testing.T) {
	l := newTestLevel(t)
	l.ride.WakeUp()
	for i := 0; i < 10; i++ {
		UpdatePlatforms(l.world, frame)
	}
	l.place(300, 40)
	KillPlayer(l.player)

	in := l.input()
	in.Current[cfg.ActionReload] = true
	UpdateReload(l.world)

	assert.True(t, components.Player.Get(l.player).Alive)
	assert.Equal(t, l.m.PlayerStart.X, components.Object.Get(l.player).X)
	assert.Equal(t, l.ride.Controller().Start(), l.ride.Controller().Position())
}

func TestReloadIgnoredWhileAlive(t *testing.T) {
	l := newTestLevel(t)
	l.place(300, 40)

	l.input().Current[cfg.ActionReload] = true
	UpdateReload(l.world)

	assert.Equal(t, 300.0, components.Object.Get(l.player).X)
}

func TestPauseToggles(t *testing.T) {
	w := donburi.NewWorld()
	in := GetOrCreateInput(w)
	assert.False(t, IsPaused(w))

	in.Current[cfg.ActionPause] = true
	UpdatePause(w)
	assert.True(t, IsPaused(w))

	// Held, not pressed again.
	in.Previous[cfg.ActionPause] = true
	UpdatePause(w)
	assert.True(t, IsPaused(w))

	in.Previous[cfg.ActionPause] = false
	UpdatePause(w)
	assert.False(t, IsPaused(w))
}

func TestHealthBarDrains(t *testing.T) {
	l := newTestLevel(t)
	bar := GetOrCreateHealthBar(l.world)
	assert.Equal(t, 300.0, bar.Shown)

	AdjustHealth(l.player, -100)
	UpdateHUD(l.world, frame)
	assert.Less(t, bar.Shown, 300.0)
	assert.Greater(t, bar.Shown, 200.0)

	for i := 0; i < 60; i++ {
		UpdateHUD(l.world, frame)
	}
	assert.Equal(t, 200.0, bar.Shown)
	assert.Nil(t, bar.Tween)

	KillPlayer(l.player)
	for i := 0; i < 60; i++ {
		UpdateHUD(l.world, frame)
	}
	assert.Equal(t, 0.0, bar.Shown)
}

func TestHealthBarColor(t *testing.T) {
	assert.Equal(t, cfg.White, HealthBarColor(300, 300))
	c := HealthBarColor(150, 300)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(127), c.G)
	assert.Equal(t, uint8(0), HealthBarColor(0, 300).B)
}

func TestTickSkipsGameplayWhilePaused(t *testing.T) {
	l := newTestLevel(t)
	l.place(40, 40)
	in := l.input()

	in.Current[cfg.ActionPause] = true
	Tick(l.world, frame)
	require.True(t, IsPaused(l.world))
	y := components.Object.Get(l.player).Y

	in.Previous = in.Current
	for i := 0; i < 10; i++ {
		Tick(l.world, frame)
	}
	assert.Equal(t, y, components.Object.Get(l.player).Y)

	in.Previous[cfg.ActionPause] = false
	Tick(l.world, frame)
	assert.False(t, IsPaused(l.world))
	assert.Greater(t, components.Object.Get(l.player).Y, y)
}
