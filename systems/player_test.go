package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eman41/red-headband-prototype/components"
)

func TestAdjustHealthShield(t *testing.T) {
	l := newTestLevel(t)
	health := components.Health.Get(l.player)
	player := components.Player.Get(l.player)
	assert.Equal(t, 300, health.Current)

	assert.True(t, AdjustHealth(l.player, -50))
	assert.Equal(t, 250, health.Current)
	assert.True(t, player.GotHit)

	// Shielded.
	assert.False(t, AdjustHealth(l.player, -50))
	assert.Equal(t, 250, health.Current)

	assert.True(t, AdjustHealth(l.player, 1000))
	assert.Equal(t, 300, health.Current)
	assert.True(t, player.Alive)
}

func TestAdjustHealthToZeroKills(t *testing.T) {
	l := newTestLevel(t)

	assert.True(t, AdjustHealth(l.player, -300))
	assert.Equal(t, 0, components.Health.Get(l.player).Current)
	assert.False(t, components.Player.Get(l.player).Alive)
}

func TestKillPlayerIgnoresShield(t *testing.T) {
	l := newTestLevel(t)
	AdjustHealth(l.player, -10)
	assert.True(t, components.Player.Get(l.player).GotHit)

	KillPlayer(l.player)
	assert.Equal(t, 0, components.Health.Get(l.player).Current)
	assert.False(t, components.Player.Get(l.player).Alive)
}

func TestResetPlayer(t *testing.T) {
	l := newTestLevel(t)
	b := l.place(300, 40)
	b.player.Jumping = true
	b.physics.SpeedX = 3
	KillPlayer(l.player)

	ResetPlayer(l.player)

	assert.True(t, b.player.Alive)
	assert.True(t, b.player.OnFloor)
	assert.False(t, b.player.Jumping)
	assert.Equal(t, 300, components.Health.Get(l.player).Current)
	assert.Equal(t, 0.0, b.physics.SpeedX)
	assert.Equal(t, l.m.PlayerStart.X, b.obj.X)
	assert.Equal(t, l.m.PlayerStart.Y, b.obj.Y)
}
