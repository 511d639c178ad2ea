package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
)

func pressJump(in *components.InputData, held bool) {
	in.Previous[cfg.ActionJump] = held
	in.Current[cfg.ActionJump] = true
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	l := newTestLevel(t)
	player := components.Player.Get(l.player)

	// Holding jump from before landing does nothing.
	pressJump(l.input(), true)
	ApplyControl(l.world, frame)
	assert.False(t, player.Jumping)
	assert.Equal(t, l.m.Gravity, components.Physics.Get(l.player).SpeedY)

	pressJump(l.input(), false)
	ApplyControl(l.world, frame)
	assert.True(t, player.Jumping)

	pressJump(l.input(), true)
	ApplyControl(l.world, frame)
	assert.True(t, player.Jumping)
	assert.Equal(t, cfg.Player.JumpSpeed, components.Physics.Get(l.player).SpeedY)
}

func TestJumpExpires(t *testing.T) {
	l := newTestLevel(t)
	player := components.Player.Get(l.player)

	pressJump(l.input(), false)
	ApplyControl(l.world, frame)
	pressJump(l.input(), true)

	frames := 0
	for player.Jumping && frames < 100 {
		ApplyControl(l.world, frame)
		frames++
	}
	assert.False(t, player.Jumping)
	assert.InDelta(t, int(cfg.Player.JumpTime/frame), frames, 1)
}

func TestReleasingJumpCancelsIt(t *testing.T) {
	l := newTestLevel(t)
	player := components.Player.Get(l.player)

	pressJump(l.input(), false)
	ApplyControl(l.world, frame)
	assert.True(t, player.Jumping)

	in := l.input()
	in.Previous[cfg.ActionJump] = true
	in.Current[cfg.ActionJump] = false
	ApplyControl(l.world, frame)
	assert.False(t, player.Jumping)
	assert.Equal(t, l.m.Gravity, components.Physics.Get(l.player).SpeedY)
}

func TestWallJumpPushesAwayFromWall(t *testing.T) {
	l := newTestLevel(t)
	player := components.Player.Get(l.player)
	player.OnFloor = false
	player.Sliding = true
	player.SlideState = cfg.WallSlideL

	pressJump(l.input(), false)
	ApplyControl(l.world, frame)
	assert.True(t, player.WallJumping)
	assert.False(t, player.Sliding)
	assert.Equal(t, cfg.WallSlideL, components.Control.Get(l.player).SlideStart)

	pressJump(l.input(), true)
	ApplyControl(l.world, frame)
	physics := components.Physics.Get(l.player)
	assert.Equal(t, cfg.Player.Speed, physics.SpeedX)
	assert.Equal(t, cfg.Player.JumpSpeed, physics.SpeedY)
}

func TestShieldExpires(t *testing.T) {
	l := newTestLevel(t)
	player := components.Player.Get(l.player)
	AdjustHealth(l.player, -50)

	ApplyControl(l.world, frame)
	assert.Equal(t, -cfg.Player.KnockbackSpeed, components.Physics.Get(l.player).SpeedX)

	frames := 1
	for player.GotHit && frames < 200 {
		ApplyControl(l.world, frame)
		frames++
	}
	assert.False(t, player.GotHit)
	assert.InDelta(t, int(cfg.Player.ShieldTime/frame), frames, 1)

	assert.True(t, AdjustHealth(l.player, -50))
	assert.Equal(t, 200, components.Health.Get(l.player).Current)
}

func TestSlideCoefficients(t *testing.T) {
	l := newTestLevel(t)
	player := components.Player.Get(l.player)
	player.OnFloor = false
	player.Sliding = true

	ApplyControl(l.world, frame)
	assert.InDelta(t, l.m.Gravity*cfg.Player.SlideDownCoeff, components.Physics.Get(l.player).SpeedY, 1e-9)
}

func TestStickDirections(t *testing.T) {
	l := newTestLevel(t)
	player := components.Player.Get(l.player)
	in := l.input()

	in.AxisX, in.AxisY = -0.9, 0.9
	ApplyControl(l.world, frame)
	assert.Equal(t, components.HeadingLeft, player.XDirection)
	assert.Equal(t, components.HeadingUp, player.YDirection)
	assert.True(t, player.FacingLeft)

	in.AxisX, in.AxisY = 0.5, -0.5
	ApplyControl(l.world, frame)
	assert.Equal(t, components.HeadingNone, player.XDirection)
	assert.Equal(t, components.HeadingNone, player.YDirection)
	assert.True(t, player.FacingLeft)
	assert.Equal(t, 0.0, components.Physics.Get(l.player).SpeedX)
}
