package systems

import (
	"math"
	"time"

	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

// ApplyControl turns the input singleton into player velocity and movement
// flags. It runs before player physics.
func ApplyControl(w donburi.World, dt time.Duration) {
	input := GetOrCreateInput(w)
	components.Player.Each(w, func(e *donburi.Entry) {
		applyControl(e, input, dt)
	})
}

func applyControl(e *donburi.Entry, input *components.InputData, dt time.Duration) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	control := components.Control.Get(e)

	gravity := tilemap.DefaultGravity
	if physics.Resolver != nil {
		gravity = physics.Resolver.Map().Gravity
	}

	player.Shooting = input.Current[cfg.ActionShoot]
	var vx, vy float64

	switch {
	case !player.Alive:
		resetJumping(player, control)
		vy = gravity

	case player.GotHit:
		// Knock back away from the way the player faces.
		vx = -cfg.Player.KnockbackSpeed
		if player.FacingLeft {
			vx = cfg.Player.KnockbackSpeed
		}
		vy = gravity
		resetJumping(player, control)
		player.GotHit = !control.ShieldTimer.AdvanceCyclic(dt)

	default:
		setDirection(player, input.AxisX, input.AxisY)
		if math.Abs(input.AxisX) > cfg.Player.StickThreshold {
			vx = cfg.Player.Speed * input.AxisX
		}
		if math.Abs(input.AxisY) > cfg.Player.StickThreshold {
			vy = -cfg.Player.Speed * input.AxisY
		}

		if player.WallJumping {
			vx, vy = pollWallJump(player, control, vx, dt)
		} else if player.Jumping {
			vy = cfg.Player.JumpSpeed
			player.Jumping = !control.JumpTimer.AdvanceCyclic(dt)
		}

		attemptJump(player, control, GetAction(input, cfg.ActionJump))

		if !player.Jumping && !player.OnLadder && !player.WallJumping {
			vy = gravity
		}
	}

	if player.Alive && !player.GotHit && player.Sliding {
		vy = gamemath.ApplySlide(vy, cfg.Player.SlideUpCoeff, cfg.Player.SlideDownCoeff)
	}

	physics.SpeedX = vx
	physics.SpeedY = vy
}

// pollWallJump pushes the player off the wall it jumped from for the first
// part of the wall jump.
func pollWallJump(player *components.PlayerData, control *components.ControlData, vx float64, dt time.Duration) (float64, float64) {
	if !control.WallJumpTimer.HasReached(cfg.Player.WallJumpPropel) {
		switch {
		case player.SlideState == control.SlideStart:
			vx = -cfg.Player.Speed
			if control.SlideStart == cfg.WallSlideL {
				vx = cfg.Player.Speed
			}
		case player.Sliding:
			vx = 0
		}
	}
	player.WallJumping = !control.WallJumpTimer.AdvanceCyclic(dt)
	return vx, cfg.Player.JumpSpeed
}

// attemptJump starts a jump on the frame jump is pressed. Holding the button
// keeps the current jump going; releasing it ends the jump.
func attemptJump(player *components.PlayerData, control *components.ControlData, jump components.ActionState) {
	if player.OnLadder || !jump.Pressed {
		resetJumping(player, control)
		return
	}
	if !jump.JustPressed {
		return
	}

	switch {
	case player.OnFloor || player.OnPlatform:
		player.Jumping = true
	case player.Sliding:
		player.Sliding = false
		player.WallJumping = true
		control.SlideStart = player.SlideState
	}
}

func resetJumping(player *components.PlayerData, control *components.ControlData) {
	player.Jumping = false
	player.WallJumping = false
	control.JumpTimer.Reset()
	control.WallJumpTimer.Reset()
}

func setDirection(player *components.PlayerData, axisX, axisY float64) {
	threshold := cfg.Player.StickThreshold
	switch {
	case axisX > threshold:
		player.XDirection = components.HeadingRight
		player.FacingLeft = false
	case axisX < -threshold:
		player.XDirection = components.HeadingLeft
		player.FacingLeft = true
	default:
		player.XDirection = components.HeadingNone
	}

	switch {
	case axisY > threshold:
		player.YDirection = components.HeadingUp
	case axisY < -threshold:
		player.YDirection = components.HeadingDown
	default:
		player.YDirection = components.HeadingNone
	}
}
