package systems

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
)

// UpdateStates picks each player's presentation state from its flags after
// physics has run.
func UpdateStates(w donburi.World) {
	components.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		state := components.State.Get(e)

		next := playerState(player, physics, obj)
		state.PreviousState = state.CurrentState
		if next == state.CurrentState {
			state.StateTimer++
			return
		}
		state.CurrentState = next
		state.StateTimer = 0
	})
}

func playerState(player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) cfg.StateID {
	shoot := player.Shooting
	switch {
	case !player.Alive:
		return cfg.Death
	case player.GotHit:
		return cfg.Hit
	case player.OnLadder:
		_, centerY := obj.Rect().Center()
		if centerY < physics.ActiveLadder.Top() {
			return cfg.ClimbFinish
		}
		if physics.SpeedX != 0 || physics.SpeedY != 0 {
			return cfg.Climbing
		}
		return cfg.Climb.Shooting(shoot)
	case player.OnFloor || player.OnPlatform:
		if player.XDirection != components.HeadingNone {
			return cfg.Run.Shooting(shoot)
		}
		return cfg.Stand.Shooting(shoot)
	case player.Sliding:
		return player.SlideState.Shooting(shoot)
	}
	return cfg.Jump.Shooting(shoot)
}
