package systems

import (
	"log"
	"time"

	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
)

// UpdatePlayers runs one frame of the player pipeline: control, physics,
// then presentation state.
func UpdatePlayers(w donburi.World, dt time.Duration) {
	ApplyControl(w, dt)
	UpdatePlayerPhysics(w)
	UpdateStates(w)
}

// AdjustHealth changes a player's health by amount and reports whether the
// change was applied. Damage is ignored while the post-hit shield is up; a
// hit that leaves the player alive raises the shield.
func AdjustHealth(e *donburi.Entry, amount int) bool {
	player := components.Player.Get(e)
	health := components.Health.Get(e)

	if amount < 0 && player.GotHit {
		return false
	}

	health.Current = gamemath.ClampInt(health.Current+amount, 0, health.Max)
	switch {
	case health.Current == 0:
		markDead(player)
	case amount < 0:
		player.GotHit = true
		components.Control.Get(e).ShieldTimer.Reset()
	}
	return true
}

// KillPlayer drops health to zero regardless of the shield.
func KillPlayer(e *donburi.Entry) {
	components.Health.Get(e).Current = 0
	markDead(components.Player.Get(e))
}

func markDead(player *components.PlayerData) {
	if player.Alive {
		log.Printf("player died")
	}
	player.Alive = false
}

// ResetPlayer brings a player back to life at the level's start position.
func ResetPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	*player = components.PlayerData{
		Alive:   true,
		OnFloor: true,
	}

	health := components.Health.Get(e)
	health.Current = health.Max

	components.Control.SetValue(e, components.NewControlData())
	components.State.SetValue(e, components.StateData{})

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.ActiveLadder = aabb.Rect{}

	if physics.Resolver == nil {
		return
	}
	obj := components.Object.Get(e)
	start := physics.Resolver.Map().PlayerStart
	obj.MoveTo(start.X, start.Y)
	physics.Resolver.UpdateScanBounds(gamemath.CenterTile(obj.X, obj.Y, obj.W, obj.H), cfg.Physics.ScanRadius)
}
