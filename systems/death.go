package systems

import (
	"log"

	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/tags"
)

// UpdateBelowMap kills a player that has fallen out of the level and stops
// the camera from following it down.
func UpdateBelowMap(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	bottom := float64(components.Level.Get(levelEntry).Map.PixelHeight())

	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Object.Get(e).Y <= bottom {
			return
		}
		if components.Player.Get(e).Alive {
			KillPlayer(e)
		}
		LockCamera(w, components.LockBoth)
	})
}

// UpdateReload restarts the level when reload is pressed while the player
// is dead.
func UpdateReload(w donburi.World) {
	if !GetAction(GetOrCreateInput(w), cfg.ActionReload).JustPressed {
		return
	}
	e, ok := tags.Player.First(w)
	if !ok || components.Player.Get(e).Alive {
		return
	}
	RestartLevel(w)
}

// RestartLevel puts the player and platforms back where the level starts
// them.
func RestartLevel(w donburi.World) {
	log.Printf("restarting level")
	ResetPlatforms(w)
	tags.Player.Each(w, ResetPlayer)
	ResetCamera(w)
	ResetHUD(w)
}
