package systems

import (
	"time"

	"github.com/yohamta/donburi"
)

// Tick runs one simulation frame after input has been written: pause and
// reload first, then the gameplay systems unless paused.
func Tick(w donburi.World, dt time.Duration) {
	UpdatePause(w)
	UpdateReload(w)
	if IsPaused(w) {
		return
	}
	UpdatePlayers(w, dt)
	UpdatePlatforms(w, dt)
	UpdateBelowMap(w)
	UpdateCamera(w)
	UpdateHUD(w, dt)
}
