package systems

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/archetypes"
	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
)

// UpdatePause toggles pause on the pause action.
// This system should run AFTER input is polled but BEFORE other game systems.
func UpdatePause(w donburi.World) {
	pause := GetOrCreatePause(w)
	if GetAction(GetOrCreateInput(w), cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(w donburi.World) *components.PauseData {
	entry, ok := components.Pause.First(w)
	if !ok {
		entry = archetypes.Pause.Spawn(w)
	}
	return components.Pause.Get(entry)
}

// IsPaused reports whether gameplay systems should skip this frame.
func IsPaused(w donburi.World) bool {
	return GetOrCreatePause(w).IsPaused
}
