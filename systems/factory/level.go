package factory

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/archetypes"
	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

// CreateLevel spawns the level entity for m and one entity per platform.
func CreateLevel(w donburi.World, m *tilemap.Map, path string) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Map:  m,
		Path: path,
	})

	for _, p := range m.Platforms {
		CreatePlatform(w, m, p)
	}
	return level
}
