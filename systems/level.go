package systems

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/shared/leveldata"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/systems/factory"
	"github.com/eman41/red-headband-prototype/tags"
)

// LoadLevel reads path from fsys and makes it the current level. The player
// and camera are created on the first load and carried over afterwards.
func LoadLevel(w donburi.World, fsys fs.FS, path string) error {
	lvl, err := leveldata.Load(fsys, path)
	if err != nil {
		return fmt.Errorf("load level %s: %w", path, err)
	}
	m, err := lvl.BuildMap()
	if err != nil {
		return fmt.Errorf("load level %s: %w", path, err)
	}

	SetLevel(w, m, path)
	log.Printf("loaded level %s (%dx%d tiles, %d platforms)", m.Name, m.Width, m.Height, len(m.Platforms))
	return nil
}

// SetLevel swaps in an already built map.
func SetLevel(w donburi.World, m *tilemap.Map, path string) {
	unloadLevel(w)
	factory.CreateLevel(w, m, path)

	if player, ok := tags.Player.First(w); ok {
		factory.BindPlayer(player, m)
	} else {
		factory.CreatePlayer(w, m)
	}
	if _, ok := components.Camera.First(w); !ok {
		factory.CreateCamera(w, m)
	}

	RestartLevel(w)
}

// CurrentMap returns the loaded map, if any.
func CurrentMap(w donburi.World) (*tilemap.Map, bool) {
	e, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(e).Map, true
}

func unloadLevel(w donburi.World) {
	var stale []donburi.Entity
	components.Level.Each(w, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	tags.Platform.Each(w, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		w.Remove(e)
	}
}
