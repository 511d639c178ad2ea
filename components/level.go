package components

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

type LevelData struct {
	Map *tilemap.Map
	// Path is the level file inside Source, used to reload it.
	Path string
}

var Level = donburi.NewComponentType[LevelData]()
