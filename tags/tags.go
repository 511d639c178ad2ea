package tags

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Lethal   = donburi.NewTag().SetName("Lethal")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = tilemap.TagSolid
	ResolvLadder   = tilemap.TagLadder
	ResolvDeadZone = tilemap.TagDeadzone
	ResolvPlayer   = "Player"
	ResolvPlatform = "platform"
)
