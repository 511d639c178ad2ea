package components

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/shared/platform"
)

type PlatformData struct {
	*platform.Platform
}

var Platform = donburi.NewComponentType[PlatformData]()
