package factory

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/archetypes"
	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

func CreateCamera(w donburi.World, m *tilemap.Map) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	data := components.CameraData{}
	data.Frame(m)
	components.Camera.SetValue(camera, data)
	return camera
}
