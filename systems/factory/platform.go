package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/archetypes"
	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/shared/platform"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/tags"
)

// CreatePlatform wraps p in an entity whose body follows it around m's space.
// p must already be in m's platform list.
func CreatePlatform(w donburi.World, m *tilemap.Map, p *platform.Platform) *donburi.Entry {
	var e *donburi.Entry
	if _, lethal := p.AsLethal(); lethal {
		e = archetypes.Platform.Spawn(w, tags.Lethal)
	} else {
		e = archetypes.Platform.Spawn(w)
	}

	b := p.Bounds()
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = e
	m.Space.Add(obj)

	components.Platform.SetValue(e, components.PlatformData{Platform: p})
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return e
}
