package archetypes

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.Control,
		components.State,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	HUD = newArchetype(
		components.HealthBar,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
