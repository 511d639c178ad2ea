package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/archetypes"
	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/shared/collision"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/tags"
)

// CreatePlayer spawns the player at m's start position.
func CreatePlayer(w donburi.World, m *tilemap.Map) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	start := m.PlayerStart
	obj := resolv.NewObject(start.X, start.Y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Alive:   true,
		OnFloor: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.Control.SetValue(player, components.NewControlData())
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Stand,
		PreviousState: cfg.Stand,
	})

	BindPlayer(player, m)
	return player
}

// BindPlayer moves the player's body into m's space and points its
// resolver at m.
func BindPlayer(player *donburi.Entry, m *tilemap.Map) {
	obj := components.Object.Get(player).Object
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	m.Space.Add(obj)

	physics := components.Physics.Get(player)
	physics.Resolver = collision.NewResolver(m)
}
