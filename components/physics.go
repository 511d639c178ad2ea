package components

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/collision"
)

type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	Resolver *collision.Resolver

	// ActiveLadder is the last ladder the body touched.
	ActiveLadder aabb.Rect
}

var Physics = donburi.NewComponentType[PhysicsData]()
