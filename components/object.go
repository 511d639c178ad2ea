package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/shared/aabb"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounding box.
func (o *ObjectData) Rect() aabb.Rect {
	return aabb.NewRect(o.X, o.Y, o.W, o.H)
}

// MoveTo places the object at x, y and refreshes its cells in the space.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
