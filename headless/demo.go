package headless

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/tags"
)

// DemoInput runs the player back and forth between two x positions.
type DemoInput struct {
	Left, Right float64
	movingLeft  bool
}

func NewDemoInput() *DemoInput {
	return &DemoInput{Left: 100, Right: 500}
}

func (d *DemoInput) Write(w donburi.World, in *components.InputData) {
	e, ok := tags.Player.First(w)
	if !ok {
		return
	}
	x := components.Object.Get(e).X
	if x >= d.Right {
		d.movingLeft = true
	} else if x <= d.Left {
		d.movingLeft = false
	}

	in.LastInputMethod = components.InputScripted
	if d.movingLeft {
		in.AxisX = -1
	} else {
		in.AxisX = 1
	}
}
