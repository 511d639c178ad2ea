package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/eman41/red-headband-prototype/config"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputScripted
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the left stick. AxisY is positive when pushed up. Digital
// directions are folded into the axes by whoever writes the input.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	AxisX           float64
	AxisY           float64
	LastInputMethod InputMethod
}

// Advance moves the current frame into Previous and clears Current.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.AxisX, in.AxisY = 0, 0
}

var Input = donburi.NewComponentType[InputData]()
