package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/eman41/red-headband-prototype/config"
)

// ControlData holds the timers that shape jumps and the post-hit shield.
type ControlData struct {
	JumpTimer     Timer
	WallJumpTimer Timer
	ShieldTimer   Timer
	// SlideStart is the wall side the current wall jump started from.
	SlideStart cfg.StateID
}

func NewControlData() ControlData {
	return ControlData{
		JumpTimer:     NewTimer(cfg.Player.JumpTime),
		WallJumpTimer: NewTimer(cfg.Player.WallJumpTime),
		ShieldTimer:   NewTimer(cfg.Player.ShieldTime),
	}
}

var Control = donburi.NewComponentType[ControlData]()
