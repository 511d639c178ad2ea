package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/eman41/red-headband-prototype/config"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	// StateTimer counts frames spent in CurrentState.
	StateTimer int
}

var State = donburi.NewComponentType[StateData]()
