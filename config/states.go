package config

// StateID is the player's presentation state, derived each frame from its
// physics flags. Each "Shoot" variant directly follows its base state.
type StateID int

const (
	Stand StateID = iota
	StandShoot
	Run
	RunShoot
	Jump
	JumpShoot
	WallSlideL
	WallSlideR
	WallSlideShoot
	Climb
	ClimbShoot
	Climbing
	ClimbFinish
	Hit
	Death
)

var stateNames = map[StateID]string{
	Stand:          "stand",
	StandShoot:     "stand-shoot",
	Run:            "run",
	RunShoot:       "run-shoot",
	Jump:           "jump",
	JumpShoot:      "jump-shoot",
	WallSlideL:     "wallslide-left",
	WallSlideR:     "wallslide",
	WallSlideShoot: "wallslide-shoot",
	Climb:          "climb",
	ClimbShoot:     "climb-shoot",
	Climbing:       "climbing",
	ClimbFinish:    "climb-finish",
	Hit:            "hit",
	Death:          "death",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Shooting returns the shooting variant of s when shoot is set and s has one.
func (s StateID) Shooting(shoot bool) StateID {
	if !shoot {
		return s
	}
	switch s {
	case Stand, Run, Jump, WallSlideR, Climb:
		return s + 1
	}
	return s
}
