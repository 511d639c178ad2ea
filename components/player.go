package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/eman41/red-headband-prototype/config"
)

// Heading is the direction the player is steering in on one axis.
type Heading int

const (
	HeadingNone Heading = iota
	HeadingLeft
	HeadingRight
	HeadingUp
	HeadingDown
)

type PlayerData struct {
	Alive       bool
	FacingLeft  bool
	OnLadder    bool
	OnFloor     bool
	OnPlatform  bool
	Sliding     bool
	Jumping     bool
	WallJumping bool
	Shooting    bool
	GotHit      bool

	XDirection Heading
	YDirection Heading

	// SlideState is the wall last slid on, WallSlideL or WallSlideR.
	SlideState cfg.StateID
}

var Player = donburi.NewComponentType[PlayerData]()
