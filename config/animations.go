package config

import "image/color"

// PlayerPalette is the fill colour for each player state. The player is
// drawn as a coloured box; the colour stands in for the sprite animation.
var PlayerPalette = map[StateID]color.RGBA{
	Stand:          {R: 200, G: 40, B: 40, A: 255},
	StandShoot:     {R: 230, G: 80, B: 60, A: 255},
	Run:            {R: 220, G: 60, B: 40, A: 255},
	RunShoot:       {R: 240, G: 100, B: 60, A: 255},
	Jump:           {R: 240, G: 120, B: 120, A: 255},
	JumpShoot:      {R: 250, G: 140, B: 120, A: 255},
	WallSlideL:     {R: 180, G: 60, B: 140, A: 255},
	WallSlideR:     {R: 180, G: 60, B: 140, A: 255},
	WallSlideShoot: {R: 200, G: 80, B: 160, A: 255},
	Climb:          {R: 160, G: 100, B: 40, A: 255},
	ClimbShoot:     {R: 180, G: 120, B: 60, A: 255},
	Climbing:       {R: 200, G: 140, B: 60, A: 255},
	ClimbFinish:    {R: 220, G: 170, B: 80, A: 255},
	Hit:            {R: 255, G: 255, B: 255, A: 255},
	Death:          {R: 60, G: 60, B: 60, A: 255},
}

// Tile and platform fills.
var (
	TileColor           = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	LadderColor         = color.RGBA{R: 150, G: 110, B: 50, A: 255}
	SpikeColor          = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	FlavorColor         = color.RGBA{R: 90, G: 120, B: 90, A: 255}
	PlatformColor       = color.RGBA{R: 90, G: 150, B: 200, A: 255}
	LethalPlatformColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)
