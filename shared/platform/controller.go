// Package platform implements moving platforms: the endpoint state machine
// that drives them, the sleep gate that keeps them parked until triggered,
// and the optional lethal capability.
package platform

import (
	"time"

	"github.com/eman41/red-headband-prototype/shared/gamemath"
)

// State is the controller's position in its move/hold cycle.
type State int

const (
	Moving State = iota
	Held
	PermanentlyHeld
)

func (s State) String() string {
	switch s {
	case Moving:
		return "moving"
	case Held:
		return "held"
	case PermanentlyHeld:
		return "permanently-held"
	}
	return "unknown"
}

// Controller moves a platform back and forth between two endpoints, pausing
// at each end for the configured hold time. A one-shot controller stops for
// good the first time it settles on its stop endpoint.
type Controller struct {
	start, stop gamemath.Vec2
	speed       float64
	maxHold     time.Duration
	oneTime     bool

	state        State
	position     gamemath.Vec2
	velocity     gamemath.Vec2
	heldVelocity gamemath.Vec2
	holdElapsed  time.Duration
}

// NewController builds a controller from tile coordinates. Positions are kept
// in pixels.
func NewController(startTile, stopTile gamemath.Vec2, speed float64, hold time.Duration, oneTime bool) *Controller {
	c := &Controller{
		start:   gamemath.TileToPixel(startTile),
		stop:    gamemath.TileToPixel(stopTile),
		speed:   speed,
		maxHold: hold,
		oneTime: oneTime,
	}
	c.Reset()
	return c
}

// Reset puts the controller back at its start endpoint, moving toward stop.
func (c *Controller) Reset() {
	c.state = Moving
	c.position = c.start
	c.velocity = gamemath.Direction(c.start, c.stop, c.speed)
	c.heldVelocity = gamemath.Vec2{}
	c.holdElapsed = 0
}

// Update advances the controller by one frame of dt.
func (c *Controller) Update(dt time.Duration) {
	switch c.state {
	case Held:
		c.holdElapsed += dt
		if c.holdElapsed > c.maxHold {
			c.release()
		} else {
			c.clampToNearestEndpoint()
		}
	case Moving:
		if !gamemath.PointBetween(c.start, c.stop, c.position.Add(c.velocity)) {
			c.hold()
		}
	}

	c.updatePosition()
}

func (c *Controller) hold() {
	c.state = Held
	c.heldVelocity = c.velocity
	c.velocity = gamemath.Vec2{}
	c.holdElapsed = 0
}

func (c *Controller) release() {
	c.state = Moving
	c.velocity = c.heldVelocity.Neg()
	c.holdElapsed = 0
}

func (c *Controller) clampToNearestEndpoint() {
	c.velocity = gamemath.Vec2{}
	if gamemath.Distance(c.start, c.position) < gamemath.Distance(c.stop, c.position) {
		c.position = c.start
		return
	}

	c.position = c.stop
	if c.oneTime {
		c.state = PermanentlyHeld
	}
}

func (c *Controller) updatePosition() {
	if c.state == PermanentlyHeld {
		c.position = c.stop
		c.velocity = gamemath.Vec2{}
		return
	}
	c.position = c.position.Add(c.velocity)
}

func (c *Controller) Position() gamemath.Vec2 { return c.position }
func (c *Controller) Velocity() gamemath.Vec2 { return c.velocity }
func (c *Controller) State() State            { return c.state }
func (c *Controller) Start() gamemath.Vec2    { return c.start }
func (c *Controller) Stop() gamemath.Vec2     { return c.stop }
func (c *Controller) OneTime() bool           { return c.oneTime }
