package platform

import (
	"image"
	"time"

	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
)

// Lethal is the kill capability of a platform: a sensor that wakes it and
// the collision directions that kill on contact.
type Lethal struct {
	Sensor   Sensor
	KillMask aabb.Direction
}

// Kills reports whether contact from dir is fatal.
func (l *Lethal) Kills(dir aabb.Direction) bool {
	return l.KillMask.Has(dir)
}

// Platform is a moving box driven by a Controller. It sleeps until woken and
// never goes back to sleep.
type Platform struct {
	controller *Controller
	width      float64
	height     float64
	sleeping   bool
	lethal     *Lethal
}

func New(c *Controller, width, height float64) *Platform {
	return &Platform{
		controller: c,
		width:      width,
		height:     height,
		sleeping:   true,
	}
}

// NewLethal builds a platform that wakes when sensor sees its subject and
// kills on contact from any direction in killMask.
func NewLethal(c *Controller, width, height float64, sensor Sensor, killMask aabb.Direction) *Platform {
	p := New(c, width, height)
	p.lethal = &Lethal{Sensor: sensor, KillMask: killMask}
	return p
}

// Update advances the platform. subject is the tile the tracked player is on;
// only lethal platforms look at it.
func (p *Platform) Update(dt time.Duration, subject image.Point) {
	if p.sleeping && p.lethal != nil && p.lethal.Sensor.Detect(subject) {
		p.WakeUp()
	}
	if p.sleeping {
		return
	}
	p.controller.Update(dt)
}

func (p *Platform) WakeUp() {
	p.sleeping = false
}

func (p *Platform) Sleeping() bool {
	return p.sleeping
}

// Reset rewinds the controller. A woken platform stays awake.
func (p *Platform) Reset() {
	p.controller.Reset()
}

// AsLethal returns the kill capability, if the platform has one.
func (p *Platform) AsLethal() (*Lethal, bool) {
	return p.lethal, p.lethal != nil
}

func (p *Platform) Bounds() aabb.Rect {
	pos := p.controller.Position()
	return aabb.NewRect(pos.X, pos.Y, p.width, p.height)
}

func (p *Platform) Velocity() gamemath.Vec2 {
	return p.controller.Velocity()
}

func (p *Platform) Controller() *Controller {
	return p.controller
}
