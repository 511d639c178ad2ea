package platform

import "image"

// Facing is a set of directions a sensor looks in.
type Facing uint8

const (
	FacingNone  Facing = 0
	FacingLeft  Facing = 1 << 0
	FacingRight Facing = 1 << 1
	FacingUp    Facing = 1 << 2
	FacingDown  Facing = 1 << 3

	Radial = FacingLeft | FacingRight | FacingUp | FacingDown
)

// ParseFacing maps names like "left" or "radial" to flags.
func ParseFacing(names ...string) Facing {
	var f Facing
	for _, n := range names {
		switch n {
		case "left":
			f |= FacingLeft
		case "right":
			f |= FacingRight
		case "up":
			f |= FacingUp
		case "down":
			f |= FacingDown
		case "radial", "all":
			f |= Radial
		}
	}
	return f
}

// Sensor watches a box of tiles around an origin. Bias is the reach in tiles
// on each axis; each facing covers the half of the box on that side of the
// origin.
type Sensor struct {
	Origin image.Point
	Bias   image.Point
	Facing Facing
}

func NewSensor(origin, bias image.Point, facing Facing) Sensor {
	return Sensor{
		Origin: origin,
		Bias:   image.Pt(abs(bias.X), abs(bias.Y)),
		Facing: facing,
	}
}

// Detect reports whether the subject's tile coordinates are seen by any of
// the sensor's facings.
func (s Sensor) Detect(subject image.Point) bool {
	return (s.faces(FacingLeft) && s.detectedLeft(subject)) ||
		(s.faces(FacingRight) && s.detectedRight(subject)) ||
		(s.faces(FacingUp) && s.detectedUp(subject)) ||
		(s.faces(FacingDown) && s.detectedDown(subject))
}

func (s Sensor) faces(f Facing) bool {
	return s.Facing&f == f
}

func (s Sensor) min() image.Point { return s.Origin.Sub(s.Bias) }
func (s Sensor) max() image.Point { return s.Origin.Add(s.Bias) }

func (s Sensor) detectedDown(p image.Point) bool {
	return between(p.Y, s.Origin.Y, s.max().Y) && between(p.X, s.min().X, s.max().X)
}

func (s Sensor) detectedUp(p image.Point) bool {
	return between(p.Y, s.min().Y, s.Origin.Y) && between(p.X, s.min().X, s.max().X)
}

func (s Sensor) detectedRight(p image.Point) bool {
	return between(p.X, s.Origin.X, s.max().X) && between(p.Y, s.min().Y, s.max().Y)
}

func (s Sensor) detectedLeft(p image.Point) bool {
	return between(p.X, s.min().X, s.Origin.X) && between(p.Y, s.min().Y, s.max().Y)
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
