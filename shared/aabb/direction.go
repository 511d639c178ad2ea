package aabb

import "strings"

// Axis selects which axis a collision is detected and resolved along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Direction is the side of the target a moving box hit. Values are bit flags
// so platforms can hold a mask of lethal directions.
type Direction uint8

const (
	None       Direction = 0
	FromLeft   Direction = 1 << 0
	FromRight  Direction = 1 << 1
	FromTop    Direction = 1 << 2
	FromBottom Direction = 1 << 3
)

var directionNames = []struct {
	d    Direction
	name string
}{
	{FromLeft, "left"},
	{FromRight, "right"},
	{FromTop, "top"},
	{FromBottom, "bottom"},
}

func (d Direction) String() string {
	if d == None {
		return "none"
	}
	var parts []string
	for _, n := range directionNames {
		if d&n.d != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether every bit of o is set in d. None is never contained.
func (d Direction) Has(o Direction) bool {
	return o != None && d&o == o
}

// ParseDirection turns a name such as "left" into its flag. Unknown names
// return None.
func ParseDirection(name string) Direction {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range directionNames {
		if n.name == name {
			return n.d
		}
	}
	return None
}

// ParseDirections combines a list of names into a mask.
func ParseDirections(names ...string) Direction {
	var d Direction
	for _, n := range names {
		d |= ParseDirection(n)
	}
	return d
}

// DetectAxis classifies the overlap of moving against target along one axis.
// FromLeft/FromTop are tested first and win when both sides qualify.
func DetectAxis(moving, target Rect, axis Axis) Direction {
	if axis == AxisX {
		switch {
		case moving.Right() >= target.Left() && moving.Left() <= target.Left():
			return FromLeft
		case moving.Left() <= target.Right() && moving.Right() >= target.Right():
			return FromRight
		}
		return None
	}

	switch {
	case moving.Bottom() >= target.Top() && moving.Top() <= target.Top():
		return FromTop
	case moving.Top() <= target.Bottom() && moving.Bottom() >= target.Bottom():
		return FromBottom
	}
	return None
}

// Resolve moves moving so the edges named by dir are flush with target.
// The edge is assigned rather than offset, leaving zero overlap.
func Resolve(moving, target Rect, dir Direction) Rect {
	switch dir {
	case FromTop:
		moving.Y = target.Top() - moving.H
	case FromBottom:
		moving.Y = target.Bottom()
	case FromLeft:
		moving.X = target.Left() - moving.W
	case FromRight:
		moving.X = target.Right()
	}
	return moving
}
