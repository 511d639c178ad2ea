package gamemath

import "math"

// PointBetween reports whether pos lies inside the closed box spanned by p1
// and p2. Each axis is tested independently, so the endpoints themselves are
// inside.
func PointBetween(p1, p2, pos Vec2) bool {
	xMin, xMax := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
	yMin, yMax := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)

	return pos.X >= xMin && pos.X <= xMax &&
		pos.Y >= yMin && pos.Y <= yMax
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
