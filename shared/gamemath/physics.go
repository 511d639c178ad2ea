package gamemath

import (
	"image"
	"math"
)

// TileSize is the edge length of a level tile in pixels.
const TileSize = 32

// RoundStep rounds a per-frame movement step to a whole pixel, ties to even.
func RoundStep(v float64) float64 {
	return math.RoundToEven(v)
}

// TileToPixel converts tile coordinates to the pixel position of the tile's
// top-left corner.
func TileToPixel(tile Vec2) Vec2 {
	return tile.Scale(TileSize)
}

// PixelToTile returns the tile that contains the pixel point (x, y).
func PixelToTile(x, y float64) image.Point {
	return image.Pt(int(math.Floor(x/TileSize)), int(math.Floor(y/TileSize)))
}

// CenterTile returns the tile under the center of the box (x, y, w, h).
func CenterTile(x, y, w, h float64) image.Point {
	return PixelToTile(x+w/2, y+h/2)
}

// ApplySlide scales a vertical speed while wall sliding: falls use downCoeff,
// rises use upCoeff.
func ApplySlide(speedY, upCoeff, downCoeff float64) float64 {
	if speedY > 0 {
		return speedY * downCoeff
	}
	return speedY * upCoeff
}

// Lerp moves from a toward b by factor t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
