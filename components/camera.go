package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

// CameraLock freezes the camera on one or both axes.
type CameraLock int

const (
	LockNone CameraLock = iota
	LockHorizontal
	LockVertical
	LockBoth
)

// CameraData is the centre of the view in world pixels. MinX/MaxX and
// MinY/MaxY bound the visible area.
type CameraData struct {
	Position math.Vec2
	Lock     CameraLock

	MinX, MaxX float64
	MinY, MaxY float64

	// Holds are tile columns still waiting to pin the left edge.
	Holds []int
}

var Camera = donburi.NewComponentType[CameraData]()

// Frame fits the camera limits to m and restores its holds.
func (c *CameraData) Frame(m *tilemap.Map) {
	c.Lock = LockNone
	c.MinX, c.MaxX = 0, float64(m.PixelWidth())
	c.MinY, c.MaxY = 0, float64(m.PixelHeight())
	c.Holds = append([]int(nil), m.CameraHolds...)
}
