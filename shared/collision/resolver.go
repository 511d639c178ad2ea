// Package collision pushes bodies out of solid tiles and reports contact
// with moving platforms.
package collision

import (
	"image"

	"github.com/solarlune/resolv"

	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/platform"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

// Result describes the first contact found by a check. Dir is aabb.None
// when nothing was hit on the checked axis.
type Result struct {
	Dir      aabb.Direction
	Tile     *tilemap.Tile
	Platform *platform.Platform
}

func (r Result) Hit() bool {
	return r.Dir != aabb.None
}

// Resolver checks bodies against one map. Tile scans are limited to a
// window of grid cells that callers move along with the body.
type Resolver struct {
	m    *tilemap.Map
	scan image.Rectangle
}

// NewResolver starts with a window covering the whole map.
func NewResolver(m *tilemap.Map) *Resolver {
	return &Resolver{
		m:    m,
		scan: image.Rect(0, 0, m.Width, m.Height),
	}
}

func (r *Resolver) Map() *tilemap.Map { return r.m }

// ScanBounds is the current window in grid cells, Max exclusive.
func (r *Resolver) ScanBounds() image.Rectangle { return r.scan }

// UpdateScanBounds centres the window on center, reaching radius cells in
// every direction, clamped to the map.
func (r *Resolver) UpdateScanBounds(center image.Point, radius int) image.Rectangle {
	r.scan = image.Rect(
		gamemath.ClampInt(center.X-radius, 0, r.m.Width),
		gamemath.ClampInt(center.Y-radius, 0, r.m.Height),
		gamemath.ClampInt(center.X+radius+1, 0, r.m.Width),
		gamemath.ClampInt(center.Y+radius+1, 0, r.m.Height),
	)
	return r.scan
}

// CheckTiles finds the first solid tile in the window, row by row, that
// overlaps obj, then moves obj flush against it on axis.
func (r *Resolver) CheckTiles(obj *resolv.Object, axis aabb.Axis) Result {
	body := bodyRect(obj)
	tile, ok := r.firstTile(body)
	if !ok {
		return Result{}
	}

	dir := aabb.DetectAxis(body, tile.Bounds, axis)
	if dir != aabb.None {
		moveTo(obj, aabb.Resolve(body, tile.Bounds, dir))
	}
	return Result{Dir: dir, Tile: tile}
}

// CheckRect probes rect against the tiles in the window without moving
// anything.
func (r *Resolver) CheckRect(rect aabb.Rect, axis aabb.Axis) Result {
	tile, ok := r.firstTile(rect)
	if !ok {
		return Result{}
	}
	return Result{Dir: aabb.DetectAxis(rect, tile.Bounds, axis), Tile: tile}
}

// CheckPlatforms reports the first platform, in map order, that overlaps
// obj. obj is left where it is.
func (r *Resolver) CheckPlatforms(obj *resolv.Object, axis aabb.Axis) Result {
	body := bodyRect(obj)
	for _, p := range r.m.Platforms {
		bounds := p.Bounds()
		if !body.Intersects(bounds) {
			continue
		}
		return Result{Dir: aabb.DetectAxis(body, bounds, axis), Platform: p}
	}
	return Result{}
}

// DetectAndResolve checks obj against an arbitrary target and moves it flush
// on a hit.
func (r *Resolver) DetectAndResolve(obj *resolv.Object, target aabb.Rect, axis aabb.Axis) aabb.Direction {
	body := bodyRect(obj)
	dir := aabb.DetectAxis(body, target, axis)
	if dir != aabb.None {
		moveTo(obj, aabb.Resolve(body, target, dir))
	}
	return dir
}

func (r *Resolver) firstTile(body aabb.Rect) (*tilemap.Tile, bool) {
	for y := r.scan.Min.Y; y < r.scan.Max.Y; y++ {
		row := r.m.Tiles[y]
		for x := r.scan.Min.X; x < r.scan.Max.X; x++ {
			t := &row[x]
			if t.Collidable() && body.Intersects(t.Bounds) {
				return t, true
			}
		}
	}
	return nil, false
}

func bodyRect(obj *resolv.Object) aabb.Rect {
	return aabb.NewRect(obj.X, obj.Y, obj.W, obj.H)
}

func moveTo(obj *resolv.Object, r aabb.Rect) {
	obj.X = r.X
	obj.Y = r.Y
	obj.Update()
}
