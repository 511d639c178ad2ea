package tilemap

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/platform"
)

const (
	TagSolid    = "solid"
	TagLadder   = "ladder"
	TagDeadzone = "deadzone"

	DefaultGravity = 8.0
)

var ErrOutOfBounds = errors.New("tile out of bounds")

type Map struct {
	Name   string
	Tiles  [][]Tile
	Width  int
	Height int

	Ladders     []aabb.Rect
	KillRects   []aabb.Rect
	Platforms   []*platform.Platform
	Gravity     float64
	PlayerStart gamemath.Vec2
	Background  color.RGBA
	CameraHolds []int

	// Space holds solid, ladder and deadzone geometry.
	Space *resolv.Space
}

// Build lays the placements onto an empty width x height grid and derives
// ladders, kill zones and the player start from them.
func Build(name string, width, height int, placements []Placement) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("build map %s: invalid size %dx%d", name, width, height)
	}

	m := &Map{
		Name:       name,
		Width:      width,
		Height:     height,
		Gravity:    DefaultGravity,
		Background: color.RGBA{A: 0xff},
		Tiles:      make([][]Tile, height),
	}
	for y := range m.Tiles {
		m.Tiles[y] = make([]Tile, width)
		for x := range m.Tiles[y] {
			m.Tiles[y][x] = newTile(x, y, TypeEmpty)
		}
	}

	for _, p := range placements {
		if !m.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("build map %s: (%d,%d): %w", name, p.X, p.Y, ErrOutOfBounds)
		}
		t := newTile(p.X, p.Y, p.Type)
		t.Rotation = p.Rotation
		t.Sprite = p.Sprite
		m.Tiles[p.Y][p.X] = t
	}

	var ladderTiles []Tile
	for y := range m.Tiles {
		for _, t := range m.Tiles[y] {
			switch t.Type {
			case TypeLadder:
				ladderTiles = append(ladderTiles, t)
			case TypeSpikes:
				m.KillRects = append(m.KillRects, t.Bounds)
			case TypePlayer:
				m.PlayerStart = gamemath.Vec2{X: t.Bounds.X, Y: t.Bounds.Y}
			}
		}
	}

	m.Ladders = AssembleLadders(ladderTiles)
	m.buildSpace()
	return m, nil
}

// AssembleLadders merges ladder tiles stacked in consecutive rows of the
// same column into single spans.
func AssembleLadders(tiles []Tile) []aabb.Rect {
	sorted := append([]Tile(nil), tiles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Coords.X != sorted[j].Coords.X {
			return sorted[i].Coords.X < sorted[j].Coords.X
		}
		return sorted[i].Coords.Y < sorted[j].Coords.Y
	})

	var spans []aabb.Rect
	for i := 0; i < len(sorted); {
		root := sorted[i]
		span := root.Bounds
		last := root.Coords.Y
		i++
		for i < len(sorted) && sorted[i].Coords.X == root.Coords.X && sorted[i].Coords.Y == last+1 {
			span.H += TileSize
			last++
			i++
		}
		spans = append(spans, span)
	}
	return spans
}

func (m *Map) buildSpace() {
	m.Space = resolv.NewSpace(m.PixelWidth(), m.PixelHeight(), TileSize, TileSize)
	for y := range m.Tiles {
		for _, t := range m.Tiles[y] {
			if t.Collidable() {
				m.Space.Add(newStatic(t.Bounds, TagSolid))
			}
		}
	}
	for _, r := range m.Ladders {
		m.Space.Add(newStatic(r, TagLadder))
	}
	for _, r := range m.KillRects {
		m.Space.Add(newStatic(r, TagDeadzone))
	}
}

func newStatic(r aabb.Rect, tag string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// At returns the tile at grid coordinates x, y.
func (m *Map) At(x, y int) (Tile, error) {
	if !m.InBounds(x, y) {
		return Tile{}, fmt.Errorf("tile (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return m.Tiles[y][x], nil
}

func (m *Map) PixelWidth() int  { return m.Width * TileSize }
func (m *Map) PixelHeight() int { return m.Height * TileSize }

// AddPlatform appends p to the platform list. Platforms are scanned in the
// order they were added.
func (m *Map) AddPlatform(p *platform.Platform) {
	m.Platforms = append(m.Platforms, p)
}

// ResetPlatforms rewinds every platform controller.
func (m *Map) ResetPlatforms() {
	for _, p := range m.Platforms {
		p.Reset()
	}
}

// LadderCollision returns the first ladder span the body overlaps.
func (m *Map) LadderCollision(body aabb.Rect) (aabb.Rect, bool) {
	for _, l := range m.Ladders {
		if body.Intersects(l) {
			return l, true
		}
	}
	return aabb.Rect{}, false
}

// AboveLadder reports whether body starts above the ladder's top and sits
// horizontally inside it.
func AboveLadder(body, ladder aabb.Rect) bool {
	return body.Top() < ladder.Top() && body.InsideX(ladder)
}

// KillCollision reports whether obj overlaps a deadzone. obj must have been
// added to the map's Space.
func (m *Map) KillCollision(obj *resolv.Object) bool {
	check := obj.Check(0, 0, TagDeadzone)
	if check == nil {
		return false
	}
	body := aabb.NewRect(obj.X, obj.Y, obj.W, obj.H)
	for _, o := range check.Objects {
		if body.Intersects(aabb.NewRect(o.X, o.Y, o.W, o.H)) {
			return true
		}
	}
	return false
}
