// Package tilemap holds the static level grid: tiles, ladder spans, kill
// zones and the resolv space built from them.
package tilemap

import (
	"image"
	"strings"

	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
)

const TileSize = gamemath.TileSize

type TileType int

const (
	TypeEmpty TileType = iota
	TypeTile
	TypePlayer
	TypeFlavor
	TypeLadder
	TypeBullet
	TypeSpikes
)

var typeNames = map[TileType]string{
	TypeEmpty:  "empty",
	TypeTile:   "tile",
	TypePlayer: "player",
	TypeFlavor: "flavor",
	TypeLadder: "ladder",
	TypeBullet: "bullet",
	TypeSpikes: "spikes",
}

func (t TileType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTileType maps a level-file type name to a TileType. Unknown names are
// empty.
func ParseTileType(name string) TileType {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t
		}
	}
	return TypeEmpty
}

type Tile struct {
	Coords   image.Point
	Bounds   aabb.Rect
	Type     TileType
	Rotation int
	Sprite   string
}

// Collidable reports whether bodies are pushed out of the tile.
func (t Tile) Collidable() bool {
	return t.Type == TypeTile
}

func newTile(x, y int, typ TileType) Tile {
	return Tile{
		Coords: image.Pt(x, y),
		Bounds: aabb.NewRect(float64(x*TileSize), float64(y*TileSize), TileSize, TileSize),
		Type:   typ,
	}
}

// Placement puts one tile on the grid.
type Placement struct {
	X, Y     int
	Type     TileType
	Rotation int
	Sprite   string
}
