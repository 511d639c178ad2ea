package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"time"

	"github.com/lafriks/go-tiled"

	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

const (
	tmxTileLayer        = "tiles"
	tmxPlatformGroup    = "Platforms"
	tmxPlayerStartGroup = "PlayerStart"
)

// LoadTMX parses a Tiled map. Tile types come from the tileset tile
// property "type"; platforms and the player start come from object groups.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != tilemap.TileSize || levelMap.TileHeight != tilemap.TileSize {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d, want %d", tmxPath,
			levelMap.TileWidth, levelMap.TileHeight, tilemap.TileSize)
	}

	level := &Level{
		Name:       stem(tmxPath),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		Background: color.RGBA{A: 0xff},
	}
	if props := levelMap.Properties; props != nil {
		if bg := props.GetString("background"); bg != "" {
			if level.Background, err = ParseColor(bg); err != nil {
				return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
			}
		}
		level.Script.Gravity = props.GetFloat("gravity")
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tmxTileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				p := tilemap.Placement{X: x, Y: y, Type: tilemap.TypeTile}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if name := tilesetTile.Properties.GetString("type"); name != "" {
						p.Type = tilemap.ParseTileType(name)
					}
					p.Sprite = tilesetTile.Properties.GetString("sprite")
				}
				p.Rotation = tmxRotation(tile)
				level.Tiles = append(level.Tiles, p)
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case tmxPlayerStartGroup:
			for _, o := range og.Objects {
				level.Tiles = append(level.Tiles, tilemap.Placement{
					X:    int(o.X) / tilemap.TileSize,
					Y:    int(o.Y) / tilemap.TileSize,
					Type: tilemap.TypePlayer,
				})
			}
		case tmxPlatformGroup:
			for _, o := range og.Objects {
				level.Script.Platforms = append(level.Script.Platforms, tmxPlatform(o))
			}
		}
	}

	return level, nil
}

func tmxPlatform(o *tiled.Object) PlatformSpec {
	spec := PlatformSpec{
		Start:   [2]float64{o.X / tilemap.TileSize, o.Y / tilemap.TileSize},
		Stop:    [2]float64{o.Properties.GetFloat("stopX"), o.Properties.GetFloat("stopY")},
		Speed:   o.Properties.GetFloat("speed"),
		Hold:    time.Duration(o.Properties.GetFloat("hold") * float64(time.Second)),
		OneTime: o.Properties.GetBool("oneTime"),
		Width:   o.Width,
		Height:  o.Height,
	}
	if kill := splitList(o.Properties.GetString("kill")); len(kill) > 0 {
		spec.Lethal = &LethalSpec{
			Sensor: [2]int{o.Properties.GetInt("sensorX"), o.Properties.GetInt("sensorY")},
			Bias:   [2]int{o.Properties.GetInt("biasX"), o.Properties.GetInt("biasY")},
			Facing: splitList(o.Properties.GetString("facing")),
			Kill:   kill,
		}
	}
	return spec
}

func tmxRotation(t *tiled.LayerTile) int {
	switch {
	case t.DiagonalFlip && t.HorizontalFlip:
		return 90
	case t.HorizontalFlip && t.VerticalFlip:
		return 180
	case t.DiagonalFlip && t.VerticalFlip:
		return 270
	}
	return 0
}
