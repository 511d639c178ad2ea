package leveldata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

const (
	headerFields = 5
	tileFields   = 5
)

// ParseCSV reads the comma separated level format. The first record is
// "name,widthPx,heightPx,unused,r;g;b"; every following record places a
// tile as "x,y,type,rotationDeg,spriteName".
func ParseCSV(name string, r io.Reader) (*Level, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: missing header", name)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	level, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("parse %s line 1: %w", name, err)
	}
	if level.Name == "" {
		level.Name = name
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		p, err := parseTile(record)
		if err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", name, line, err)
		}
		if p.X < 0 || p.Y < 0 || p.X >= level.Width || p.Y >= level.Height {
			return nil, fmt.Errorf("parse %s line %d: (%d,%d): %w", name, line, p.X, p.Y, tilemap.ErrOutOfBounds)
		}
		level.Tiles = append(level.Tiles, p)
	}

	return level, nil
}

func parseHeader(fields []string) (*Level, error) {
	if len(fields) < headerFields {
		return nil, fmt.Errorf("header has %d fields, want %d", len(fields), headerFields)
	}
	width, err := atoi("width", fields[1])
	if err != nil {
		return nil, err
	}
	height, err := atoi("height", fields[2])
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(fields[4])
	if err != nil {
		return nil, err
	}

	return &Level{
		Name:       strings.TrimSpace(fields[0]),
		Width:      width / gamemath.TileSize,
		Height:     height / gamemath.TileSize,
		Background: bg,
	}, nil
}

func parseTile(fields []string) (tilemap.Placement, error) {
	if len(fields) < tileFields {
		return tilemap.Placement{}, fmt.Errorf("tile has %d fields, want %d", len(fields), tileFields)
	}
	x, err := atoi("x", fields[0])
	if err != nil {
		return tilemap.Placement{}, err
	}
	y, err := atoi("y", fields[1])
	if err != nil {
		return tilemap.Placement{}, err
	}
	rot, err := atoi("rotation", fields[3])
	if err != nil {
		return tilemap.Placement{}, err
	}

	return tilemap.Placement{
		X:        x,
		Y:        y,
		Type:     tilemap.ParseTileType(fields[2]),
		Rotation: rot,
		Sprite:   strings.TrimSpace(fields[4]),
	}, nil
}

// ParseColor reads an "r;g;b" triple.
func ParseColor(s string) (color.RGBA, error) {
	parts := strings.Split(strings.TrimSpace(s), ";")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("colour %q: want r;g;b", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}

func atoi(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}
