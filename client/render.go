package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/systems"
	"github.com/eman41/red-headband-prototype/tags"
)

// view maps world pixels onto the screen around the camera.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func newView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := cfg.Camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  zoom,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

// visible is the world area on screen.
func (v view) visible() aabb.Rect {
	w, h := v.halfW*2/v.zoom, v.halfH*2/v.zoom
	return aabb.NewRect(v.camX-w/2, v.camY-h/2, w, h)
}

func (v view) fill(screen *ebiten.Image, r aabb.Rect, c color.Color) {
	x, y := v.toScreen(r.X, r.Y)
	vector.FillRect(screen, x, y, float32(r.W*v.zoom), float32(r.H*v.zoom), c, false)
}

func (v view) stroke(screen *ebiten.Image, r aabb.Rect, c color.Color) {
	x, y := v.toScreen(r.X, r.Y)
	vector.StrokeRect(screen, x, y, float32(r.W*v.zoom), float32(r.H*v.zoom), 1, c, false)
}

// DrawLevel fills the background and every tile in view.
func DrawLevel(w donburi.World, screen *ebiten.Image) {
	m, ok := systems.CurrentMap(w)
	if !ok {
		return
	}
	screen.Fill(m.Background)

	v, ok := newView(w, screen)
	if !ok {
		return
	}
	area := v.visible()
	x0 := max(0, int(area.Left())/tilemap.TileSize)
	y0 := max(0, int(area.Top())/tilemap.TileSize)
	x1 := min(m.Width-1, int(area.Right())/tilemap.TileSize)
	y1 := min(m.Height-1, int(area.Bottom())/tilemap.TileSize)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			tile := m.Tiles[y][x]
			c, ok := tileColor(tile.Type)
			if !ok {
				continue
			}
			if tile.Type == tilemap.TypeSpikes {
				drawSpikes(screen, v, tile.Bounds, c)
				continue
			}
			v.fill(screen, tile.Bounds, c)
		}
	}
}

func tileColor(t tilemap.TileType) (color.RGBA, bool) {
	switch t {
	case tilemap.TypeTile:
		return cfg.TileColor, true
	case tilemap.TypeLadder:
		return cfg.LadderColor, true
	case tilemap.TypeSpikes:
		return cfg.SpikeColor, true
	case tilemap.TypeFlavor:
		return cfg.FlavorColor, true
	}
	return color.RGBA{}, false
}

// drawSpikes draws a row of teeth on the bottom half of the tile.
func drawSpikes(screen *ebiten.Image, v view, r aabb.Rect, c color.Color) {
	const teeth = 4
	w := r.W / teeth
	for i := range teeth {
		tooth := aabb.NewRect(r.X+float64(i)*w+w/4, r.Y+r.H/2, w/2, r.H/2)
		v.fill(screen, tooth, c)
	}
}

// DrawPlatforms draws moving platforms; lethal ones in red.
func DrawPlatforms(w donburi.World, screen *ebiten.Image) {
	v, ok := newView(w, screen)
	if !ok {
		return
	}
	tags.Platform.Each(w, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		c := cfg.PlatformColor
		if e.HasComponent(tags.Lethal) {
			c = cfg.LethalPlatformColor
		}
		v.fill(screen, p.Bounds(), c)
	})
}

// DrawPlayer draws the player as a box coloured by its state, with a band
// on the side it faces.
func DrawPlayer(w donburi.World, screen *ebiten.Image) {
	v, ok := newView(w, screen)
	if !ok {
		return
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		body := components.Object.Get(e).Rect()
		state := components.State.Get(e).CurrentState
		c, ok := cfg.PlayerPalette[state]
		if !ok {
			c = cfg.White
		}
		v.fill(screen, body, c)

		band := aabb.NewRect(body.Right()-body.W/3, body.Top()+3, body.W/3, 4)
		if components.Player.Get(e).FacingLeft {
			band.X = body.Left()
		}
		v.fill(screen, band, cfg.Black)
	})
}
