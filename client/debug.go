package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/fonts"
	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/systems"
	"github.com/eman41/red-headband-prototype/tags"
)

var scanColor = color.RGBA{255, 255, 0, 120}

// UpdateDebug toggles the overlay on the debug action.
func UpdateDebug(w donburi.World) {
	if systems.GetAction(systems.GetOrCreateInput(w), cfg.ActionDebug).JustPressed {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}
}

func DrawDebug(w donburi.World, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	v, ok := newView(w, screen)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)

	if cfg.Debug.ShowScan && physics.Resolver != nil {
		scan := physics.Resolver.ScanBounds()
		v.stroke(screen, aabb.NewRect(
			float64(scan.Min.X*tilemap.TileSize), float64(scan.Min.Y*tilemap.TileSize),
			float64(scan.Dx()*tilemap.TileSize), float64(scan.Dy()*tilemap.TileSize),
		), scanColor)
	}

	if m, ok := systems.CurrentMap(w); ok && cfg.Debug.ShowObjects {
		area := v.visible()
		for _, obj := range m.Space.Objects() {
			r := aabb.NewRect(obj.X, obj.Y, obj.W, obj.H)
			if !r.Intersects(area) {
				continue
			}
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvDeadZone) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvLadder) {
				c = color.RGBA{255, 160, 0, 255}
			} else if obj.HasTags(tags.ResolvPlatform) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}
			v.stroke(screen, r, c)
		}
	}

	player := components.Player.Get(playerEntry)
	body := components.Object.Get(playerEntry).Rect()
	state := components.State.Get(playerEntry)
	lines := []string{
		fmt.Sprintf("pos %.0f,%.0f  vel %.1f,%.1f", body.X, body.Y, physics.SpeedX, physics.SpeedY),
		fmt.Sprintf("state %s (%d)", state.CurrentState, state.StateTimer),
		fmt.Sprintf("floor %t platform %t ladder %t slide %t", player.OnFloor, player.OnPlatform, player.OnLadder, player.Sliding),
		fmt.Sprintf("jump %t walljump %t hit %t", player.Jumping, player.WallJumping, player.GotHit),
		fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
	}
	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, 6, (i+1)*lineHeight+4, cfg.White)
	}
}
