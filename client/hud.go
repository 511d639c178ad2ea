package client

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/fonts"
	"github.com/eman41/red-headband-prototype/systems"
	"github.com/eman41/red-headband-prototype/tags"
)

// DrawHUD renders the health bar along the bottom of the screen.
func DrawHUD(w donburi.World, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	health := components.Health.Get(playerEntry)
	bar := systems.GetOrCreateHealthBar(w)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	x := (width - cfg.HUD.BarWidth) / 2
	y := height - cfg.HUD.BottomMargin - cfg.HUD.BarHeight

	frac := 0.0
	if health.Max > 0 {
		frac = max(0, min(1, bar.Shown/float64(health.Max)))
	}
	vector.FillRect(screen, float32(x), float32(y), float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight), cfg.BlackOverlay, false)
	vector.FillRect(screen, float32(x), float32(y), float32(cfg.HUD.BarWidth*frac), float32(cfg.HUD.BarHeight),
		systems.HealthBarColor(bar.Shown, health.Max), false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight), 1, cfg.HUD.FrameColor, false)

	face := fonts.HUD.Get()
	label := fmt.Sprintf("%d / %d", health.Current, health.Max)
	if !components.Player.Get(playerEntry).Alive {
		label = "dead - press R to restart"
	}
	labelX := int(width-float64(font.MeasureString(face, label).Ceil())) / 2
	text.Draw(screen, label, face, labelX, int(y)-4, cfg.HUD.TextColor)
}

// DrawPause dims the screen while the game is paused.
func DrawPause(w donburi.World, screen *ebiten.Image) {
	if !systems.IsPaused(w) {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	face := fonts.HUD.Get()
	title := "PAUSED"
	titleX := int(width-float64(font.MeasureString(face, title).Ceil())) / 2
	text.Draw(screen, title, face, titleX, int(height/2), cfg.HUD.TextColor)
}
