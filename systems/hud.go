package systems

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/archetypes"
	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/tags"
)

// UpdateHUD drains the displayed health bar toward the player's health.
func UpdateHUD(w donburi.World, dt time.Duration) {
	bar := GetOrCreateHealthBar(w)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	target := 0
	if components.Player.Get(playerEntry).Alive {
		target = components.Health.Get(playerEntry).Current
	}

	if target != bar.Target {
		bar.Target = target
		bar.Tween = gween.New(float32(bar.Shown), float32(target), float32(config.HUD.DrainDuration.Seconds()), ease.Linear)
	}
	if bar.Tween == nil {
		return
	}

	shown, done := bar.Tween.Update(float32(dt.Seconds()))
	bar.Shown = float64(shown)
	if done {
		bar.Shown = float64(bar.Target)
		bar.Tween = nil
	}
}

// ResetHUD fills the bar to the player's health without animating.
func ResetHUD(w donburi.World) {
	bar := GetOrCreateHealthBar(w)
	bar.Tween = nil
	bar.Target, bar.Shown = 0, 0
	if e, ok := tags.Player.First(w); ok {
		bar.Target = components.Health.Get(e).Current
		bar.Shown = float64(bar.Target)
	}
}

// GetOrCreateHealthBar returns the singleton HUD bar.
func GetOrCreateHealthBar(w donburi.World) *components.HealthBarData {
	entry, ok := components.HealthBar.First(w)
	if !ok {
		entry = archetypes.HUD.Spawn(w)
	}
	return components.HealthBar.Get(entry)
}

// HealthBarColor fades the bar from white at full health to red when empty.
func HealthBarColor(shown float64, maxHealth int) color.RGBA {
	if maxHealth <= 0 {
		return config.Red
	}
	frac := max(0, min(1, shown/float64(maxHealth)))
	gb := uint8(255 * frac)
	return color.RGBA{R: 255, G: gb, B: gb, A: 255}
}
