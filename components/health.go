package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// HealthBarData is the displayed fill of the HUD bar. It drains toward the
// player's health with a tween instead of jumping.
type HealthBarData struct {
	Shown  float64
	Target int
	Tween  *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
