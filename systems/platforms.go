package systems

import (
	"image"
	"math"
	"time"

	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/tags"
)

// nobody is a tile no sensor can see, used when there is no player.
var nobody = image.Pt(math.MinInt32, math.MinInt32)

// UpdatePlatforms advances every platform and moves its body in the space
// to match.
func UpdatePlatforms(w donburi.World, dt time.Duration) {
	subject := nobody
	if e, ok := tags.Player.First(w); ok {
		r := components.Object.Get(e).Rect()
		subject = gamemath.CenterTile(r.X, r.Y, r.W, r.H)
	}

	tags.Platform.Each(w, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		p.Update(dt, subject)
		syncPlatformObject(e)
	})
}

func syncPlatformObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	b := components.Platform.Get(e).Bounds()
	components.Object.Get(e).MoveTo(b.X, b.Y)
}

// ResetPlatforms rewinds every platform entity to its start.
func ResetPlatforms(w donburi.World) {
	tags.Platform.Each(w, func(e *donburi.Entry) {
		components.Platform.Get(e).Reset()
		syncPlatformObject(e)
	})
}
