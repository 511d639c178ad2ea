package systems

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/tags"
)

func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Rect()

	updateCameraHolds(camera, body.X)

	cx, cy := body.Center()
	targetX, targetY := cameraTarget(camera, cx, cy)

	// Center the camera on the constrained target position, with some smoothing.
	if camera.Lock != components.LockHorizontal && camera.Lock != components.LockBoth {
		camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	}
	if camera.Lock != components.LockVertical && camera.Lock != components.LockBoth {
		camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
	}
}

// updateCameraHolds pins the left edge at the next hold column once the
// player is a quarter screen past it.
func updateCameraHolds(camera *components.CameraData, playerX float64) {
	if len(camera.Holds) == 0 {
		return
	}
	hold := camera.Holds[0]
	peek := float64(hold+config.C.ViewportTilesX/4) * tilemap.TileSize
	if playerX > peek {
		camera.MinX = float64(hold * tilemap.TileSize)
		camera.Holds = camera.Holds[1:]
	}
}

// cameraTarget constrains a point so the view stays inside the limits.
func cameraTarget(camera *components.CameraData, x, y float64) (float64, float64) {
	viewW, viewH := ViewSize()
	return clampView(x, camera.MinX, camera.MaxX, viewW/2),
		clampView(y, camera.MinY, camera.MaxY, viewH/2)
}

func clampView(v, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return max(lo+half, min(hi-half, v))
}

// ViewSize is the visible area in world pixels.
func ViewSize() (float64, float64) {
	zoom := config.Camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return float64(config.C.Width) / zoom, float64(config.C.Height) / zoom
}

// ResetCamera refits the camera to the current level and snaps it onto the
// player.
func ResetCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if levelEntry, ok := components.Level.First(w); ok {
		camera.Frame(components.Level.Get(levelEntry).Map)
	}
	if playerEntry, ok := tags.Player.First(w); ok {
		body := components.Object.Get(playerEntry).Rect()
		cx, cy := body.Center()
		camera.Position.X, camera.Position.Y = cameraTarget(camera, cx, cy)
	}
}

// LockCamera freezes the camera on the given axes.
func LockCamera(w donburi.World, lock components.CameraLock) {
	if e, ok := components.Camera.First(w); ok {
		components.Camera.Get(e).Lock = lock
	}
}
