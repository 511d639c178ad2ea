package systems

import (
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/tags"
)

// body bundles the components player physics reads and writes.
type body struct {
	entry   *donburi.Entry
	player  *components.PlayerData
	physics *components.PhysicsData
	obj     *components.ObjectData
}

func bodyOf(e *donburi.Entry) body {
	return body{
		entry:   e,
		player:  components.Player.Get(e),
		physics: components.Physics.Get(e),
		obj:     components.Object.Get(e),
	}
}

// UpdatePlayerPhysics moves every player by its velocity and resolves it
// against the level.
func UpdatePlayerPhysics(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		stepPhysics(bodyOf(e))
	})
}

func stepPhysics(b body) {
	res := b.physics.Resolver
	if res == nil {
		return
	}

	if b.player.Alive && res.Map().KillCollision(b.obj.Object) {
		KillPlayer(b.entry)
	}

	switch {
	case !b.player.Alive:
		deathRules(b)
	case b.player.OnLadder:
		ladderRules(b)
	default:
		normalRules(b)
	}

	r := b.obj.Rect()
	res.UpdateScanBounds(gamemath.CenterTile(r.X, r.Y, r.W, r.H), cfg.Physics.ScanRadius)
}

// deathRules lets the body fall until it lands.
func deathRules(b body) {
	b.player.Sliding = false
	b.player.OnLadder = false
	b.player.OnFloor = checkFooting(b)
}

func ladderRules(b body) {
	res := b.physics.Resolver
	climb := cfg.Physics.ClimbCoeff

	b.obj.MoveTo(b.obj.X+gamemath.RoundStep(b.physics.SpeedX*climb), b.obj.Y)
	res.CheckTiles(b.obj.Object, aabb.AxisX)

	b.obj.MoveTo(b.obj.X, b.obj.Y+gamemath.RoundStep(b.physics.SpeedY*climb))
	hit := res.CheckTiles(b.obj.Object, aabb.AxisY)

	ladder, overlapping := res.Map().LadderCollision(b.obj.Rect())
	if hit.Dir == aabb.FromTop || !overlapping {
		b.player.OnLadder = false
	} else {
		b.physics.ActiveLadder = ladder
	}

	b.player.OnPlatform = checkPlatforms(b, aabb.AxisY)
}

func normalRules(b body) {
	res := b.physics.Resolver

	b.obj.MoveTo(b.obj.X+gamemath.RoundStep(b.physics.SpeedX), b.obj.Y)
	res.CheckTiles(b.obj.Object, aabb.AxisX)
	checkPlatforms(b, aabb.AxisX)

	if !b.player.Alive {
		return
	}
	b.player.Sliding = checkSliding(b)
	b.player.OnFloor = checkFooting(b)
	b.player.OnPlatform = checkPlatforms(b, aabb.AxisY)
	b.player.OnLadder = checkEnterLadder(b)
}

// checkFooting applies vertical velocity and reports whether the body
// landed on a tile or on top of a ladder.
func checkFooting(b body) bool {
	res := b.physics.Resolver
	grounded := false

	b.obj.MoveTo(b.obj.X, b.obj.Y+gamemath.RoundStep(b.physics.SpeedY))
	switch res.CheckTiles(b.obj.Object, aabb.AxisY).Dir {
	case aabb.FromTop:
		b.physics.SpeedY = 0
		grounded = true
	case aabb.FromBottom:
		crush(b)
	}

	// Ladder tops hold a body that comes down onto them from above.
	for _, ladder := range res.Map().Ladders {
		r := b.obj.Rect()
		if b.physics.SpeedY <= 0 || !r.Intersects(ladder) || r.Top() >= ladder.Top() {
			continue
		}
		if res.DetectAndResolve(b.obj.Object, ladder, aabb.AxisY) == aabb.FromTop {
			b.physics.SpeedY = 0
			grounded = true
		}
	}
	return grounded
}

// checkPlatforms reports whether the body is riding a platform.
func checkPlatforms(b body, axis aabb.Axis) bool {
	res := b.physics.Resolver
	hit := res.CheckPlatforms(b.obj.Object, axis)
	if hit.Platform == nil {
		return false
	}

	if lethal, ok := hit.Platform.AsLethal(); ok && lethal.Kills(hit.Dir) {
		KillPlayer(b.entry)
	}
	if !b.player.Alive {
		return false
	}

	switch res.DetectAndResolve(b.obj.Object, hit.Platform.Bounds(), axis) {
	case aabb.FromTop:
		hit.Platform.WakeUp()
		v := hit.Platform.Velocity()
		b.physics.SpeedX, b.physics.SpeedY = v.X, v.Y
		b.obj.MoveTo(b.obj.X+v.X, b.obj.Y+v.Y)
		b.player.OnFloor = false
		b.player.OnLadder = false
		return true
	case aabb.FromBottom:
		crush(b)
	}
	return false
}

// crush handles a hit from below. It only kills a body that is already
// standing on something.
func crush(b body) {
	b.player.Jumping = false
	b.player.WallJumping = false
	b.player.OnLadder = false
	if b.player.OnFloor {
		KillPlayer(b.entry)
	}
}

// checkEnterLadder grabs a ladder when steering up into one, or down into
// one from above its top.
func checkEnterLadder(b body) bool {
	m := b.physics.Resolver.Map()
	r := b.obj.Rect()

	switch b.player.YDirection {
	case components.HeadingUp:
		if ladder, ok := m.LadderCollision(r); ok {
			b.physics.ActiveLadder = ladder
			return true
		}
	case components.HeadingDown:
		ladder, ok := m.LadderCollision(r.Offset(0, cfg.Player.Speed))
		if !ok {
			return false
		}
		b.physics.ActiveLadder = ladder
		if tilemap.AboveLadder(r, b.physics.ActiveLadder) {
			b.obj.MoveTo(b.obj.X, b.obj.Y+cfg.Player.Speed)
			return true
		}
	}
	return false
}

// checkSliding probes one pixel to each side for a wall. A body on the
// floor or a platform is never sliding.
func checkSliding(b body) bool {
	if b.player.OnFloor || b.player.OnPlatform {
		return false
	}
	res := b.physics.Resolver
	r := b.obj.Rect()
	probe := cfg.Physics.SlideProbe

	if res.CheckRect(r.Offset(-probe, 0), aabb.AxisX).Dir == aabb.FromRight {
		b.player.SlideState = cfg.WallSlideL
		b.player.FacingLeft = true
		return true
	}
	if res.CheckRect(r.Offset(probe, 0), aabb.AxisX).Dir == aabb.FromLeft {
		b.player.SlideState = cfg.WallSlideR
		b.player.FacingLeft = false
		return true
	}
	return false
}
