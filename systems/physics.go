package systems

import (
	"math"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Touching faces closer than this count as separated.
const contactEpsilon = 1e-6

// UpdatePhysics integrates forces and gravity for every body, then moves it
// through the space one axis at a time.
func UpdatePhysics(s *Session, dt float64) {
	components.Physics.Each(s.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		if physics.Mass > 0 {
			physics.Velocity.X += physics.Force.X / physics.Mass * dt
			physics.Velocity.Y += physics.Force.Y / physics.Mass * dt
		}
		physics.Velocity.Y += physics.Gravity * dt

		if physics.Velocity.Y < -cfg.Physics.MaxFallSpeed {
			physics.Velocity.Y = -cfg.Physics.MaxFallSpeed
		}
		if physics.MaxDescent > 0 && physics.Velocity.Y < -physics.MaxDescent {
			physics.Velocity.Y = -physics.MaxDescent
		}

		resolveHorizontal(physics, obj, physics.Velocity.X*dt)
		resolveVertical(physics, obj, physics.Velocity.Y*dt)
		obj.Update()

		if e.HasComponent(components.Player) {
			placeSensors(components.Player.Get(e), obj)
		}
	})
}

// resolveHorizontal moves the object by dx, stopping flush against the
// first solid in the way.
func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	allowed := dx
	for _, solid := range solidsAlong(obj, dx, 0) {
		if obj.Y+obj.H <= solid.Y+contactEpsilon || obj.Y >= solid.Y+solid.H-contactEpsilon {
			continue
		}
		if dx > 0 && solid.X >= obj.X+obj.W-contactEpsilon {
			allowed = math.Min(allowed, solid.X-(obj.X+obj.W))
		} else if dx < 0 && solid.X+solid.W <= obj.X+contactEpsilon {
			allowed = math.Max(allowed, solid.X+solid.W-obj.X)
		}
	}
	if allowed != dx {
		physics.Velocity.X = 0
	}
	obj.X += allowed
}

// resolveVertical moves the object by dy. Landing on a solid sets OnGround.
func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	physics.OnGround = false
	if dy == 0 {
		return
	}
	allowed := dy
	for _, solid := range solidsAlong(obj, 0, dy) {
		if obj.X+obj.W <= solid.X+contactEpsilon || obj.X >= solid.X+solid.W-contactEpsilon {
			continue
		}
		if dy < 0 && solid.Y+solid.H <= obj.Y+contactEpsilon {
			allowed = math.Max(allowed, solid.Y+solid.H-obj.Y)
		} else if dy > 0 && solid.Y >= obj.Y+obj.H-contactEpsilon {
			allowed = math.Min(allowed, solid.Y-(obj.Y+obj.H))
		}
	}
	if allowed != dy {
		if dy < 0 {
			physics.OnGround = true
		}
		physics.Velocity.Y = 0
	}
	obj.Y += allowed
}

// solidsAlong returns solid candidates around both the current and the
// moved position. Check only looks at the destination cells.
func solidsAlong(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	if obj.Space == nil {
		return nil
	}
	seen := map[*resolv.Object]bool{}
	var out []*resolv.Object
	for _, d := range [2][2]float64{{0, 0}, {dx, dy}} {
		check := obj.Check(d[0], d[1], tags.ResolvSolid)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

// Intersections returns every object carrying one of the tags whose box
// overlaps obj. It is the sensor query used for contacts and triggers.
func Intersections(obj *resolv.Object, tagNames ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tagNames...)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, o := range check.Objects {
		if overlaps(obj, o) {
			out = append(out, o)
		}
	}
	return out
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// CastRay walks a ray from (ox, oy) along (dx, dy) and returns the closest
// object with one of the tags within maxDist, ignoring exclude. The
// distance is the time of impact along the normalised direction.
func CastRay(space *resolv.Space, ox, oy, dx, dy, maxDist float64, exclude *resolv.Object, tagNames ...string) (*resolv.Object, float64, bool) {
	if space == nil {
		return nil, 0, false
	}
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, 0, false
	}
	dx, dy = dx/length, dy/length

	var hit *resolv.Object
	best := maxDist
	for _, o := range space.Objects() {
		if o == exclude || (len(tagNames) > 0 && !o.HasTags(tagNames...)) {
			continue
		}
		if toi, ok := rayBox(ox, oy, dx, dy, o); ok && toi <= best {
			hit, best = o, toi
		}
	}
	if hit == nil {
		return nil, 0, false
	}
	return hit, best, true
}

// rayBox is the slab test against an object's box. A ray starting inside
// the box hits at 0.
func rayBox(ox, oy, dx, dy float64, o *resolv.Object) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for _, axis := range [2][4]float64{{ox, dx, o.X, o.X + o.W}, {oy, dy, o.Y, o.Y + o.H}} {
		origin, dir, lo, hi := axis[0], axis[1], axis[2], axis[3]
		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}
	if tmax < 0 || tmin > tmax {
		return 0, false
	}
	return math.Max(tmin, 0), true
}

func center(obj *resolv.Object) dmath.Vec2 {
	return dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

func setCenter(obj *resolv.Object, v dmath.Vec2) {
	obj.X = v.X - obj.W/2
	obj.Y = v.Y - obj.H/2
	obj.Update()
}

// placeSensors keeps the ground and wall sensors attached to the collider.
func placeSensors(player *components.PlayerData, obj *resolv.Object) {
	c := center(obj)
	if g := player.GroundSensor; g != nil {
		g.W = cfg.Player.GroundSensorWidth
		g.H = cfg.Player.GroundSensorBottom - cfg.Player.GroundSensorTop
		g.X = c.X - g.W/2
		g.Y = c.Y - cfg.Player.GroundSensorBottom
		g.Update()
	}
	for side, w := range player.WallSensors {
		if w == nil {
			continue
		}
		w.W = cfg.Player.WallSensorReach
		w.H = cfg.Player.WallSensorHeight
		w.Y = c.Y - w.H/2
		if side == components.WallLeft {
			w.X = obj.X - w.W
		} else {
			w.X = obj.X + obj.W
		}
		w.Update()
	}
}
