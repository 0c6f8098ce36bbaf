package systems

import (
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
)

// UpdateContacts reads the ground and wall sensors, applies the contact
// transitions of the state machine and computes the ground spring.
func UpdateContacts(s *Session, dt float64) {
	e, ok := s.player()
	if !ok {
		return
	}
	player := components.Player.Get(e)
	if player.GroundSensor == nil {
		return
	}
	inventory := components.Inventory.Get(e)
	status := components.Status.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object

	placeSensors(player, obj)

	wasGrounded := player.Grounded
	player.Grounded = len(Intersections(player.GroundSensor, tags.ResolvSolid)) > 0
	for side, sensor := range player.WallSensors {
		was := inventory.OnWall[side]
		inventory.OnWall[side] = touchesWall(sensor)
		if inventory.OnWall[side] && !was {
			inventory.AirJumps = 0
		}
	}

	vy := physics.Velocity.Y
	if player.Grounded {
		inventory.ExtraJumps = inventory.MaxExtraJumps
		if !wasGrounded {
			inventory.AirJumps = 0
		}
		switch {
		case player.State == cfg.StateFalling, player.State == cfg.StateSliding:
			setState(player, cfg.StateFallingToIdle)
		case player.State == cfg.StateJumping && vy <= 0,
			player.State == cfg.StateSlidingToJump && vy <= 0:
			setState(player, cfg.StateFallingToIdle)
		}
	} else {
		switch player.State {
		case cfg.StateFallingToIdle, cfg.StateSliding, cfg.StateFalling:
		default:
			if vy < 0 {
				setState(player, cfg.StateFalling)
			}
		}

		if inventory.HasWallJump && canSlide(inventory) {
			setState(player, cfg.StateSliding)
		} else if player.State == cfg.StateSliding && !inventory.OnWall[components.WallLeft] && !inventory.OnWall[components.WallRight] {
			setState(player, cfg.StateSlidingToJump)
		}
	}

	updateGroundSpring(s, player, status, physics, obj, dt)
}

// canSlide reports whether the player touches a wall whose wall-jump
// cooldown has run out.
func canSlide(inventory *components.InventoryData) bool {
	for side := range inventory.OnWall {
		if inventory.OnWall[side] && inventory.WallJumpCooldown[side].Finished() {
			return true
		}
	}
	return false
}

// touchesWall ignores the backwards barrier so it can never be climbed.
func touchesWall(sensor *resolv.Object) bool {
	if sensor == nil {
		return false
	}
	for _, o := range Intersections(sensor, tags.ResolvSolid) {
		if !o.HasTags(tags.ResolvBarrier) {
			return true
		}
	}
	return false
}

// updateGroundSpring casts straight down from the collider centre and
// holds the player at the ray's rest length with a damped spring.
func updateGroundSpring(s *Session, player *components.PlayerData, status *components.StatusData, physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	cooling := !status.JumpCooldown.Finished()
	status.JumpCooldown.Tick(dt)

	c := center(obj)
	_, toi, hit := CastRay(s.Space, c.X, c.Y, 0, -1, cfg.Player.GroundRayLength, obj, tags.ResolvSolid)
	player.GroundHit = hit
	player.GroundToi = toi
	player.SpringForce = 0

	switch player.State {
	case cfg.StateJumping, cfg.StateFalling, cfg.StateSliding:
	default:
		if hit && !cooling {
			player.SpringForce = (cfg.Player.GroundRayLength-toi)*cfg.Player.SpringConstant -
				cfg.Player.SpringDamping*physics.Velocity.Y
		}
	}
	physics.Force.Y = player.SpringForce
}
