package systems

import (
	"log"
	"math"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
)

// UpdatePlayer applies input to the player: horizontal movement, the jump
// priority chain and velocity damping.
func UpdatePlayer(s *Session, dt float64) {
	e, ok := s.player()
	if !ok {
		return
	}
	player := components.Player.Get(e)
	inventory := components.Inventory.Get(e)
	status := components.Status.Get(e)
	physics := components.Physics.Get(e)
	input := components.Input.Get(e)

	for side := range inventory.WallJumpCooldown {
		inventory.WallJumpCooldown[side].Tick(dt)
	}

	if !status.Dead && !status.LevelFinished {
		handleHorizontalInput(player, physics, input)
		if input.Action(cfg.ActionJump).JustPressed && status.JumpCooldown.Finished() {
			tryJump(player, inventory, status, physics)
		}
	}

	physics.Velocity.X /= cfg.Player.HorizontalDamping
	if math.Abs(physics.Velocity.X) < cfg.Player.VelocityEpsilon {
		physics.Velocity.X = 0
	}

	physics.MaxDescent = 0
	if player.State == cfg.StateSliding {
		physics.MaxDescent = cfg.Player.WallSlideSpeed
	}
}

func handleHorizontalInput(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData) {
	right := input.Action(cfg.ActionMoveRight).Pressed
	left := input.Action(cfg.ActionMoveLeft).Pressed

	switch {
	case right:
		physics.Velocity.X += cfg.Player.MoveImpulse
		player.Facing = cfg.DirectionRight
		if player.State == cfg.StateMovingLeft || player.State == cfg.StateIdle {
			setState(player, cfg.StateMovingRight)
		}
	case left:
		physics.Velocity.X -= cfg.Player.MoveImpulse
		player.Facing = cfg.DirectionLeft
		if player.State == cfg.StateMovingRight || player.State == cfg.StateIdle {
			setState(player, cfg.StateMovingLeft)
		}
	default:
		if player.State == cfg.StateMovingLeft || player.State == cfg.StateMovingRight {
			setState(player, cfg.StateMovingToIdle)
		}
	}
}

// tryJump runs the jump priority chain: ground, wall, double jump, token.
func tryJump(player *components.PlayerData, inventory *components.InventoryData, status *components.StatusData, physics *components.PhysicsData) bool {
	next := cfg.StateJumping

	switch {
	case player.Grounded && !player.State.Airborne():
	case wallJump(player, inventory, physics):
		next = cfg.StateSlidingToJump
	case inventory.ExtraJumps > 0:
		inventory.ExtraJumps--
	case inventory.AirJumps > 0:
		inventory.AirJumps--
	default:
		return false
	}

	physics.Velocity.Y = cfg.Player.JumpSpeed
	physics.Force.Y = 0
	player.SpringForce = 0
	status.JumpCooldown = components.NewTimer(cfg.Player.JumpCooldown, false)
	setState(player, next)
	return true
}

// wallJump kicks the player away from a wall side that is ready and starts
// that side's cooldown.
func wallJump(player *components.PlayerData, inventory *components.InventoryData, physics *components.PhysicsData) bool {
	if !inventory.HasWallJump {
		return false
	}
	for side := range inventory.OnWall {
		if !inventory.OnWall[side] || !inventory.WallJumpCooldown[side].Finished() {
			continue
		}
		inventory.ExtraJumps = inventory.MaxExtraJumps
		inventory.WallJumpCooldown[side] = components.NewTimer(cfg.Player.WallJumpCooldown, false)
		if side == components.WallLeft {
			physics.Velocity.X = cfg.Player.WallJumpKick
			player.Facing = cfg.DirectionRight
		} else {
			physics.Velocity.X = -cfg.Player.WallJumpKick
			player.Facing = cfg.DirectionLeft
		}
		return true
	}
	return false
}

func setState(player *components.PlayerData, state cfg.PlayerState) {
	if player.State == state {
		return
	}
	if cfg.Debug.Verbose {
		log.Printf("player: %s -> %s", player.State, state)
	}
	player.State = state
}
