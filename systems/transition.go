package systems

import (
	"math"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateTransition fades the screen to black while the player is dead,
// finishing or exiting, and acts once the fade is held. It runs before
// every movement stage so a respawn teleport is not undone in the same
// frame.
func UpdateTransition(s *Session, dt float64) {
	if s.Request != RequestNone {
		return
	}
	e, ok := s.player()
	if !ok {
		return
	}
	status := components.Status.Get(e)

	if !status.Dead && !status.LevelFinished && !status.Exiting {
		s.Dim.Alpha = math.Max(0, s.Dim.Alpha-cfg.Transition.DimRate*dt)
		return
	}

	if status.Dead {
		components.Physics.Get(e).Velocity = dmath.Vec2{}
	}
	s.Dim.Alpha += cfg.Transition.DimRate * dt
	if s.Dim.Alpha < cfg.Transition.HoldAlpha {
		return
	}
	s.Dim.Alpha = cfg.Transition.HoldAlpha

	switch {
	case status.LevelFinished:
		finishLevel(s)
	case status.Exiting:
		status.Exiting = false
		s.Request = RequestLevelSelect
	default:
		respawn(s, e)
	}
}

func finishLevel(s *Session) {
	p := s.Progress
	if unlocked := p.TargetLevel + 1; unlocked > p.LastAccessibleLevel {
		if p.LevelCount == 0 || unlocked < p.LevelCount {
			p.LastAccessibleLevel = unlocked
			if s.SaveProgress != nil {
				s.SaveProgress(p)
			}
		}
	}

	s.Panning = newPanning()
	if p.FromLevelSelect {
		p.FromLevelSelect = false
		s.Request = RequestLevelSelect
		return
	}

	p.TargetLevel++
	if p.LevelCount > 0 && p.TargetLevel >= p.LevelCount {
		p.TargetLevel = 0
		s.Request = RequestEndScreen
		return
	}
	s.Request = RequestNextLevel
}

// respawn moves the player back to the checkpoint and drags every camera
// by the same delta, keeping their offsets to the player.
func respawn(s *Session, e *donburi.Entry) {
	status := components.Status.Get(e)
	status.Dead = false
	resetJumpTokens(s)

	obj := components.Object.Get(e).Object
	checkpoint := components.Checkpoint.Get(e)
	pos := center(obj)
	dx := checkpoint.Position.X - pos.X
	dy := checkpoint.Position.Y - pos.Y

	var offset float64
	cam, hasCam := s.playerCamera()
	if hasCam {
		// A player left of the camera pulls it back first.
		if offset = pos.X - cam.Position.X; offset < 0 {
			cam.Position.X += offset
		} else {
			offset = 0
		}
		cam.Position.X += dx
		cam.Position.Y = math.Max(cam.Position.Y+dy, lowY())
	}

	s.eachParallax(func(c *components.CameraData) {
		c.Position.X += (dx + offset) * c.Coefficient
		c.Position.Y = math.Max(c.Position.Y+dy*c.Coefficient, lowY()*c.Coefficient)
	})

	setCenter(obj, checkpoint.Position)
	player := components.Player.Get(e)
	placeSensors(player, obj)
	setState(player, cfg.StateIdle)

	physics := components.Physics.Get(e)
	physics.Velocity = dmath.Vec2{}
	physics.Force = dmath.Vec2{}

	components.Inventory.Get(e).AirJumps = checkpoint.AirJumps
}

func resetJumpTokens(s *Session) {
	components.Interactable.Each(s.World, func(e *donburi.Entry) {
		d := components.Interactable.Get(e)
		if d.Kind != components.KindJumpToken {
			return
		}
		d.Active = true
		d.Visible = true
		d.Respawn.Reset()
	})
}
