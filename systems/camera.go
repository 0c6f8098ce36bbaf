package systems

import (
	"math"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
)

// lowY is the lowest centre the player camera may have without showing
// anything below the floor.
func lowY() float64 {
	return cfg.Camera.VisibleHeight / 2
}

// UpdateCameraFollow eases every camera's Y toward the player, or toward
// the goal while the director pans there.
func UpdateCameraFollow(s *Session) {
	if s.Panning.State == components.WaitingAtGoal {
		return
	}
	e, ok := s.player()
	if !ok || components.Status.Get(e).Dead {
		return
	}
	cam, ok := s.playerCamera()
	if !ok {
		return
	}

	divisor := cfg.Camera.PanningDivisor
	if s.Panning.State == components.WaitingAtPlayer {
		divisor = cfg.Camera.SettledDivisor
	}

	targetY := center(components.Object.Get(e).Object).Y
	if s.Panning.State == components.PanningToGoal {
		if goal, ok := s.goal(); ok {
			targetY = center(components.Object.Get(goal).Object).Y
		}
	}

	delta := (targetY - cam.Position.Y) / divisor
	low := lowY()
	cam.Position.Y += delta
	clamped := cam.Position.Y < low
	if clamped {
		cam.Position.Y = low
	}

	s.eachParallax(func(c *components.CameraData) {
		floor := low * c.Coefficient
		if clamped {
			c.Position.Y = floor
			return
		}
		c.Position.Y = math.Max(c.Position.Y+delta*c.Coefficient, floor)
	})
}

// UpdateAutoscroll pushes the cameras forward whenever the player's wrapped
// X is ahead of the player camera. Being behind never scrolls back.
func UpdateAutoscroll(s *Session) {
	if s.Panning.State != components.WaitingAtPlayer {
		return
	}
	e, ok := s.player()
	if !ok {
		return
	}
	cam, ok := s.playerCamera()
	if !ok {
		return
	}

	w := s.levelWidth()
	wrapped := wrap(center(components.Object.Get(e).Object).X, w)
	delta := wrapped - cam.Position.X
	if delta <= 0 {
		return
	}
	delta = wrap(delta, w)

	cam.Position.X += delta
	s.eachParallax(func(c *components.CameraData) {
		c.Position.X += delta * c.Coefficient
	})
}

// UpdateCameraLoop teleports parallax cameras by two level widths once they
// leave [-W/2, 3W/2]. Each layer has two instances one level width apart,
// so the jump is never visible.
func UpdateCameraLoop(s *Session) {
	w := s.levelWidth()
	s.eachParallax(func(c *components.CameraData) {
		c.Position.X = loopX(c.Position.X, w)
	})
}

func loopX(x, w float64) float64 {
	if x > 1.5*w {
		return x - 2*w
	}
	if x < -0.5*w {
		return x + 2*w
	}
	return x
}

// wrap returns x modulo w in [0, w).
func wrap(x, w float64) float64 {
	if w <= 0 {
		return x
	}
	m := math.Mod(x, w)
	if m < 0 {
		m += w
	}
	return m
}
