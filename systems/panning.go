package systems

import (
	"math"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
)

// UpdatePanning runs the level-intro pan: the camera glides to the goal,
// waits there, glides back to the player and then stays settled until the
// next level load.
func UpdatePanning(s *Session, dt float64) {
	cam, ok := s.playerCamera()
	if !ok {
		return
	}

	switch s.Panning.State {
	case components.PanningToGoal:
		goal, ok := s.goal()
		if !ok {
			return
		}
		if panToward(s, cam, center(components.Object.Get(goal).Object).X) {
			s.Panning.State = components.WaitingAtGoal
			s.Panning.Dwell = components.NewTimer(cfg.Camera.GoalDwell, false)
		}
	case components.WaitingAtGoal:
		if s.Panning.Dwell.Tick(dt) {
			s.Panning.Dwell.Reset()
			s.Panning.State = components.PanningToPlayer
		}
	case components.PanningToPlayer:
		e, ok := s.player()
		if !ok {
			return
		}
		if panToward(s, cam, center(components.Object.Get(e).Object).X) {
			s.Panning.State = components.WaitingAtPlayer
		}
	}
}

// panToward moves the cameras a fraction of the way to targetX and reports
// whether the player camera had already arrived.
func panToward(s *Session, cam *components.CameraData, targetX float64) bool {
	dx := targetX - cam.Position.X
	if math.Abs(dx) < cfg.Camera.PanEpsilon {
		return true
	}
	step := dx / cfg.Camera.PanningDivisor
	cam.Position.X += step
	s.eachParallax(func(c *components.CameraData) {
		c.Position.X += step * c.Coefficient
	})
	return false
}
