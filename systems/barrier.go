package systems

import (
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
)

// UpdateBarrier keeps the backwards barrier trailing the left edge of the
// view. It joins the space on the first settled frame so the intro pan is
// never blocked.
func UpdateBarrier(s *Session) {
	if s.Panning.State != components.WaitingAtPlayer {
		return
	}
	if s.Barrier == nil || !s.Barrier.Valid() {
		return
	}
	cam, ok := s.playerCamera()
	if !ok {
		return
	}
	obj := components.Object.Get(s.Barrier).Object

	obj.X = BarrierX(cam.Position.X, s.levelWidth())
	if obj.Space == nil && s.Space != nil {
		s.Space.Add(obj)
	}
	obj.Update()
}

// BarrierX is the barrier's left edge for a camera centred at camX.
func BarrierX(camX, levelWidth float64) float64 {
	x := camX - cfg.Camera.VisibleWidth/2 - cfg.Barrier.Offset
	if x < 0 {
		x += levelWidth
	}
	if limit := levelWidth - cfg.Barrier.Offset - cfg.Barrier.JitterMargin; x > limit {
		x = limit
	}
	return x
}
