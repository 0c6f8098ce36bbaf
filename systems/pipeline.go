package systems

// Stage is one step of the per-frame pipeline.
type Stage struct {
	Name string
	Run  func(s *Session, dt float64)
}

func withoutDt(fn func(*Session)) func(*Session, float64) {
	return func(s *Session, _ float64) { fn(s) }
}

// Pipeline is the fixed update order. The transition comes first so a
// respawn is never fought by camera follow in the same frame, and player
// movement is settled before the cameras and the barrier read it.
var Pipeline = []Stage{
	{"transition", UpdateTransition},
	{"contacts", UpdateContacts},
	{"player", UpdatePlayer},
	{"physics", UpdatePhysics},
	{"interactables", UpdateInteractables},
	{"playerloop", withoutDt(UpdatePlayerLoop)},
	{"panning", UpdatePanning},
	{"follow", withoutDt(UpdateCameraFollow)},
	{"autoscroll", withoutDt(UpdateAutoscroll)},
	{"cameraloop", withoutDt(UpdateCameraLoop)},
	{"barrier", withoutDt(UpdateBarrier)},
	{"hover", UpdateHover},
	{"animation", UpdateAnimation},
}

// Frame runs one update of the level and returns what the scene should do
// next.
func Frame(s *Session, dt float64) Request {
	for _, stage := range Pipeline {
		stage.Run(s, dt)
	}
	return s.Request
}
