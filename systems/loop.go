package systems

import (
	"github.com/automoto/loopjump/components"
)

// UpdatePlayerLoop wraps the player across the level seam. The player
// camera moves with them so the view does not jump.
func UpdatePlayerLoop(s *Session) {
	e, ok := s.player()
	if !ok {
		return
	}
	obj := components.Object.Get(e).Object
	w := s.levelWidth()

	var shift float64
	switch x := center(obj).X; {
	case x < 0:
		shift = w
	case x > w:
		shift = -w
	default:
		return
	}

	obj.X += shift
	obj.Update()
	placeSensors(components.Player.Get(e), obj)
	if cam, ok := s.playerCamera(); ok {
		cam.Position.X += shift
	}
}
