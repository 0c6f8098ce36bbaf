package systems

import (
	"github.com/automoto/loopjump/components"
)

// SetCheckpoint records the player's current position and token air jumps
// as the respawn point.
func SetCheckpoint(s *Session) {
	e, ok := s.player()
	if !ok {
		return
	}
	components.Checkpoint.SetValue(e, components.CheckpointData{
		Position: center(components.Object.Get(e).Object),
		AirJumps: components.Inventory.Get(e).AirJumps,
	})
}
