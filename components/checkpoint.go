package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CheckpointData is the player's last safe respawn point.
type CheckpointData struct {
	Position math.Vec2
	AirJumps uint
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
