package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity   math.Vec2
	Force      math.Vec2 // external force, rewritten by its owner every frame
	Mass       float64
	Gravity    float64
	MaxDescent float64 // downward speed cap for this frame, 0 for none
	OnGround   bool    // set by vertical collision resolution
}

var Physics = donburi.NewComponentType[PhysicsData]()
