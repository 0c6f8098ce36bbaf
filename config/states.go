package config

// PlayerState is the player's movement/animation state. Exactly one is active.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateMovingLeft
	StateMovingRight
	StateJumping
	StateFalling
	StateMovingToIdle
	StateFallingToIdle
	StateSliding
	StateSlidingToJump
)

var stateNames = map[PlayerState]string{
	StateIdle:          "Idle",
	StateMovingLeft:    "MovingLeft",
	StateMovingRight:   "MovingRight",
	StateJumping:       "Jumping",
	StateFalling:       "Falling",
	StateMovingToIdle:  "MovingToIdle",
	StateFallingToIdle: "FallingToIdle",
	StateSliding:       "Sliding",
	StateSlidingToJump: "SlidingToJump",
}

func (s PlayerState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Airborne reports whether the state belongs to the jump/fall arc.
func (s PlayerState) Airborne() bool {
	return s == StateJumping || s == StateFalling
}
