package config

// AnimationEnd says what happens when a state's frame range runs out.
type AnimationEnd int

const (
	AnimHold       AnimationEnd = iota // stay on the last frame
	AnimLoop                           // jump back to LoopTo
	AnimTransition                     // switch the player to Next
)

// AnimationDef is an inclusive frame range with one duration per frame.
type AnimationDef struct {
	First     int
	Last      int
	Durations []float64 // seconds, indexed by position within First..Last
	End       AnimationEnd
	LoopTo    int
	Next      PlayerState
}

// Duration returns how long frame index i (absolute sheet index) is shown.
func (a AnimationDef) Duration(i int) float64 {
	pos := i - a.First
	if len(a.Durations) == 0 {
		return 0
	}
	if pos < 0 || pos >= len(a.Durations) {
		return a.Durations[len(a.Durations)-1]
	}
	return a.Durations[pos]
}

func frames(n int, d float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d
	}
	return out
}

const movingStart = 10

// PlayerAnimations maps each player state to its slice of the sprite sheet.
var PlayerAnimations = map[PlayerState]AnimationDef{
	StateIdle:          {First: 0, Last: 0, Durations: frames(1, 0.1), End: AnimHold},
	StateMovingLeft:    {First: movingStart, Last: movingStart + 3, Durations: frames(4, 0.1), End: AnimLoop, LoopTo: movingStart + 2},
	StateMovingRight:   {First: movingStart, Last: movingStart + 3, Durations: frames(4, 0.1), End: AnimLoop, LoopTo: movingStart + 2},
	StateJumping:       {First: 0, Last: 2, Durations: frames(3, 0.1), End: AnimHold},
	StateFalling:       {First: 2, Last: 4, Durations: frames(3, 0.1), End: AnimHold},
	StateMovingToIdle:  {First: movingStart + 1, Last: movingStart + 1, Durations: frames(1, 0.05), End: AnimTransition, Next: StateIdle},
	StateFallingToIdle: {First: 6, Last: 10, Durations: frames(5, 0.05), End: AnimTransition, Next: StateIdle},
	StateSliding:       {First: 14, Last: 16, Durations: frames(3, 0.1), End: AnimLoop, LoopTo: 14},
	StateSlidingToJump: {First: 17, Last: 18, Durations: []float64{0.06, 0.1}, End: AnimHold},
}

// PlayerSheetFrames is the number of frames in the player sprite sheet.
const PlayerSheetFrames = 19
