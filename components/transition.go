package components

// DimData is the full-screen fade used by level transitions.
type DimData struct {
	Alpha float64
}

// PanningState is the camera panning director's phase.
type PanningState int

const (
	PanningToGoal PanningState = iota
	WaitingAtGoal
	PanningToPlayer
	WaitingAtPlayer
)

func (p PanningState) String() string {
	switch p {
	case PanningToGoal:
		return "PanningToGoal"
	case WaitingAtGoal:
		return "WaitingAtGoal"
	case PanningToPlayer:
		return "PanningToPlayer"
	case WaitingAtPlayer:
		return "WaitingAtPlayer"
	}
	return "Unknown"
}

type PanningData struct {
	State PanningState
	Dwell Timer
}
