package components

import "math"

// Timer is an elapsed-time counter ticked once per frame.
type Timer struct {
	Elapsed   float64
	Duration  float64
	Repeating bool
}

func NewTimer(duration float64, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

// FinishedTimer returns a one-shot timer that starts out already finished.
func FinishedTimer(duration float64) Timer {
	return Timer{Elapsed: duration, Duration: duration}
}

// Tick advances the timer and reports whether it finished during this tick.
// Repeating timers wrap and report every completion.
func (t *Timer) Tick(dt float64) bool {
	if t.Repeating {
		if t.Duration <= 0 {
			return false
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = math.Mod(t.Elapsed, t.Duration)
			return true
		}
		return false
	}

	if t.Finished() {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		return true
	}
	return false
}

// Finished is true for a one-shot timer that has run its full duration.
func (t Timer) Finished() bool {
	return !t.Repeating && t.Elapsed >= t.Duration
}

func (t *Timer) Reset() {
	t.Elapsed = 0
}
