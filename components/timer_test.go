package components

import "testing"

func TestTimerOneShot(t *testing.T) {
	timer := NewTimer(0.3, false)

	if timer.Finished() {
		t.Fatal("new timer should not be finished")
	}
	if timer.Tick(0.2) {
		t.Fatal("finished early")
	}
	if !timer.Tick(0.2) {
		t.Fatal("expected finish on crossing duration")
	}
	if timer.Elapsed != 0.3 {
		t.Errorf("Elapsed = %v, want clamp to 0.3", timer.Elapsed)
	}
	if timer.Tick(0.2) {
		t.Error("finished timer reported a second completion")
	}

	timer.Reset()
	if timer.Finished() {
		t.Error("reset timer should not be finished")
	}
}

func TestTimerRepeating(t *testing.T) {
	timer := NewTimer(1, true)

	fired := 0
	for i := 0; i < 25; i++ {
		if timer.Tick(0.1) {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("fired %d times in 2.5s, want 2", fired)
	}
	if timer.Finished() {
		t.Error("repeating timers never report Finished")
	}
}

func TestFinishedTimer(t *testing.T) {
	timer := FinishedTimer(0.3)
	if !timer.Finished() {
		t.Fatal("FinishedTimer should start finished")
	}
	if timer.Tick(1) {
		t.Error("already finished timer fired")
	}
}

func TestInputActionEdges(t *testing.T) {
	var in InputData
	in.Current[1] = true

	state := in.Action(1)
	if !state.Pressed || !state.JustPressed {
		t.Fatalf("first frame = %+v, want pressed and just pressed", state)
	}

	in.Advance()
	in.Current[1] = true
	if state := in.Action(1); state.JustPressed {
		t.Error("held key reported JustPressed")
	}

	in.Advance()
	if state := in.Action(1); !state.JustReleased {
		t.Error("expected JustReleased after letting go")
	}
}
