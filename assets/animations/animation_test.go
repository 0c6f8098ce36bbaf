package animations

import (
	"testing"

	cfg "github.com/automoto/loopjump/config"
)

func TestAnimationLoopsToLoopFrame(t *testing.T) {
	a := NewAnimation(cfg.PlayerAnimations[cfg.StateMovingRight])

	want := []int{11, 12, 13, 12, 13, 12}
	for i, w := range want {
		if a.Update(0.1) {
			t.Fatalf("step %d: looping animation reported completion", i)
		}
		if a.Frame() != w {
			t.Fatalf("step %d: frame = %d, want %d", i, a.Frame(), w)
		}
	}
}

func TestAnimationHoldsLastFrame(t *testing.T) {
	a := NewAnimation(cfg.PlayerAnimations[cfg.StateJumping])

	a.Update(0.1)
	a.Update(0.1)
	if !a.Update(0.1) {
		t.Fatal("expected completion after running past the last frame")
	}
	if a.Frame() != 2 {
		t.Errorf("frame = %d, want held on 2", a.Frame())
	}
	if a.Update(1) {
		t.Error("completed twice")
	}
	if a.Frame() != 2 {
		t.Errorf("frame moved to %d after completion", a.Frame())
	}
}

func TestAnimationTransitionCompletes(t *testing.T) {
	a := NewAnimation(cfg.PlayerAnimations[cfg.StateFallingToIdle])

	completed := false
	for i := 0; i < 10 && !completed; i++ {
		completed = a.Update(0.05)
	}
	if !completed {
		t.Fatal("landing animation never completed")
	}
	if a.Frame() != 10 {
		t.Errorf("frame = %d, want 10", a.Frame())
	}

	a.Restart()
	if a.Complete || a.Frame() != 6 {
		t.Errorf("Restart left frame=%d complete=%v", a.Frame(), a.Complete)
	}
}
