package systems_test

import (
	"math"
	"testing"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/systems"
)

func TestAutoscroll(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		camX    float64
		wantX   float64
	}{
		{"player wrapped behind camera", 0, 1580, 1580},
		{"player ahead", 800, 700, 800},
		{"player level with camera", 600, 600, 600},
		{"player behind", 500, 600, 600},
		{"player past the seam", 1650, 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := build(t, flatLevel())
			s.Panning.State = components.WaitingAtPlayer
			placePlayer(s, tt.playerX, 100)
			playerCam(s).Position.X = tt.camX

			systems.UpdateAutoscroll(s)
			if got := playerCam(s).Position.X; math.Abs(got-tt.wantX) > 1e-9 {
				t.Errorf("camera x = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestAutoscrollMovesParallaxByCoefficient(t *testing.T) {
	s := build(t, flatLevel())
	s.Panning.State = components.WaitingAtPlayer
	placePlayer(s, 400, 100)

	before := map[*components.CameraData]float64{}
	for _, e := range s.Cameras {
		c := components.Camera.Get(e)
		before[c] = c.Position.X
	}
	systems.UpdateAutoscroll(s)

	for c, x := range before {
		want := x + 400*c.Coefficient
		if math.Abs(c.Position.X-want) > 1e-9 {
			t.Errorf("%v camera x = %v, want %v", c.Kind, c.Position.X, want)
		}
	}
}

func TestAutoscrollNeverPassesPlayer(t *testing.T) {
	const w = 1600.0
	s := build(t, flatLevel())
	s.Panning.State = components.WaitingAtPlayer
	for px := -300.0; px < 2*w; px += 37 {
		for cx := -200.0; cx < 1.2*w; cx += 53 {
			placePlayer(s, px, 100)
			playerCam(s).Position.X = cx

			systems.UpdateAutoscroll(s)
			got := playerCam(s).Position.X
			if got == cx {
				continue
			}
			wrapped := math.Mod(math.Mod(px, w)+w, w)
			if wrapped < got-1e-9 {
				t.Fatalf("player %v camera %v: camera scrolled to %v past wrapped player %v", px, cx, got, wrapped)
			}
		}
	}
}

func TestCameraFollowClampsToFloor(t *testing.T) {
	s := build(t, flatLevel())
	settle(s)

	low := cfg.Camera.VisibleHeight / 2
	if y := playerCam(s).Position.Y; y != low {
		t.Errorf("player camera y = %v, want clamp %v", y, low)
	}
	for _, e := range s.Cameras {
		c := components.Camera.Get(e)
		if c.Kind.Parallax() && c.Position.Y != low*c.Coefficient {
			t.Errorf("%v camera y = %v, want %v", c.Kind, c.Position.Y, low*c.Coefficient)
		}
	}
}

func TestCameraFollowRisesWithPlayer(t *testing.T) {
	s := build(t, flatLevel())
	s.Panning.State = components.WaitingAtPlayer
	cam := playerCam(s)
	cam.Position.Y = 128
	for _, e := range s.Cameras {
		c := components.Camera.Get(e)
		c.Position.Y = 128 * c.Coefficient
	}
	placePlayer(s, 100, 428)

	systems.UpdateCameraFollow(s)

	delta := 300 / cfg.Camera.SettledDivisor
	if math.Abs(cam.Position.Y-(128+delta)) > 1e-9 {
		t.Fatalf("player camera y = %v, want %v", cam.Position.Y, 128+delta)
	}
	for _, e := range s.Cameras {
		c := components.Camera.Get(e)
		if !c.Kind.Parallax() {
			continue
		}
		want := 128*c.Coefficient + delta*c.Coefficient
		if math.Abs(c.Position.Y-want) > 1e-9 {
			t.Errorf("%v camera y = %v, want %v", c.Kind, c.Position.Y, want)
		}
	}
}

func TestCameraFollowSkipsWhileWaitingAtGoal(t *testing.T) {
	s := build(t, flatLevel())
	s.Panning.State = components.WaitingAtGoal
	playerCam(s).Position.Y = 300

	systems.UpdateCameraFollow(s)
	if y := playerCam(s).Position.Y; y != 300 {
		t.Errorf("camera moved while waiting at goal: y = %v", y)
	}
}

func TestCameraYNeverBelowFloorAfterSettling(t *testing.T) {
	s := build(t, flatLevel())
	settle(s)
	for i := 0; i < 120; i++ {
		press(s, cfg.ActionMoveRight, cfg.ActionJump)
		systems.Frame(s, dt)
		press(s, cfg.ActionMoveRight)
		systems.Frame(s, dt)

		low := cfg.Camera.VisibleHeight / 2
		if y := playerCam(s).Position.Y; y < low {
			t.Fatalf("frame %d: player camera y %v below %v", i, y, low)
		}
		for _, e := range s.Cameras {
			c := components.Camera.Get(e)
			if c.Kind.Parallax() && c.Position.Y < low*c.Coefficient-1e-9 {
				t.Fatalf("frame %d: %v camera y %v below %v", i, c.Kind, c.Position.Y, low*c.Coefficient)
			}
		}
	}
}

func TestCameraLoop(t *testing.T) {
	s := build(t, flatLevel())
	w := s.Level.Width

	var parallax []*components.CameraData
	for _, e := range s.Cameras {
		if c := components.Camera.Get(e); c.Kind.Parallax() {
			parallax = append(parallax, c)
		}
	}
	starts := []float64{1.5*w + 1, -0.5*w - 1, 0.75 * w, 1.5*w + 40}
	wants := []float64{-0.5*w + 1, 1.5*w - 1, 0.75 * w, -0.5*w + 40}
	for i, c := range parallax[:len(starts)] {
		c.Position.X = starts[i]
	}
	playerCam(s).Position.X = 3 * w

	systems.UpdateCameraLoop(s)

	for i, c := range parallax[:len(starts)] {
		if math.Abs(c.Position.X-wants[i]) > 1e-9 {
			t.Errorf("camera %d x = %v, want %v", i, c.Position.X, wants[i])
		}
	}
	if x := playerCam(s).Position.X; x != 3*w {
		t.Errorf("player camera was loop-teleported to %v", x)
	}
}

func TestPlayerLoopCarriesCamera(t *testing.T) {
	s := build(t, flatLevel())
	w := s.Level.Width
	placePlayer(s, w+3, 100)
	playerCam(s).Position.X = w - 10

	systems.UpdatePlayerLoop(s)
	x, _ := playerCenter(s)
	if math.Abs(x-3) > 1e-9 {
		t.Errorf("player x = %v, want 3", x)
	}
	if cx := playerCam(s).Position.X; math.Abs(cx+10) > 1e-9 {
		t.Errorf("camera x = %v, want -10", cx)
	}

	placePlayer(s, -2, 100)
	systems.UpdatePlayerLoop(s)
	if x, _ := playerCenter(s); math.Abs(x-(w-2)) > 1e-9 {
		t.Errorf("player x = %v, want %v", x, w-2)
	}
}
