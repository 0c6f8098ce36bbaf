package systems_test

import (
	"testing"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/systems"
	"github.com/automoto/loopjump/systems/factory"
)

const dt = 1.0 / 60

const floorTop = 16.0

// flatLevel is a 1600-wide level with a single floor and any extra solids.
func flatLevel(extra ...leveldata.Rect) *leveldata.Level {
	return &leveldata.Level{
		Name:        "flat",
		Width:       1600,
		Height:      384,
		TileSize:    16,
		Solids:      append([]leveldata.Rect{{X: 0, Y: 0, W: 1600, H: floorTop}}, extra...),
		PlayerSpawn: leveldata.Rect{X: 48, Y: floorTop, W: 16, H: 16},
		Goal:        leveldata.Rect{X: 1500, Y: floorTop, W: 16, H: 16},
	}
}

func build(t *testing.T, levels ...*leveldata.Level) *systems.Session {
	t.Helper()
	s, err := factory.BuildSession(levels, 0, nil)
	if err != nil {
		t.Fatalf("BuildSession: %v", err)
	}
	return s
}

func placePlayer(s *systems.Session, x, y float64) {
	obj := components.Object.Get(s.Player).Object
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}

func playerCenter(s *systems.Session) (float64, float64) {
	obj := components.Object.Get(s.Player).Object
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

// press starts a new input frame holding only the given actions.
func press(s *systems.Session, actions ...cfg.ActionID) {
	in := components.Input.Get(s.Player)
	in.Advance()
	for _, a := range actions {
		in.Current[a] = true
	}
}

// run advances the session by n frames with no input held.
func run(s *systems.Session, n int) {
	for i := 0; i < n; i++ {
		press(s)
		systems.Frame(s, dt)
	}
}

func settle(s *systems.Session) {
	s.Panning.State = components.WaitingAtPlayer
	run(s, 60)
}

func playerCam(s *systems.Session) *components.CameraData {
	return components.Camera.Get(s.PlayerCamera)
}
