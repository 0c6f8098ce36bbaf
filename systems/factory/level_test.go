package factory

import (
	"testing"

	"github.com/automoto/loopjump/assets"
	"github.com/automoto/loopjump/components"
	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/systems"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestBuildSessionFromEmbeddedLevels(t *testing.T) {
	levels, err := assets.NewLevelLoader().Levels()
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}

	for i, lvl := range levels {
		t.Run(lvl.Name, func(t *testing.T) {
			progress := &systems.Progress{}
			s, err := BuildSession(levels, i, progress)
			if err != nil {
				t.Fatalf("BuildSession: %v", err)
			}
			if progress.TargetLevel != i || progress.LevelCount != len(levels) {
				t.Errorf("progress = %+v", *progress)
			}
			if s.Level.Width != lvl.Width || s.Level.Index != i {
				t.Errorf("level data = %+v", *s.Level)
			}
			if s.Player == nil || s.Goal == nil || s.Barrier == nil || s.PlayerCamera == nil {
				t.Fatal("session is missing a singleton")
			}
			if s.Panning.State != components.PanningToGoal {
				t.Errorf("panning starts in %v", s.Panning.State)
			}

			if components.Object.Get(s.Barrier).Object.Space != nil {
				t.Error("barrier is in the space before the camera settles")
			}
			if n := len(s.Space.Objects()); n == 0 {
				t.Error("space is empty")
			}

			for i := 0; i < 300; i++ {
				components.Input.Get(s.Player).Advance()
				if req := systems.Frame(s, 1.0/60); req != systems.RequestNone {
					t.Fatalf("frame %d: request %v with no input", i, req)
				}
			}
			obj := components.Object.Get(s.Player).Object
			if obj.Y < 0 || obj.Y > lvl.Height {
				t.Errorf("player left the level, y = %v", obj.Y)
			}
		})
	}
}

func TestCreateCamerasDuplicatesParallaxLayers(t *testing.T) {
	s, err := BuildSession([]*leveldata.Level{testLevel()}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if kind := components.Camera.Get(s.PlayerCamera).Kind; kind != components.CameraPlayer {
		t.Fatalf("player camera kind = %v", kind)
	}

	perKind := map[components.CameraKind][]float64{}
	for _, e := range s.Cameras {
		c := components.Camera.Get(e)
		perKind[c.Kind] = append(perKind[c.Kind], c.Position.X)
	}
	for _, kind := range []components.CameraKind{components.CameraForeground, components.CameraMidground, components.CameraBackground} {
		xs := perKind[kind]
		if len(xs) != 2 || xs[0] != 0 || xs[1] != s.Level.Width {
			t.Errorf("camera kind %v at %v, want [0 %v]", kind, xs, s.Level.Width)
		}
	}
	if len(perKind[components.CameraHUD]) != 1 {
		t.Errorf("got %d HUD cameras, want 1", len(perKind[components.CameraHUD]))
	}
}

func TestCreatePlayerSensors(t *testing.T) {
	s, err := BuildSession([]*leveldata.Level{testLevel()}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	player := components.Player.Get(s.Player)
	obj := components.Object.Get(s.Player).Object
	if !obj.HasTags(tags.ResolvPlayer) {
		t.Error("player collider missing its tag")
	}
	sensors := []*resolv.Object{player.GroundSensor, player.WallSensors[0], player.WallSensors[1]}
	for i, sensor := range sensors {
		if !sensor.HasTags(tags.ResolvSensor) {
			t.Errorf("sensor %d not tagged", i)
		}
	}
	cp := components.Checkpoint.Get(s.Player)
	if cp.Position.X != obj.X+obj.W/2 || cp.Position.Y != obj.Y+obj.H/2 {
		t.Errorf("checkpoint %v is not the spawn centre", cp.Position)
	}
}

func TestBuildSessionClampsIndex(t *testing.T) {
	levels := []*leveldata.Level{testLevel(), testLevel()}
	progress := &systems.Progress{}
	if _, err := BuildSession(levels, 5, progress); err != nil {
		t.Fatal(err)
	}
	if progress.TargetLevel != 0 {
		t.Errorf("TargetLevel = %d, want clamped to 0", progress.TargetLevel)
	}
	if _, err := BuildSession(nil, 0, nil); err == nil {
		t.Error("expected an error with no levels")
	}
}

func TestUnknownObjectGroupIsSkipped(t *testing.T) {
	level := testLevel()
	level.Objects = []leveldata.Object{{Class: "balloons", Bounds: leveldata.Rect{X: 10, Y: 10, W: 8, H: 8}}}
	s, err := BuildSession([]*leveldata.Level{level}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := donburi.NewQuery(filter.Contains(components.Interactable)).Count(s.World); n != 1 {
		t.Errorf("got %d interactables, want only the goal", n)
	}
}

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "test",
		Width:       800,
		Height:      256,
		TileSize:    16,
		Solids:      []leveldata.Rect{{X: 0, Y: 0, W: 800, H: 16}},
		PlayerSpawn: leveldata.Rect{X: 32, Y: 16, W: 16, H: 16},
		Goal:        leveldata.Rect{X: 700, Y: 16, W: 16, H: 16},
	}
}
