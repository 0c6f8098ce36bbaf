package factory

import (
	"github.com/automoto/loopjump/archetypes"
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, kind components.CameraKind, coefficient, x float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Kind:        kind,
		Coefficient: coefficient,
		Position:    math.Vec2{X: x},
	})
	return camera
}

// CreateCameras builds the rig: the player camera, two instances of each
// parallax layer one level width apart, and the HUD camera. Everything
// starts at the origin and the panning director moves it from there.
func CreateCameras(w donburi.World, levelWidth float64) (*donburi.Entry, []*donburi.Entry) {
	player := CreateCamera(w, components.CameraPlayer, 1, 0)

	layers := []struct {
		kind        components.CameraKind
		coefficient float64
	}{
		{components.CameraForeground, cfg.Camera.ForegroundCoefficient},
		{components.CameraMidground, cfg.Camera.MidgroundCoefficient},
		{components.CameraBackground, cfg.Camera.BackgroundCoefficient},
	}

	var others []*donburi.Entry
	for _, l := range layers {
		others = append(others,
			CreateCamera(w, l.kind, l.coefficient, 0),
			CreateCamera(w, l.kind, l.coefficient, levelWidth),
		)
	}
	others = append(others, CreateCamera(w, components.CameraHUD, 0, 0))

	return player, others
}
