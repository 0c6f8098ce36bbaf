package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraKind says which layer a camera renders and how the rig moves it.
type CameraKind int

const (
	CameraPlayer CameraKind = iota
	CameraForeground
	CameraMidground
	CameraBackground
	CameraHUD
)

// Parallax reports whether the rig moves the camera by its coefficient and
// wraps it across the level seam.
func (k CameraKind) Parallax() bool {
	return k == CameraForeground || k == CameraMidground || k == CameraBackground
}

type CameraData struct {
	Kind        CameraKind
	Coefficient float64
	Position    math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
