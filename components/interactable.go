package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InteractableKind is the closed set of things the player can touch.
type InteractableKind int

const (
	KindKey InteractableKind = iota
	KindDoor
	KindLever
	KindPlatform
	KindDoubleJump
	KindWallJump
	KindJumpToken
	KindGoal
	KindSign
	KindHazard
)

var kindNames = [...]string{
	KindKey:        "key",
	KindDoor:       "door",
	KindLever:      "lever",
	KindPlatform:   "platform",
	KindDoubleJump: "doublejump",
	KindWallJump:   "walljump",
	KindJumpToken:  "jumptoken",
	KindGoal:       "goal",
	KindSign:       "sign",
	KindHazard:     "hazard",
}

func (k InteractableKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Pickup reports whether touching the interactable collects it.
func (k InteractableKind) Pickup() bool {
	switch k {
	case KindKey, KindDoubleJump, KindWallJump, KindJumpToken:
		return true
	}
	return false
}

type InteractableData struct {
	Kind        InteractableKind
	ID          int    // lever/platform link
	Text        string // sign text
	Active      bool   // tokens: collectable; doors: locked; platforms: solid; levers: pulled
	Visible     bool
	Overlapping bool
	Respawn     Timer
	Base        math.Vec2 // resting position, hover offsets are applied on top
	Reveal      float64   // sign text opacity, 0..1
}

var Interactable = donburi.NewComponentType[InteractableData]()

// Tween drives a hover bob or fade on an interactable.
var Tween = donburi.NewComponentType[gween.Sequence]()
