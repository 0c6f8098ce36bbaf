package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Camera       = donburi.NewTag().SetName("Camera")
	Barrier      = donburi.NewTag().SetName("Barrier")
	Goal         = donburi.NewTag().SetName("Goal")
	Solid        = donburi.NewTag().SetName("Solid")
	Interactable = donburi.NewTag().SetName("Interactable")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvSensor  = "sensor"
	ResolvPlayer  = "player"
	ResolvBarrier = "barrier"
	ResolvHazard  = "hazard"
	ResolvPickup  = "pickup"
	ResolvGoal    = "goal"
	ResolvDoor    = "door"
	ResolvLever   = "lever"
	ResolvSign    = "sign"
	ResolvTile    = "tile"
)
