package components

import (
	cfg "github.com/automoto/loopjump/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Wall sides, used to index the per-side inventory arrays.
const (
	WallLeft  = 0
	WallRight = 1
)

type PlayerData struct {
	State  cfg.PlayerState
	Facing float64 // cfg.DirectionLeft or cfg.DirectionRight

	// Sensor results for this frame, filled by the contact system.
	Grounded    bool
	GroundHit   bool
	GroundToi   float64
	SpringForce float64

	GroundSensor *resolv.Object
	WallSensors  [2]*resolv.Object
}

// InventoryData holds collected abilities and resources.
type InventoryData struct {
	NumKeys          uint
	MaxExtraJumps    uint
	ExtraJumps       uint
	AirJumps         uint
	WallJumpCooldown [2]Timer
	OnWall           [2]bool
	HasWallJump      bool
}

// StatusData holds the jump cooldown and the one-shot flags read by the
// level transition.
type StatusData struct {
	JumpCooldown  Timer
	LevelFinished bool
	Dead          bool
	Exiting       bool
}

var Player = donburi.NewComponentType[PlayerData]()
var Inventory = donburi.NewComponentType[InventoryData]()
var Status = donburi.NewComponentType[StatusData]()

// NewInventory returns an empty inventory with wall-jump cooldowns ready.
func NewInventory() InventoryData {
	return InventoryData{
		WallJumpCooldown: [2]Timer{
			FinishedTimer(cfg.Player.WallJumpCooldown),
			FinishedTimer(cfg.Player.WallJumpCooldown),
		},
	}
}

func NewStatus() StatusData {
	return StatusData{JumpCooldown: FinishedTimer(cfg.Player.JumpCooldown)}
}
