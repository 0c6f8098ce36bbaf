package factory

import (
	"github.com/automoto/loopjump/archetypes"
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centred on (x, y) with its ground and
// wall sensors, and records the spawn as the first checkpoint.
func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-width/2, y-height/2, width, height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	ground := resolv.NewObject(0, 0, 1, 1, tags.ResolvSensor)
	left := resolv.NewObject(0, 0, 1, 1, tags.ResolvSensor)
	right := resolv.NewObject(0, 0, 1, 1, tags.ResolvSensor)
	for _, sensor := range []*resolv.Object{ground, left, right} {
		sensor.Data = player
	}

	components.Player.SetValue(player, components.PlayerData{
		State:        cfg.StateIdle,
		Facing:       cfg.DirectionRight,
		GroundSensor: ground,
		WallSensors:  [2]*resolv.Object{left, right},
	})
	components.Inventory.SetValue(player, components.NewInventory())
	components.Status.SetValue(player, components.NewStatus())
	components.Physics.SetValue(player, components.PhysicsData{
		Mass:    cfg.Player.Mass,
		Gravity: cfg.Physics.Gravity,
	})
	components.Checkpoint.SetValue(player, components.CheckpointData{
		Position: math.Vec2{X: x, Y: y},
	})

	anim := components.Animation.Get(player)
	anim.SetAnimation(cfg.StateIdle)

	space.Add(obj, ground, left, right)

	return player
}
