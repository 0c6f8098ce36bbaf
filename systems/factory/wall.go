package factory

import (
	"github.com/automoto/loopjump/archetypes"
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, space *resolv.Space, r leveldata.Rect) *donburi.Entry {
	wall := archetypes.Solid.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvTile)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	space.Add(obj)

	return wall
}

// CreateBarrier builds the backwards barrier. It stays out of the space
// until the camera settles on the player.
func CreateBarrier(w donburi.World, levelHeight float64) *donburi.Entry {
	barrier := archetypes.Barrier.Spawn(w)

	obj := resolv.NewObject(0, 0, cfg.Barrier.Width, levelHeight+spaceMargin*float64(cfg.Physics.CellSize), tags.ResolvSolid, tags.ResolvBarrier)
	obj.Data = barrier

	components.Object.SetValue(barrier, components.ObjectData{Object: obj})

	return barrier
}
