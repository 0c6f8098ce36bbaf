package factory

import (
	"fmt"

	"github.com/automoto/loopjump/archetypes"
	"github.com/automoto/loopjump/components"
	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/systems"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, space *resolv.Space, index int, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{
		Index:  index,
		Name:   level.Name,
		Width:  level.Width,
		Height: level.Height,
	})

	for _, r := range level.Solids {
		CreateWall(w, space, r)
	}
	for _, r := range level.Hazards {
		CreateHazard(w, space, r)
	}
	for _, o := range level.Objects {
		CreateInteractable(w, space, o)
	}

	return entry
}

// BuildSession loads level index into a fresh world and returns the
// session that owns it. The index is clamped to the available levels.
func BuildSession(levels []*leveldata.Level, index int, progress *systems.Progress) (*systems.Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels to build")
	}
	if index < 0 || index >= len(levels) {
		index = 0
	}
	level := levels[index]

	if progress == nil {
		progress = &systems.Progress{}
	}
	progress.TargetLevel = index
	progress.LevelCount = len(levels)

	w := donburi.NewWorld()
	space := CreateSpace(level.Width, level.Height)
	s := systems.NewSession(w, space, progress)

	s.Level = components.Level.Get(CreateLevel(w, space, index, level))

	spawnX, spawnY := level.PlayerSpawn.Center()
	s.Player = CreatePlayer(w, space, spawnX, spawnY)
	s.Goal = CreateGoal(w, space, level.Goal)
	s.PlayerCamera, s.Cameras = CreateCameras(w, level.Width)
	s.Barrier = CreateBarrier(w, level.Height)

	systems.CheckSingletons(w)
	return s, nil
}
