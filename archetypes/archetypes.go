package archetypes

import (
	"github.com/automoto/loopjump/components"
	"github.com/automoto/loopjump/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Inventory,
		components.Status,
		components.Checkpoint,
		components.Physics,
		components.Object,
		components.Animation,
		components.Input,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Barrier = newArchetype(
		tags.Barrier,
		components.Object,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	Interactable = newArchetype(
		tags.Interactable,
		components.Interactable,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
