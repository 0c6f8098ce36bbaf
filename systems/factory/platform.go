package factory

import (
	"log"

	"github.com/automoto/loopjump/archetypes"
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/systems"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var kindsByGroup = map[string]components.InteractableKind{
	"keys":        components.KindKey,
	"doors":       components.KindDoor,
	"levers":      components.KindLever,
	"platforms":   components.KindPlatform,
	"doublejumps": components.KindDoubleJump,
	"walljumps":   components.KindWallJump,
	"jumptokens":  components.KindJumpToken,
	"signs":       components.KindSign,
}

// CreateInteractable spawns one level object. Pickups bob on a tween and
// signs get a fade-in tween.
func CreateInteractable(w donburi.World, space *resolv.Space, o leveldata.Object) *donburi.Entry {
	kind, ok := kindsByGroup[o.Class]
	if !ok {
		log.Printf("Warning: no interactable for object group %q", o.Class)
		return nil
	}

	bounds := o.Bounds
	if kind.Pickup() {
		// Pickups are drawn and collected at a fixed size centred on the marker.
		cx, cy := bounds.Center()
		size := cfg.Pickups.Size
		bounds = leveldata.Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
	}

	var extra []donburi.IComponentType
	if kind.Pickup() || kind == components.KindSign {
		extra = append(extra, components.Tween)
	}
	entry := archetypes.Interactable.Spawn(w, extra...)
	obj := resolv.NewObject(bounds.X, bounds.Y, bounds.W, bounds.H, resolvTags(kind)...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	data := components.InteractableData{
		Kind:    kind,
		ID:      o.ID,
		Text:    o.Text,
		Active:  true,
		Visible: true,
		Base:    math.Vec2{X: bounds.X, Y: bounds.Y},
	}

	switch {
	case kind.Pickup():
		components.Tween.Set(entry, systems.NewHoverTween(cfg.Pickups.HoverHeight, cfg.Pickups.HoverPeriod))
	case kind == components.KindSign:
		components.Tween.Set(entry, systems.NewFadeTween(cfg.Pickups.SignFadeIn))
	case kind == components.KindLever:
		data.Active = false
	case kind == components.KindPlatform:
		data.Active = o.Active
		data.Visible = o.Active
	}
	components.Interactable.SetValue(entry, data)

	if kind != components.KindPlatform || data.Active {
		space.Add(obj)
	}
	return entry
}

// CreateHazard spawns a kill zone over water or spikes.
func CreateHazard(w donburi.World, space *resolv.Space, r leveldata.Rect) *donburi.Entry {
	entry := archetypes.Interactable.Spawn(w)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvHazard)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Interactable.SetValue(entry, components.InteractableData{
		Kind:    components.KindHazard,
		Active:  true,
		Visible: true,
		Base:    math.Vec2{X: r.X, Y: r.Y},
	})
	space.Add(obj)
	return entry
}

// CreateGoal creates the level's finish flag.
func CreateGoal(w donburi.World, space *resolv.Space, r leveldata.Rect) *donburi.Entry {
	goal := archetypes.Interactable.Spawn(w, tags.Goal)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvGoal)
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	components.Interactable.SetValue(goal, components.InteractableData{
		Kind:    components.KindGoal,
		Active:  true,
		Visible: true,
		Base:    math.Vec2{X: r.X, Y: r.Y},
	})

	space.Add(obj)
	return goal
}

func resolvTags(kind components.InteractableKind) []string {
	switch kind {
	case components.KindDoor:
		return []string{tags.ResolvSolid, tags.ResolvDoor}
	case components.KindPlatform:
		return []string{tags.ResolvSolid}
	case components.KindLever:
		return []string{tags.ResolvLever}
	case components.KindSign:
		return []string{tags.ResolvSign}
	}
	return []string{tags.ResolvPickup}
}
