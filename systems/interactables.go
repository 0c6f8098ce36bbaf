package systems

import (
	"log"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateInteractables ticks token respawns, resolves what the player is
// touching and handles the restart, exit and skip actions.
func UpdateInteractables(s *Session, dt float64) {
	e, ok := s.player()
	if !ok {
		return
	}
	status := components.Status.Get(e)
	input := components.Input.Get(e)

	components.Interactable.Each(s.World, func(ie *donburi.Entry) {
		d := components.Interactable.Get(ie)
		d.Overlapping = false
		if d.Kind == components.KindJumpToken && !d.Active && d.Respawn.Tick(dt) {
			d.Active = true
			d.Visible = true
		}
	})

	if status.Dead || status.LevelFinished || status.Exiting {
		return
	}

	interact := input.Action(cfg.ActionInteract).JustPressed
	for _, target := range touching(e) {
		if !target.Valid() {
			continue
		}
		d := components.Interactable.Get(target)
		d.Overlapping = true
		applyInteraction(s, e, target, d, interact)
		if status.Dead || status.LevelFinished {
			break
		}
	}

	switch {
	case input.Action(cfg.ActionRestart).JustPressed:
		status.Dead = true
	case input.Action(cfg.ActionExit).JustPressed:
		status.Exiting = true
	case cfg.Debug.AllowSkip && input.Action(cfg.ActionSkipLevel).JustPressed:
		status.LevelFinished = true
	}
}

// touching collects the interactables under the player's collider plus the
// doors its wall sensors press against.
func touching(e *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(e).Object
	player := components.Player.Get(e)

	hits := Intersections(obj, tags.ResolvPickup, tags.ResolvGoal, tags.ResolvLever, tags.ResolvSign, tags.ResolvHazard)
	for _, sensor := range player.WallSensors {
		hits = append(hits, Intersections(sensor, tags.ResolvDoor)...)
	}

	seen := map[*donburi.Entry]bool{}
	var out []*donburi.Entry
	for _, o := range hits {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || seen[entry] || !entry.HasComponent(components.Interactable) {
			continue
		}
		seen[entry] = true
		out = append(out, entry)
	}
	return out
}

func applyInteraction(s *Session, player, target *donburi.Entry, d *components.InteractableData, interact bool) {
	inventory := components.Inventory.Get(player)
	status := components.Status.Get(player)

	switch d.Kind {
	case components.KindKey:
		inventory.NumKeys++
		SetCheckpoint(s)
		removeInteractable(s, target)
	case components.KindDoor:
		if !interact || inventory.NumKeys == 0 {
			return
		}
		inventory.NumKeys--
		removeInteractable(s, target)
		SetCheckpoint(s)
	case components.KindLever:
		if !interact {
			return
		}
		d.Active = !d.Active
		togglePlatforms(s, d.ID)
		SetCheckpoint(s)
	case components.KindDoubleJump:
		inventory.MaxExtraJumps++
		inventory.ExtraJumps++
		SetCheckpoint(s)
		removeInteractable(s, target)
	case components.KindWallJump:
		inventory.HasWallJump = true
		SetCheckpoint(s)
		removeInteractable(s, target)
	case components.KindJumpToken:
		if !d.Active {
			return
		}
		inventory.AirJumps++
		d.Active = false
		d.Visible = false
		d.Respawn = components.NewTimer(cfg.Pickups.JumpTokenRespawn, false)
		SetCheckpoint(s)
	case components.KindGoal:
		status.LevelFinished = true
	case components.KindHazard:
		status.Dead = true
	case components.KindSign:
		// Reveal is driven by UpdateHover.
	}

	if cfg.Debug.Verbose && d.Kind != components.KindSign && d.Kind != components.KindHazard {
		log.Printf("interact: %s", d.Kind)
	}
}

// togglePlatforms flips every platform linked to a lever id in or out of
// the space.
func togglePlatforms(s *Session, id int) {
	components.Interactable.Each(s.World, func(e *donburi.Entry) {
		d := components.Interactable.Get(e)
		if d.Kind != components.KindPlatform || d.ID != id {
			return
		}
		d.Active = !d.Active
		d.Visible = d.Active
		setSolid(s.Space, components.Object.Get(e).Object, d.Active)
	})
}

func setSolid(space *resolv.Space, obj *resolv.Object, solid bool) {
	if space == nil {
		return
	}
	if solid && obj.Space == nil {
		space.Add(obj)
	} else if !solid && obj.Space != nil {
		space.Remove(obj)
	}
}

func removeInteractable(s *Session, e *donburi.Entry) {
	if obj := components.Object.Get(e).Object; obj.Space != nil {
		obj.Space.Remove(obj)
	}
	s.World.Remove(e.Entity())
}
