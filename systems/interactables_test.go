package systems_test

import (
	"math"
	"testing"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/systems"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func levelWith(objects ...leveldata.Object) *leveldata.Level {
	level := flatLevel()
	level.Objects = objects
	return level
}

func findKind(s *systems.Session, kind components.InteractableKind) *donburi.Entry {
	var found *donburi.Entry
	components.Interactable.Each(s.World, func(e *donburi.Entry) {
		if found == nil && components.Interactable.Get(e).Kind == kind {
			found = e
		}
	})
	return found
}

// touch places the player on (x, y) and runs one interaction pass.
func touch(s *systems.Session, x, y float64, actions ...cfg.ActionID) {
	placePlayer(s, x, y)
	systems.UpdateContacts(s, dt)
	press(s, actions...)
	systems.UpdateInteractables(s, dt)
}

var marker = leveldata.Rect{X: 300, Y: 20, W: 16, H: 16} // centre (308, 28)

func TestPickupsApplyAndDisappear(t *testing.T) {
	tests := []struct {
		class string
		check func(*components.InventoryData) bool
	}{
		{"keys", func(inv *components.InventoryData) bool { return inv.NumKeys == 1 }},
		{"doublejumps", func(inv *components.InventoryData) bool { return inv.MaxExtraJumps == 1 && inv.ExtraJumps == 1 }},
		{"walljumps", func(inv *components.InventoryData) bool { return inv.HasWallJump }},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			s := build(t, levelWith(leveldata.Object{Class: tt.class, Bounds: marker}))
			pickup := findAny(s)
			obj := components.Object.Get(pickup).Object
			if obj.W != cfg.Pickups.Size {
				t.Errorf("pickup width = %v, want %v", obj.W, cfg.Pickups.Size)
			}

			touch(s, 308, 28)

			inventory := components.Inventory.Get(s.Player)
			if !tt.check(inventory) {
				t.Errorf("inventory after pickup = %+v", *inventory)
			}
			if pickup.Valid() {
				t.Error("pickup entity still alive")
			}
			if obj.Space != nil {
				t.Error("pickup collider still in the space")
			}
			cp := components.Checkpoint.Get(s.Player)
			if cp.Position.X != 308 || cp.Position.Y != 28 {
				t.Errorf("checkpoint = %v, want the pickup spot", cp.Position)
			}
		})
	}
}

// findAny returns the first interactable that is not the goal.
func findAny(s *systems.Session) *donburi.Entry {
	var found *donburi.Entry
	components.Interactable.Each(s.World, func(e *donburi.Entry) {
		if found == nil && components.Interactable.Get(e).Kind != components.KindGoal {
			found = e
		}
	})
	return found
}

func TestDoorNeedsKeyAndInteract(t *testing.T) {
	s := build(t, levelWith(leveldata.Object{
		Class:  "doors",
		Bounds: leveldata.Rect{X: 200, Y: floorTop, W: 16, H: 64},
	}))
	door := findKind(s, components.KindDoor)
	x := 200 - cfg.Player.CollisionWidth/2 - 0.5
	inventory := components.Inventory.Get(s.Player)

	touch(s, x, 30, cfg.ActionInteract)
	if !door.Valid() {
		t.Fatal("door opened without a key")
	}

	inventory.NumKeys = 1
	touch(s, x, 30)
	if !door.Valid() {
		t.Fatal("door opened without interacting")
	}

	touch(s, x, 30, cfg.ActionInteract)
	if door.Valid() {
		t.Fatal("door did not open with a key")
	}
	if inventory.NumKeys != 0 {
		t.Errorf("NumKeys = %d, want the key spent", inventory.NumKeys)
	}
}

func TestLeverTogglesLinkedPlatforms(t *testing.T) {
	s := build(t, levelWith(
		leveldata.Object{Class: "levers", Bounds: marker, ID: 3},
		leveldata.Object{Class: "platforms", Bounds: leveldata.Rect{X: 600, Y: 100, W: 64, H: 16}, ID: 3},
		leveldata.Object{Class: "platforms", Bounds: leveldata.Rect{X: 800, Y: 100, W: 64, H: 16}, ID: 4, Active: true},
	))

	var linked, other *components.InteractableData
	var linkedObj, otherObj *resolv.Object
	components.Interactable.Each(s.World, func(e *donburi.Entry) {
		d := components.Interactable.Get(e)
		if d.Kind != components.KindPlatform {
			return
		}
		if d.ID == 3 {
			linked, linkedObj = d, components.Object.Get(e).Object
		} else {
			other, otherObj = d, components.Object.Get(e).Object
		}
	})
	if linked.Active || linkedObj.Space != nil {
		t.Fatal("inactive platform starts solid")
	}
	if !other.Active || otherObj.Space == nil {
		t.Fatal("active platform starts without a collider")
	}

	touch(s, 308, 28, cfg.ActionInteract)
	if !linked.Active || !linked.Visible || linkedObj.Space == nil {
		t.Errorf("linked platform not switched on: %+v", *linked)
	}
	if !other.Active || otherObj.Space == nil {
		t.Error("lever switched an unlinked platform")
	}
	if lever := components.Interactable.Get(findKind(s, components.KindLever)); !lever.Active {
		t.Error("lever not pulled")
	}

	touch(s, 308, 28)
	touch(s, 308, 28, cfg.ActionInteract)
	if linked.Active || linkedObj.Space != nil {
		t.Error("second pull did not switch the platform back off")
	}
}

func TestJumpTokenRespawns(t *testing.T) {
	s := build(t, levelWith(leveldata.Object{Class: "jumptokens", Bounds: marker}))
	token := components.Interactable.Get(findKind(s, components.KindJumpToken))
	inventory := components.Inventory.Get(s.Player)

	touch(s, 308, 28)
	if inventory.AirJumps != 1 || token.Active || token.Visible {
		t.Fatalf("after pickup AirJumps=%d token=%+v", inventory.AirJumps, *token)
	}
	touch(s, 308, 28)
	if inventory.AirJumps != 1 {
		t.Fatalf("spent token collected again, AirJumps=%d", inventory.AirJumps)
	}

	placePlayer(s, 600, 28)
	frames := int(math.Ceil(cfg.Pickups.JumpTokenRespawn/dt)) + 2
	for i := 0; i < frames; i++ {
		press(s)
		systems.UpdateInteractables(s, dt)
	}
	if !token.Active || !token.Visible {
		t.Fatalf("token did not respawn after %d frames", frames)
	}

	touch(s, 308, 28)
	if inventory.AirJumps != 2 {
		t.Errorf("AirJumps = %d, want 2 after the respawned token", inventory.AirJumps)
	}
}

func TestHazardAndGoal(t *testing.T) {
	level := flatLevel()
	level.Hazards = []leveldata.Rect{{X: 300, Y: 0, W: 32, H: 20}}

	t.Run("hazard kills", func(t *testing.T) {
		s := build(t, level)
		touch(s, 316, 22)
		if !components.Status.Get(s.Player).Dead {
			t.Error("hazard did not kill the player")
		}
	})
	t.Run("goal finishes", func(t *testing.T) {
		s := build(t, level)
		touch(s, 1508, 24)
		if !components.Status.Get(s.Player).LevelFinished {
			t.Error("goal did not finish the level")
		}
	})
	t.Run("dead player collects nothing", func(t *testing.T) {
		s := build(t, levelWith(leveldata.Object{Class: "keys", Bounds: marker}))
		components.Status.Get(s.Player).Dead = true
		touch(s, 308, 28)
		if n := components.Inventory.Get(s.Player).NumKeys; n != 0 {
			t.Errorf("dead player picked up %d keys", n)
		}
	})
}

func TestLevelActions(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		skip   bool
		want   func(*components.StatusData) bool
	}{
		{"restart", cfg.ActionRestart, false, func(st *components.StatusData) bool { return st.Dead }},
		{"exit", cfg.ActionExit, false, func(st *components.StatusData) bool { return st.Exiting }},
		{"skip allowed", cfg.ActionSkipLevel, true, func(st *components.StatusData) bool { return st.LevelFinished }},
		{"skip disabled", cfg.ActionSkipLevel, false, func(st *components.StatusData) bool { return !st.LevelFinished }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := cfg.Debug.AllowSkip
			cfg.Debug.AllowSkip = tt.skip
			defer func() { cfg.Debug.AllowSkip = prev }()

			s := build(t, flatLevel())
			touch(s, 600, 28, tt.action)
			if status := components.Status.Get(s.Player); !tt.want(status) {
				t.Errorf("status = %+v", *status)
			}
		})
	}
}

func TestSignRevealsWhileOverlapping(t *testing.T) {
	s := build(t, levelWith(leveldata.Object{Class: "signs", Bounds: marker, Text: "hold jump"}))
	sign := components.Interactable.Get(findKind(s, components.KindSign))

	for i := 0; i < 5; i++ {
		touch(s, 308, 28)
		systems.UpdateHover(s, dt)
	}
	if !sign.Overlapping || sign.Reveal <= 0 || sign.Reveal > 1 {
		t.Fatalf("sign reveal = %v overlapping = %v", sign.Reveal, sign.Overlapping)
	}
	for i := 0; i < int(cfg.Pickups.SignFadeIn/dt)+5; i++ {
		touch(s, 308, 28)
		systems.UpdateHover(s, dt)
	}
	if sign.Reveal != 1 {
		t.Errorf("sign reveal = %v, want fully shown", sign.Reveal)
	}

	touch(s, 600, 28)
	systems.UpdateHover(s, dt)
	if sign.Overlapping || sign.Reveal != 0 {
		t.Errorf("sign still shown after walking away: %v", sign.Reveal)
	}
}

func TestPickupHoverStaysNearBase(t *testing.T) {
	s := build(t, levelWith(leveldata.Object{Class: "keys", Bounds: marker}))
	e := findKind(s, components.KindKey)
	d := components.Interactable.Get(e)
	obj := components.Object.Get(e).Object

	moved := false
	for i := 0; i < 180; i++ {
		systems.UpdateHover(s, dt)
		off := obj.Y - d.Base.Y
		if off < -1e-6 || off > cfg.Pickups.HoverHeight+1e-6 {
			t.Fatalf("frame %d: hover offset %v outside [0, %v]", i, off, cfg.Pickups.HoverHeight)
		}
		if off > 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("pickup never moved")
	}
}
