package systems

import (
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
)

type HUDIconKind int

const (
	IconWallJump HUDIconKind = iota
	IconDoubleJump
	IconJumpToken
	IconKey
)

// HUDIcon is one inventory slot drawn in the top-left corner. Spent double
// jumps are drawn dimmed.
type HUDIcon struct {
	Kind  HUDIconKind
	Spent bool
}

// HUDIcons lists the inventory as icons, capped at config.HUD.MaxIcons.
func HUDIcons(inventory *components.InventoryData) []HUDIcon {
	limit := cfg.HUD.MaxIcons
	icons := make([]HUDIcon, 0, limit)
	add := func(icon HUDIcon) {
		if len(icons) < limit {
			icons = append(icons, icon)
		}
	}

	if inventory.HasWallJump {
		add(HUDIcon{Kind: IconWallJump})
	}
	for i := uint(0); i < inventory.MaxExtraJumps; i++ {
		add(HUDIcon{Kind: IconDoubleJump, Spent: i >= inventory.ExtraJumps})
	}
	for i := uint(0); i < inventory.AirJumps; i++ {
		add(HUDIcon{Kind: IconJumpToken})
	}
	for i := uint(0); i < inventory.NumKeys; i++ {
		add(HUDIcon{Kind: IconKey})
	}
	return icons
}
