package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/fonts"
	"github.com/automoto/loopjump/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

var iconColors = map[systems.HUDIconKind]color.RGBA{
	systems.IconWallJump:   cfg.Purple,
	systems.IconDoubleJump: cfg.LightBlue,
	systems.IconJumpToken:  cfg.Magenta,
	systems.IconKey:        cfg.Yellow,
}

// DrawHUD renders the inventory icons in the top-left corner.
func (r *Renderer) DrawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	e := r.s.Player
	if e == nil || !e.Valid() {
		return
	}
	inventory := components.Inventory.Get(e)
	icons := systems.HUDIcons(inventory)

	step := cfg.HUD.IconSize + cfg.HUD.IconGap
	for i, icon := range icons {
		img := iconImage(int(icon.Kind), iconColors[icon.Kind])
		hudDrawOp.GeoM.Reset()
		hudDrawOp.ColorScale.Reset()
		hudDrawOp.GeoM.Translate(cfg.HUD.Margin+float64(i)*step, cfg.HUD.Margin)
		if icon.Spent {
			hudDrawOp.ColorScale.ScaleAlpha(0.35)
		}
		screen.DrawImage(img, hudDrawOp)
	}

	if r.s.Level != nil {
		label := fmt.Sprintf("%d. %s", r.s.Level.Index+1, r.s.Level.Name)
		face := fonts.Small.Get()
		bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
		x := screen.Bounds().Dx() - bounds.Dx() - int(cfg.HUD.Margin)
		text.Draw(screen, label, face, x, int(cfg.HUD.Margin)+bounds.Dy(), cfg.HUD.TextColor)
	}
}

// DrawSigns shows the text of any sign the player is standing at, faded in
// by its reveal tween.
func (r *Renderer) DrawSigns(_ *ecs.ECS, screen *ebiten.Image) {
	components.Interactable.Each(r.s.World, func(e *donburi.Entry) {
		d := components.Interactable.Get(e)
		if d.Kind != components.KindSign || d.Reveal <= 0 || d.Text == "" {
			return
		}
		face := fonts.Regular.Get()
		bounds := text.BoundString(face, d.Text) //nolint:staticcheck // TODO: migrate to text/v2

		padding := 6
		boxW := bounds.Dx() + padding*2
		boxH := bounds.Dy() + padding*2
		boxX := (screen.Bounds().Dx() - boxW) / 2
		boxY := int(cfg.HUD.Margin*2 + cfg.HUD.IconSize)

		a := uint8(180 * d.Reveal)
		vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), color.RGBA{A: a}, false)

		c := cfg.HUD.TextColor
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * d.Reveal)}
		text.Draw(screen, d.Text, face, boxX+padding, boxY+padding+bounds.Dy(), clr)
	})
}

// DrawDim covers the screen with the transition overlay. Alpha above 1 is
// a hold period and draws fully opaque.
func (r *Renderer) DrawDim(_ *ecs.ECS, screen *ebiten.Image) {
	alpha := r.s.Dim.Alpha
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	c := cfg.Transition.Color
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * alpha)}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), clr, false)
}
