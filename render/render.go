// Package render draws a level session through its camera rig.
package render

import (
	"image/color"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/systems"
	"github.com/automoto/loopjump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerBackground ecs.LayerID = iota
	LayerWorld
	LayerHUD
)

var drawOp = &ebiten.DrawImageOptions{}

// Renderer draws one session. Parallax scenery is generated once per level.
type Renderer struct {
	s       *systems.Session
	scenery map[components.CameraKind][]sceneryRect
}

func NewRenderer(s *systems.Session) *Renderer {
	r := &Renderer{s: s}
	if s.Level != nil {
		r.scenery = generateScenery(s.Level.Index, s.Level.Width)
	}
	return r
}

// Register adds the renderer's draw passes to an ECS.
func (r *Renderer) Register(e *ecs.ECS) {
	e.AddRenderer(LayerBackground, r.DrawBackground)
	e.AddRenderer(LayerWorld, r.DrawWorld)
	e.AddRenderer(LayerHUD, r.DrawSigns)
	e.AddRenderer(LayerHUD, r.DrawHUD)
	e.AddRenderer(LayerHUD, r.DrawDim)
}

// view maps world units around one camera onto the screen. World Y grows
// upward, screen Y grows downward.
type view struct {
	cam    *components.CameraData
	scale  float64
	sw, sh float64
}

func newView(cam *components.CameraData, screen *ebiten.Image) view {
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{cam: cam, scale: sh / cfg.Camera.VisibleHeight, sw: sw, sh: sh}
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return (x-v.cam.Position.X)*v.scale + v.sw/2, v.sh/2 - (y-v.cam.Position.Y)*v.scale
}

// visible reports whether a world rect overlaps the screen.
func (v view) visible(x, y, w, h float64) bool {
	sx, sy := v.toScreen(x, y+h)
	return sx+w*v.scale >= 0 && sx <= v.sw && sy+h*v.scale >= 0 && sy <= v.sh
}

func (v view) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if !v.visible(x, y, w, h) {
		return
	}
	sx, sy := v.toScreen(x, y+h)
	vector.FillRect(screen, float32(sx), float32(sy), float32(w*v.scale), float32(h*v.scale), clr, false)
}

// eachCamera calls fn for every live camera of the given kind. Each parallax
// kind has two instances a level width apart, which is what makes the seam
// invisible.
func (r *Renderer) eachCamera(kind components.CameraKind, fn func(*components.CameraData)) {
	for _, e := range r.s.Cameras {
		if !e.Valid() {
			continue
		}
		if c := components.Camera.Get(e); c.Kind == kind {
			fn(c)
		}
	}
}

func (r *Renderer) DrawBackground(_ *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
	for _, kind := range []components.CameraKind{components.CameraBackground, components.CameraMidground} {
		rects := r.scenery[kind]
		r.eachCamera(kind, func(c *components.CameraData) {
			v := newView(c, screen)
			for _, sr := range rects {
				v.fillRect(screen, sr.X, sr.Y, sr.W, sr.H, sr.Color)
			}
		})
	}
}

// DrawWorld draws the level and everything in it through the foreground
// cameras.
func (r *Renderer) DrawWorld(_ *ecs.ECS, screen *ebiten.Image) {
	w := r.s.World
	r.eachCamera(components.CameraForeground, func(c *components.CameraData) {
		v := newView(c, screen)

		tags.Solid.Each(w, func(e *donburi.Entry) {
			o := components.Object.Get(e)
			v.fillRect(screen, o.X, o.Y, o.W, o.H, cfg.Stone)
		})

		components.Interactable.Each(w, func(e *donburi.Entry) {
			d := components.Interactable.Get(e)
			if !d.Visible {
				return
			}
			o := components.Object.Get(e)
			v.fillRect(screen, o.X, o.Y, o.W, o.H, interactableColor(d))
		})

		if cfg.Debug.DrawHitboxes && r.s.Barrier != nil && r.s.Barrier.Valid() {
			o := components.Object.Get(r.s.Barrier)
			if o.Space != nil {
				v.fillRect(screen, o.X, o.Y, o.W, o.H, cfg.Red)
			}
		}

		r.drawPlayer(screen, v)
	})
}

func interactableColor(d *components.InteractableData) color.Color {
	switch d.Kind {
	case components.KindKey:
		return cfg.Yellow
	case components.KindDoor:
		return cfg.Orange
	case components.KindLever:
		if d.Active {
			return cfg.LightGreen
		}
		return cfg.Red
	case components.KindPlatform:
		return cfg.DarkBlue
	case components.KindDoubleJump:
		return cfg.LightBlue
	case components.KindWallJump:
		return cfg.Purple
	case components.KindJumpToken:
		return cfg.Magenta
	case components.KindGoal:
		return cfg.White
	case components.KindSign:
		return cfg.Wood
	case components.KindHazard:
		return cfg.Water
	}
	return cfg.White
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, v view) {
	e := r.s.Player
	if e == nil || !e.Valid() {
		return
	}
	o := components.Object.Get(e)
	player := components.Player.Get(e)
	anim := components.Animation.Get(e)

	if cfg.Debug.DrawHitboxes {
		v.fillRect(screen, o.X, o.Y, o.W, o.H, cfg.BlackOverlay)
	}
	if anim.CurrentAnimation == nil {
		return
	}

	fw, fh := float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight)
	// Bottom-centre of the sprite sits on the bottom-centre of the collider.
	if !v.visible(o.X+o.W/2-fw/2, o.Y, fw, fh) {
		return
	}
	img := playerFrame(anim.CurrentAnimation.Frame())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-fw/2, -fh)
	if player.Facing < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Scale(v.scale, v.scale)
	sx, sy := v.toScreen(o.X+o.W/2, o.Y)
	drawOp.GeoM.Translate(sx, sy)
	screen.DrawImage(img, drawOp)
}
