package systems

import (
	"github.com/automoto/loopjump/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// NewHoverTween bobs a pickup up and down around its base.
func NewHoverTween(height, period float64) *gween.Sequence {
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(height), float32(period), ease.InOutSine),
		gween.New(float32(height), 0, float32(period), ease.InOutSine),
	)
	return tw
}

// NewFadeTween ramps a sign's text opacity from 0 to 1.
func NewFadeTween(duration float64) *gween.Sequence {
	tw := gween.NewSequence()
	tw.Add(gween.New(0, 1, float32(duration), ease.OutQuad))
	return tw
}

// UpdateHover plays the pickup bob and the sign fade-in.
func UpdateHover(s *Session, dt float64) {
	components.Tween.Each(s.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Interactable) {
			return
		}
		tw := components.Tween.Get(e)
		d := components.Interactable.Get(e)

		if d.Kind == components.KindSign {
			if !d.Overlapping {
				tw.Reset()
				d.Reveal = 0
				return
			}
			v, _, done := tw.Update(float32(dt))
			if done {
				d.Reveal = 1
			} else {
				d.Reveal = float64(v)
			}
			return
		}

		if !d.Visible {
			return
		}
		v, _, done := tw.Update(float32(dt))
		if done {
			tw.Reset()
			v = 0
		}
		obj := components.Object.Get(e).Object
		obj.Y = d.Base.Y + float64(v)
		obj.Update()
	})
}
