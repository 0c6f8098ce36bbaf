package animations

import cfg "github.com/automoto/loopjump/config"

// Animation steps through one AnimationDef in real time.
type Animation struct {
	Def      cfg.AnimationDef
	frame    int
	elapsed  float64
	Complete bool // the range ran out on a hold or transition animation
}

// Update advances the animation by dt seconds and reports whether it
// completed during this call.
func (a *Animation) Update(dt float64) bool {
	if a.Complete {
		return false
	}
	a.elapsed += dt
	for {
		d := a.Def.Duration(a.frame)
		if d <= 0 || a.elapsed < d {
			return false
		}
		a.elapsed -= d
		if a.frame < a.Def.Last {
			a.frame++
			continue
		}
		switch a.Def.End {
		case cfg.AnimLoop:
			a.frame = a.Def.LoopTo
		default:
			a.Complete = true
			a.elapsed = 0
			return true
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.Def.First
	a.elapsed = 0
	a.Complete = false
}

func NewAnimation(def cfg.AnimationDef) *Animation {
	return &Animation{
		Def:   def,
		frame: def.First,
	}
}
