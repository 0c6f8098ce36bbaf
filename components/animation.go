package components

import (
	"github.com/automoto/loopjump/assets/animations"
	cfg "github.com/automoto/loopjump/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     cfg.PlayerState
}

// SetAnimation switches to the state's animation, restarting it only when
// the state actually changed.
func (a *AnimationData) SetAnimation(state cfg.PlayerState) {
	if a.CurrentAnimation != nil && a.CurrentState == state {
		return
	}
	def, ok := cfg.PlayerAnimations[state]
	if !ok {
		def = cfg.PlayerAnimations[cfg.StateIdle]
	}
	a.CurrentAnimation = animations.NewAnimation(def)
	a.CurrentState = state
}

var Animation = donburi.NewComponentType[AnimationData]()
