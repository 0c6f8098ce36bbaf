package systems

import (
	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
)

// UpdateAnimation advances the player's sprite through its state's frame
// range and applies the transition at the end of landing poses.
func UpdateAnimation(s *Session, dt float64) {
	e, ok := s.player()
	if !ok {
		return
	}
	player := components.Player.Get(e)
	anim := components.Animation.Get(e)

	anim.SetAnimation(player.State)
	if !anim.CurrentAnimation.Update(dt) {
		return
	}
	if def := anim.CurrentAnimation.Def; def.End == cfg.AnimTransition {
		setState(player, def.Next)
		anim.SetAnimation(player.State)
	}
}
