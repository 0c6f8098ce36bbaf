package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionInteract
	ActionRestart
	ActionExit
	ActionSkipLevel
	ActionCount // Must be last - used for array sizing
)
