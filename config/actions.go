package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionShoot
	ActionReload
	ActionPause
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionMoveUp:    "up",
	ActionMoveDown:  "down",
	ActionJump:      "jump",
	ActionShoot:     "shoot",
	ActionReload:    "reload",
	ActionPause:     "pause",
	ActionDebug:     "debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
