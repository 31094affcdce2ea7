package models

// Action names a user intent delivered to the edit controller.
type Action string

const (
	ActionOpen        Action = "open"
	ActionApplyFilter Action = "apply_filter"
	ActionUndo        Action = "undo"
	ActionSave        Action = "save"
	ActionCancel      Action = "cancel"
)

func (a Action) String() string {
	return string(a)
}

// SessionState is the edit controller's state.
type SessionState int

const (
	StateEmpty SessionState = iota
	StateLoaded
)

func (s SessionState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}
