package types

import "lightbox/internal/gesture"

// Grid actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// OpenAction opens the viewer. Index -1 means the cursor.
type OpenAction struct {
	Index int
}

func (a OpenAction) Type() string { return "open" }

type ShowListAction struct{}

func (a ShowListAction) Type() string { return "show_list" }

// Viewer actions

// GestureKeyAction forwards a key to the gesture router
type GestureKeyAction struct {
	Key gesture.KeyEvent
}

func (a GestureKeyAction) Type() string { return "gesture_key" }

type ResetZoomAction struct{}

func (a ResetZoomAction) Type() string { return "reset_zoom" }

type CloseViewerAction struct{}

func (a CloseViewerAction) Type() string { return "close_viewer" }

// Shared actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }
