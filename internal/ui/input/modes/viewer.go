package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lightbox/internal/gesture"
	"lightbox/internal/ui/input/types"
)

// ViewerMode turns keys into gesture router key events
type ViewerMode struct {
	keys types.ViewerKeyMap
}

func NewViewerMode() *ViewerMode {
	return &ViewerMode{keys: types.ViewerKeys}
}

func (m *ViewerMode) Name() string {
	return "viewer"
}

func (m *ViewerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if !ctx.ViewerOpen() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case msg.Type == tea.KeyEsc:
		return gestureKey(gesture.KeyEvent{Code: 27, Name: "Escape"})
	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.CloseViewerAction{}}, true
	case key.Matches(msg, m.keys.Prev):
		return gestureKey(gesture.KeyEvent{Code: 37, Name: "ArrowLeft"})
	case key.Matches(msg, m.keys.Next):
		return gestureKey(gesture.KeyEvent{Code: 39, Name: "ArrowRight"})
	case key.Matches(msg, m.keys.ZoomIn):
		return gestureKey(gesture.KeyEvent{Name: "+"})
	case key.Matches(msg, m.keys.ZoomOut):
		return gestureKey(gesture.KeyEvent{Name: "-"})
	case key.Matches(msg, m.keys.Reset):
		return []types.Action{types.ResetZoomAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}

func gestureKey(ev gesture.KeyEvent) ([]types.Action, bool) {
	return []types.Action{types.GestureKeyAction{Key: ev}}, true
}
