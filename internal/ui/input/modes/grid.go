package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lightbox/internal/ui/input/types"
)

const doubleGWindow = 500 * time.Millisecond

type GridMode struct {
	keys        types.GridKeyMap
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewGridMode() *GridMode {
	return &GridMode{keys: types.GridKeys, now: time.Now}
}

func (m *GridMode) Name() string {
	return "grid"
}

func (m *GridMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "g" {
		now := m.now()
		if m.lastKeyWasG && now.Sub(m.lastGTime) < doubleGWindow {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = now
		return nil, true
	}
	m.lastKeyWasG = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: msg.Type == tea.KeyCtrlC}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, m.keys.Open):
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenAction{Index: -1}}, true
	case key.Matches(msg, m.keys.List):
		return []types.Action{types.ShowListAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
