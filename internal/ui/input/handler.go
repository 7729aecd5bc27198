package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"lightbox/internal/ui/input/modes"
	"lightbox/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeGrid,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeGrid] = modes.NewGridMode()
	h.modes[types.ModeViewer] = modes.NewViewerMode()

	return h
}

// HandleKey runs the key through the current mode. Mode changes requested
// by the mode are applied here and not returned.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var out []types.Action
	for _, action := range actions {
		if change, ok := action.(types.ChangeModeAction); ok {
			h.currentMode = change.Mode
			continue
		}
		out = append(out, action)
	}
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeGrid
}
