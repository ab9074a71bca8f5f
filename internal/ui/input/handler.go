package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ebrowse/internal/ui/logic"
)

// Handler decodes key presses into navigation intents
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return NewWithKeys(DefaultKeyMap())
}

func NewWithKeys(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// HandleKey returns the intent bound to msg, or logic.IntentNone for keys
// without a binding
func (h *Handler) HandleKey(msg tea.KeyMsg) logic.Intent {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return logic.IntentQuit
	case key.Matches(msg, h.keys.Down):
		return logic.IntentDown
	case key.Matches(msg, h.keys.Up):
		return logic.IntentUp
	case key.Matches(msg, h.keys.NextPage):
		return logic.IntentNextPage
	case key.Matches(msg, h.keys.PrevPage):
		return logic.IntentPrevPage
	}
	return logic.IntentNone
}
