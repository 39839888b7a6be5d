package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dictionarium/internal/domain"
	"dictionarium/internal/ui/input/types"
)

// Handler translates Bubble Tea key messages into actions
type Handler struct {
	keys KeyMap
}

// New creates a handler for the given key map
func New(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// HandleKey maps one key message to the actions it triggers. A pasted run of
// characters becomes one action per rune so the session still sees one
// keystroke at a time.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}
	}

	// Configured controls win over the built-in keys below
	switch {
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ShowHelpAction{}}
	case key.Matches(msg, h.keys.Quit):
		return event(domain.QuitEvent{})
	case key.Matches(msg, h.keys.Redraw):
		return event(domain.RedrawEvent{})
	case key.Matches(msg, h.keys.Preview):
		return event(domain.PreviewEvent{})
	case key.Matches(msg, h.keys.Advance):
		return event(domain.AdvanceLanguageEvent{})
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return event(domain.BackspaceEvent{})
	case tea.KeyEsc:
		return event(domain.EscapeEvent{})
	case tea.KeySpace:
		return event(domain.CharEvent{Rune: ' '})
	case tea.KeyRunes:
		actions := make([]types.Action, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			actions = append(actions, types.SessionAction{Event: domain.CharEvent{Rune: r}})
		}
		return actions
	}

	return event(domain.IgnoredEvent{})
}

func event(ev domain.InputEvent) []types.Action {
	return []types.Action{types.SessionAction{Event: ev}}
}

var _ types.KeyTranslator = (*Handler)(nil)
