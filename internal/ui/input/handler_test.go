package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dictionarium/internal/config"
	"dictionarium/internal/domain"
	"dictionarium/internal/ui/input/types"
)

func singleEvent(t *testing.T, actions []types.Action) domain.InputEvent {
	t.Helper()
	require.Len(t, actions, 1)
	sa, ok := actions[0].(types.SessionAction)
	require.True(t, ok, "expected session action, got %T", actions[0])
	return sa.Event
}

func TestDefaultBindings(t *testing.T) {
	h := New(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want domain.InputEvent
	}{
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlX}, domain.QuitEvent{}},
		{"redraw", tea.KeyMsg{Type: tea.KeyCtrlS}, domain.RedrawEvent{}},
		{"preview", tea.KeyMsg{Type: tea.KeyCtrlN}, domain.PreviewEvent{}},
		{"advance", tea.KeyMsg{Type: tea.KeyTab}, domain.AdvanceLanguageEvent{}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, domain.BackspaceEvent{}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, domain.EscapeEvent{}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, domain.CharEvent{Rune: ' '}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}, domain.CharEvent{Rune: 'é'}},
		{"bracket", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}}, domain.CharEvent{Rune: '['}},
		{"unbound", tea.KeyMsg{Type: tea.KeyUp}, domain.IgnoredEvent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, singleEvent(t, h.HandleKey(tt.msg)))
		})
	}
}

func TestCtrlCForcesQuit(t *testing.T) {
	h := New(DefaultKeyMap())
	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestHelpKey(t *testing.T) {
	h := New(DefaultKeyMap())
	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, []types.Action{types.ShowHelpAction{}}, actions)
}

func TestPastedRunesSplit(t *testing.T) {
	h := New(DefaultKeyMap())
	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bon")})
	require.Len(t, actions, 3)
	for i, r := range "bon" {
		assert.Equal(t, types.SessionAction{Event: domain.CharEvent{Rune: r}}, actions[i])
	}
}

func TestCustomBindings(t *testing.T) {
	kb := config.DefaultConfig().Keys
	kb.Quit = []string{"ctrl+q"}
	kb.Advance = []string{"ctrl+l"}
	kb.Help = nil
	h := New(NewKeyMap(kb))

	assert.Equal(t, domain.QuitEvent{}, singleEvent(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlQ})))
	assert.Equal(t, domain.AdvanceLanguageEvent{}, singleEvent(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlL})))
	assert.Equal(t, domain.IgnoredEvent{}, singleEvent(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlX})))
	assert.Equal(t, domain.IgnoredEvent{}, singleEvent(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyTab})))
	assert.Equal(t, domain.IgnoredEvent{}, singleEvent(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyF1})))
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 5)
	assert.Equal(t, "tab", km.Advance.Help().Key)
	assert.Equal(t, "next language", km.Advance.Help().Desc)
}
