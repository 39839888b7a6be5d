package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"dictionarium/internal/config"
)

// KeyMap holds the configurable control bindings. Printable characters,
// backspace and escape are not configurable.
type KeyMap struct {
	Quit    key.Binding
	Redraw  key.Binding
	Preview key.Binding
	Advance key.Binding
	Help    key.Binding
}

// NewKeyMap builds the key map from configured bindings
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Quit:    binding(kb.Quit, "quit"),
		Redraw:  binding(kb.Redraw, "redraw"),
		Preview: binding(kb.Preview, "preview"),
		Advance: binding(kb.Advance, "next language"),
		Help:    binding(kb.Help, "help"),
	}
}

// DefaultKeyMap returns the key map for the default configuration
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Preview, k.Redraw, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Preview},
		{k.Redraw, k.Help, k.Quit},
	}
}
