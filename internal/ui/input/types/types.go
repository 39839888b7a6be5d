package types

import tea "github.com/charmbracelet/bubbletea"

// KeyTranslator turns key messages into actions
type KeyTranslator interface {
	HandleKey(msg tea.KeyMsg) []Action
}
