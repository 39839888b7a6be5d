package types

import "dictionarium/internal/domain"

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// SessionAction forwards a logical input event to the session
type SessionAction struct {
	Event domain.InputEvent
}

func (a SessionAction) Type() string { return "session" }

// ShowHelpAction opens the usage text in the pager
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// QuitAction leaves the program without going through the session
type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }
