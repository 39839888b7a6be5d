package domain

// EventType represents the type of an input event
type EventType string

// Event types
const (
	EventChar      EventType = "Char"
	EventBackspace EventType = "Backspace"
	EventEscape    EventType = "Escape"
	EventAdvance   EventType = "AdvanceLanguage"
	EventPreview   EventType = "Preview"
	EventRedraw    EventType = "Redraw"
	EventQuit      EventType = "Quit"
	EventIgnored   EventType = "Ignored"
)

// InputEvent is a logical key event consumed by the session
type InputEvent interface {
	Type() EventType
}

// CharEvent carries one printable rune
type CharEvent struct {
	Rune rune
}

func (e CharEvent) Type() EventType { return EventChar }

// BackspaceEvent removes the last rune of the buffer
type BackspaceEvent struct{}

func (e BackspaceEvent) Type() EventType { return EventBackspace }

// EscapeEvent clears the buffer
type EscapeEvent struct{}

func (e EscapeEvent) Type() EventType { return EventEscape }

// AdvanceLanguageEvent selects the next dictionary
type AdvanceLanguageEvent struct{}

func (e AdvanceLanguageEvent) Type() EventType { return EventAdvance }

// PreviewEvent opens the full-text preview of the buffer
type PreviewEvent struct{}

func (e PreviewEvent) Type() EventType { return EventPreview }

// RedrawEvent clears and redraws the screen
type RedrawEvent struct{}

func (e RedrawEvent) Type() EventType { return EventRedraw }

// QuitEvent ends the session
type QuitEvent struct{}

func (e QuitEvent) Type() EventType { return EventQuit }

// IgnoredEvent stands for any key without a binding
type IgnoredEvent struct{}

func (e IgnoredEvent) Type() EventType { return EventIgnored }
