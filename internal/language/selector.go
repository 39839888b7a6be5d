// Package language holds the active dictionary selection for a session.
package language

import "dictionarium/internal/domain"

// Selector tracks the current language. It can only move forward one step
// at a time through domain.Languages.
type Selector struct {
	current domain.Language
}

// NewSelector creates a selector starting at the given language
func NewSelector(start domain.Language) *Selector {
	if start.Index() < 0 {
		start = domain.Languages[0]
	}
	return &Selector{current: start}
}

// Current returns the selected language
func (s *Selector) Current() domain.Language {
	return s.current
}

// Index returns the display index of the selected language
func (s *Selector) Index() int {
	return s.current.Index()
}

// Advance moves to the next language in the cycle and returns it
func (s *Selector) Advance() domain.Language {
	s.current = s.current.Next()
	return s.current
}
