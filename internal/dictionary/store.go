// Package dictionary loads and holds the word lists searched by the session.
package dictionary

import (
	"dictionarium/internal/domain"
)

// Dictionary is an ordered, read-only list of lines for one language
type Dictionary []string

// Store holds one dictionary per language. It is built once before the
// session starts and never mutated afterwards, so it can be shared freely.
type Store struct {
	dicts map[domain.Language]Dictionary
}

// NewStore creates a store from already loaded line lists. Languages without
// an entry get an empty dictionary.
func NewStore(dicts map[domain.Language][]string) *Store {
	s := &Store{dicts: make(map[domain.Language]Dictionary, len(domain.Languages))}
	for _, lang := range domain.Languages {
		lines := dicts[lang]
		s.dicts[lang] = append(Dictionary(nil), lines...)
	}
	return s
}

// Get returns the dictionary for a language
func (s *Store) Get(lang domain.Language) Dictionary {
	return s.dicts[lang]
}

// Len returns the number of lines in the dictionary for lang
func (s *Store) Len(lang domain.Language) int {
	return len(s.dicts[lang])
}
