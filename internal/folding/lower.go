// Package folding provides the case folding shared by the query parser, the
// scan engine and the result formatter. Every stage must fold the same way or
// a token could match a line and then fail to split it.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folder lower-cases strings. A Folder is stateful and must not be shared
// between goroutines; create one per worker.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a language-neutral lower-casing folder
func NewFolder() *Folder {
	return &Folder{caser: cases.Lower(language.Und)}
}

// Fold returns s lower-cased
func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}

// Lower folds a single string with a fresh Folder
func Lower(s string) string {
	return NewFolder().Fold(s)
}
