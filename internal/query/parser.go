// Package query turns the raw input buffer into a search token.
//
// Token derivation and bracket stripping are separate pure functions. The
// session calls DeriveToken first and, when HasBracketToken reports that the
// bracket syntax was used, replaces its buffer with StripBrackets so the
// brackets are consumed exactly once.
package query

import (
	"strings"

	"dictionarium/internal/folding"
)

const (
	openBracket  = "["
	closeBracket = "]"
)

var bracketRemover = strings.NewReplacer(openBracket, "", closeBracket, "")

// Result is the outcome of parsing one buffer
type Result struct {
	Token string
	// Buffer is the buffer to keep after parsing. It differs from the input
	// only when Rewritten is true.
	Buffer    string
	Rewritten bool
}

// Parse derives the token for buffer and the normalized buffer
func Parse(buffer string) Result {
	res := Result{Token: DeriveToken(buffer), Buffer: buffer}
	if HasBracketToken(buffer) {
		res.Buffer = StripBrackets(buffer)
		res.Rewritten = true
	}
	return res
}

// DeriveToken returns the search token for buffer.
//
// A well-formed bracket pair selects the text between the last '[' and the
// last ']' with case preserved. Otherwise the token is the text after the last
// space, or the whole buffer, lower-cased.
func DeriveToken(buffer string) string {
	if token, ok := bracketToken(buffer); ok {
		return token
	}
	if i := strings.LastIndex(buffer, " "); i >= 0 {
		return folding.Lower(buffer[i+1:])
	}
	return folding.Lower(buffer)
}

// HasBracketToken reports whether buffer holds a usable bracketed token
func HasBracketToken(buffer string) bool {
	_, ok := bracketToken(buffer)
	return ok
}

// StripBrackets removes every '[' and ']' from buffer
func StripBrackets(buffer string) string {
	return bracketRemover.Replace(buffer)
}

// bracketToken extracts the bracketed token. A closing bracket before the last
// opening bracket is treated as no token at all.
func bracketToken(buffer string) (string, bool) {
	start := strings.LastIndex(buffer, openBracket)
	finish := strings.LastIndex(buffer, closeBracket)
	if start < 0 || finish < 0 || finish < start {
		return "", false
	}
	return StripBrackets(buffer[start+len(openBracket) : finish]), true
}
