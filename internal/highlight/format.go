// Package highlight splits matched lines for highlighted display.
package highlight

import (
	"strings"

	"dictionarium/internal/domain"
)

// Format splits every line at the first occurrence of token. Lines must
// already be folded the same way as token. A line that does not contain the
// token keeps its text in Prefix.
func Format(lines []string, token string) []domain.MatchEntry {
	entries := make([]domain.MatchEntry, 0, len(lines))
	for _, line := range lines {
		before, after, _ := strings.Cut(line, token)
		entries = append(entries, domain.MatchEntry{
			Prefix: before,
			Match:  token,
			Suffix: after,
		})
	}
	return entries
}
