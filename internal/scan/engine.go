// Package scan finds the dictionary lines that contain a token.
package scan

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/sourcegraph/conc/iter"

	"dictionarium/internal/folding"
)

const (
	// MaxResults caps the number of lines returned by a scan
	MaxResults = 20

	// MinTokenLength is the shortest token, in runes, that triggers a scan
	MinTokenLength = 2
)

// Engine scans dictionaries with a fixed-size worker pool
type Engine struct {
	workers int
}

// NewEngine creates an engine using the given number of workers. A value
// below one uses GOMAXPROCS.
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{workers: workers}
}

// Workers returns the size of the worker pool
func (e *Engine) Workers() int {
	return e.workers
}

// span is a contiguous range of dictionary lines handled by one worker
type span struct {
	lo, hi int
}

// Scan returns up to MaxResults lower-cased lines of dict containing token,
// in dictionary order. Tokens shorter than MinTokenLength return nil.
//
// The lines are split into one contiguous span per worker and the per-span
// results are concatenated by span index, so the output order never depends
// on scheduling.
func (e *Engine) Scan(dict []string, token string) []string {
	if utf8.RuneCountInString(token) < MinTokenLength || len(dict) == 0 {
		return nil
	}
	needle := folding.Lower(token)

	mapper := iter.Mapper[span, []string]{MaxGoroutines: e.workers}
	perSpan := mapper.Map(partition(len(dict), e.workers), func(s *span) []string {
		folder := folding.NewFolder()
		var found []string
		for _, line := range dict[s.lo:s.hi] {
			lowered := folder.Fold(line)
			if !strings.Contains(lowered, needle) {
				continue
			}
			found = append(found, lowered)
			// Later spans come after this one, so nothing past the cap here
			// can ever be returned.
			if len(found) == MaxResults {
				break
			}
		}
		return found
	})

	var results []string
	for _, found := range perSpan {
		for _, line := range found {
			if len(results) == MaxResults {
				return results
			}
			results = append(results, line)
		}
	}
	return results
}

// Fold lower-cases a token the same way Scan does
func (e *Engine) Fold(token string) string {
	return folding.Lower(token)
}

// partition splits n lines into at most parts contiguous spans of near-equal size
func partition(n, parts int) []span {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	spans := make([]span, 0, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}
	return spans
}
