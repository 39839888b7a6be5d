// Package session implements the keystroke-driven state machine: it owns the
// input buffer, the selected language and the view mode, and recomputes the
// results after every event.
package session

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"dictionarium/internal/dictionary"
	"dictionarium/internal/domain"
	"dictionarium/internal/highlight"
	"dictionarium/internal/language"
	"dictionarium/internal/query"
	"dictionarium/internal/scan"
)

// Outcome tells the display surface what to do after an event
type Outcome struct {
	Quit        bool
	ClearScreen bool
}

// Snapshot is everything the display surface needs to draw one frame
type Snapshot struct {
	Mode          domain.ViewMode
	Language      domain.Language
	LanguageIndex int
	Labels        []string
	Buffer        string
	Token         string
	Results       []domain.MatchEntry
}

// Session is not safe for concurrent use. It is driven from the single
// goroutine that reads input.
type Session struct {
	store    *dictionary.Store
	engine   *scan.Engine
	selector *language.Selector
	logger   *log.Logger

	mode    domain.ViewMode
	buffer  string
	token   string
	results []domain.MatchEntry
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for scan diagnostics
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithLanguage sets the language selected at start
func WithLanguage(lang domain.Language) Option {
	return func(s *Session) {
		s.selector = language.NewSelector(lang)
	}
}

// New creates a session in Intro mode with an empty buffer and English selected
func New(store *dictionary.Store, engine *scan.Engine, opts ...Option) *Session {
	s := &Session{
		store:    store,
		engine:   engine,
		selector: language.NewSelector(domain.English),
		logger:   log.Default(),
		mode:     domain.ModeIntro,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle applies one input event and refreshes the results
func (s *Session) Handle(ev domain.InputEvent) Outcome {
	var out Outcome
	switch s.mode {
	case domain.ModeIntro:
		out = s.handleIntro(ev)
	case domain.ModePreviewOverlay:
		// Whatever the key was, it only closes the preview.
		s.mode = domain.ModeBrowsing
	default:
		out = s.handleBrowsing(ev)
	}
	if out.Quit {
		return out
	}
	s.refresh()
	return out
}

func (s *Session) handleIntro(ev domain.InputEvent) Outcome {
	switch ev.(type) {
	case domain.QuitEvent:
		return Outcome{Quit: true}
	case domain.AdvanceLanguageEvent:
		s.selector.Advance()
	}
	s.buffer = ""
	s.mode = domain.ModeBrowsing
	return Outcome{}
}

func (s *Session) handleBrowsing(ev domain.InputEvent) Outcome {
	switch e := ev.(type) {
	case domain.CharEvent:
		s.buffer += string(e.Rune)
	case domain.BackspaceEvent:
		if s.buffer != "" {
			_, size := utf8.DecodeLastRuneInString(s.buffer)
			s.buffer = s.buffer[:len(s.buffer)-size]
		}
	case domain.EscapeEvent:
		s.buffer = ""
	case domain.AdvanceLanguageEvent:
		s.selector.Advance()
	case domain.PreviewEvent:
		s.mode = domain.ModePreviewOverlay
	case domain.RedrawEvent:
		return Outcome{ClearScreen: true}
	case domain.QuitEvent:
		return Outcome{Quit: true}
	}
	return Outcome{}
}

// refresh re-derives the token, consumes bracket syntax and rescans
func (s *Session) refresh() {
	parsed := query.Parse(s.buffer)
	s.buffer = parsed.Buffer
	s.token = s.engine.Fold(parsed.Token)

	lang := s.selector.Current()
	start := time.Now()
	lines := s.engine.Scan(s.store.Get(lang), s.token)
	s.results = highlight.Format(lines, s.token)

	if len(s.token) > 0 {
		s.logger.Debug("scan",
			"language", lang,
			"token", s.token,
			"matches", len(s.results),
			"rewritten", parsed.Rewritten,
			"took", time.Since(start))
	}
}

// Snapshot returns the state to render
func (s *Session) Snapshot() Snapshot {
	lang := s.selector.Current()
	return Snapshot{
		Mode:          s.mode,
		Language:      lang,
		LanguageIndex: lang.Index(),
		Labels:        domain.Labels(),
		Buffer:        s.buffer,
		Token:         s.token,
		Results:       append([]domain.MatchEntry(nil), s.results...),
	}
}

// Mode returns the current view mode
func (s *Session) Mode() domain.ViewMode {
	return s.mode
}

// Buffer returns the current input buffer
func (s *Session) Buffer() string {
	return s.buffer
}

// Language returns the selected language
func (s *Session) Language() domain.Language {
	return s.selector.Current()
}

// Lookup runs the parse, scan and format pipeline for a one-shot query
// without touching any session state.
func Lookup(store *dictionary.Store, engine *scan.Engine, lang domain.Language, input string) (string, []domain.MatchEntry) {
	token := engine.Fold(query.DeriveToken(input))
	return token, highlight.Format(engine.Scan(store.Get(lang), token), token)
}
