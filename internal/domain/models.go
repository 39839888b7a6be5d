package domain

// Language identifies one of the bundled dictionaries
type Language int

const (
	English Language = iota
	German
	Czech
	Esperanto
	Cosmoglotta1
	Cosmoglotta2
)

// Languages lists every language in cycle order. The position of a language
// in this list is also its display index.
var Languages = []Language{English, German, Czech, Esperanto, Cosmoglotta1, Cosmoglotta2}

var labels = map[Language]string{
	English:      "Anglés",
	German:       "German",
	Czech:        "Tchek",
	Esperanto:    "Esperanto",
	Cosmoglotta1: "Cosmoglotta 1",
	Cosmoglotta2: "Cosmoglotta 2",
}

var names = map[Language]string{
	English:      "english",
	German:       "german",
	Czech:        "czech",
	Esperanto:    "esperanto",
	Cosmoglotta1: "cosmoglotta1",
	Cosmoglotta2: "cosmoglotta2",
}

// Index returns the display position of the language, or -1 if unknown
func (l Language) Index() int {
	for i, lang := range Languages {
		if lang == l {
			return i
		}
	}
	return -1
}

// Next returns the language following l in the cycle
func (l Language) Next() Language {
	i := l.Index()
	if i < 0 {
		return Languages[0]
	}
	return Languages[(i+1)%len(Languages)]
}

// Label returns the tab label shown for the language
func (l Language) Label() string {
	return labels[l]
}

// String returns the lowercase identifier used in config files and flags
func (l Language) String() string {
	if name, ok := names[l]; ok {
		return name
	}
	return "unknown"
}

// Labels returns all tab labels in display order
func Labels() []string {
	out := make([]string, len(Languages))
	for i, lang := range Languages {
		out[i] = lang.Label()
	}
	return out
}

// ParseLanguage resolves an identifier as returned by String
func ParseLanguage(name string) (Language, bool) {
	for _, lang := range Languages {
		if names[lang] == name {
			return lang, true
		}
	}
	return English, false
}

// MatchEntry is one matching line split around the first occurrence of the token
type MatchEntry struct {
	Prefix string
	Match  string
	Suffix string
}

// Line reassembles the matched line
func (e MatchEntry) Line() string {
	return e.Prefix + e.Match + e.Suffix
}

// ViewMode is the screen the session is currently showing
type ViewMode int

const (
	ModeIntro ViewMode = iota
	ModeBrowsing
	ModePreviewOverlay
)

func (m ViewMode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModeBrowsing:
		return "browsing"
	case ModePreviewOverlay:
		return "preview"
	default:
		return "unknown"
	}
}
