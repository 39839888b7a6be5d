package dictionary

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dictionarium/internal/domain"
)

// ErrLoad is returned when a dictionary payload is missing or unreadable
var ErrLoad = errors.New("dictionary load")

// dictzipExt marks payloads compressed with dictzip
const dictzipExt = ".dz"

// maxLineSize bounds a single dictionary line
const maxLineSize = 1 << 20

//go:embed data/*.txt
var bundled embed.FS

// Layout maps each language to its payload file name
type Layout map[domain.Language]string

// DefaultLayout names the bundled payloads
var DefaultLayout = Layout{
	domain.English:      "dictionarium.txt",
	domain.German:       "dictionarium-de.txt",
	domain.Czech:        "tchek.txt",
	domain.Esperanto:    "esperanto.txt",
	domain.Cosmoglotta1: "cosmoglotta.txt",
	domain.Cosmoglotta2: "cosmoglotta2.txt",
}

// Bundled returns the payloads embedded in the binary
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "data" is constant.
		panic(err)
	}
	return sub
}

// Load reads every dictionary named by layout from fsys. For each file the
// plain name is tried first, then the name with a ".dz" suffix.
func Load(fsys fs.FS, layout Layout) (*Store, error) {
	dicts := make(map[domain.Language][]string, len(domain.Languages))
	for _, lang := range domain.Languages {
		name, ok := layout[lang]
		if !ok {
			return nil, fmt.Errorf("%w: no file configured for %s", ErrLoad, lang)
		}
		lines, err := loadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, lang, err)
		}
		log.Debug("loaded dictionary", "language", lang, "file", name, "lines", len(lines))
		dicts[lang] = lines
	}
	return NewStore(dicts), nil
}

func loadFile(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) && !strings.HasSuffix(name, dictzipExt) {
		name += dictzipExt
		data, err = fs.ReadFile(fsys, name)
	}
	if err != nil {
		return nil, err
	}

	var r io.Reader = bytes.NewReader(data)
	if strings.HasSuffix(name, dictzipExt) {
		z, err := dictzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("opening dictzip %s: %w", name, err)
		}
		r = z
	}
	return ReadLines(r)
}

// ReadLines splits r into NFC-normalized lines. Line endings are dropped and
// empty lines are kept so line positions match the source.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, norm.NFC))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
