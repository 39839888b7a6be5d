package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dictionarium/internal/domain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// tabsHeight is the language box: border, title and one row of tabs
	tabsHeight = 4
	helpHeight = 1
	minBox     = 3
)

// IntroTitle is shown on the border of the welcome screen
const IntroTitle = "Benevenit!"

// IntroText explains the program on the welcome screen and in the help pager
const IntroText = `Benevenit al dictionarium in Occidental.

Ples presser sur quelcunc clave por comensar.

Actualmen tu posse serchar in dictionariums in:
·anglés
·german
·tchek
·esperanto
·li archives de Cosmoglotta inter 1922 e 1950.

On usa Tab por changear inter lingues.

Por serchar con plu quam un parol, on usa [].
Por exemple: [un bon idé].
Sin capter it inter in [], 'un bon idé' vell serchar por solmen li parol 'idé'.`

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Mode     domain.ViewMode
	Labels   []string
	Selected int
	Buffer   string
	Token    string
	Results  []domain.MatchEntry
	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 {
		state.Width = defaultWidth
	}
	if state.Height <= 0 {
		state.Height = defaultHeight
	}

	switch state.Mode {
	case domain.ModeIntro:
		return r.renderIntro(state)
	case domain.ModePreviewOverlay:
		return r.renderPreview(state)
	default:
		return r.renderBrowsing(state)
	}
}

func (r *Renderer) renderIntro(state ViewState) string {
	return r.box(r.styles.IntroBox, IntroTitle, IntroText, state.Width, state.Height-1)
}

// renderPreview shows the buffer alone in the middle 60% of the screen
func (r *Renderer) renderPreview(state ViewState) string {
	regionHeight := state.Height * 60 / 100
	if regionHeight < 1 {
		regionHeight = 1
	}
	body := r.styles.Preview.
		Width(state.Width).
		Height(regionHeight).
		MaxHeight(regionHeight).
		Render(state.Buffer)
	return lipgloss.Place(state.Width, state.Height, lipgloss.Left, lipgloss.Center, body)
}

func (r *Renderer) renderBrowsing(state ViewState) string {
	remaining := state.Height - tabsHeight - helpHeight
	typingHeight := remaining * 30 / 100
	if typingHeight < minBox {
		typingHeight = minBox
	}
	resultsHeight := remaining - typingHeight
	if resultsHeight < minBox {
		resultsHeight = minBox
	}

	resultsTitle := "Resultates"
	if len(state.Results) > 0 {
		resultsTitle = fmt.Sprintf("Resultates (%d)", len(state.Results))
	}

	sections := []string{
		r.box(r.styles.Box, "Lingues", r.renderTabs(state.Labels, state.Selected), state.Width, tabsHeight),
		r.box(r.styles.Box, "Tippar ci", state.Buffer, state.Width, typingHeight),
		r.box(r.styles.Box, resultsTitle, r.renderResults(state.Results), state.Width, resultsHeight),
		r.styles.Help.Render(state.HelpView),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs draws the language labels with the selected one highlighted
func (r *Renderer) renderTabs(labels []string, selected int) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			parts[i] = r.styles.TabSelected.Render(label)
		} else {
			parts[i] = r.styles.Tab.Render(label)
		}
	}
	return strings.Join(parts, r.styles.TabDivider.Render(" │ "))
}

// renderResults draws one line per entry with the matched token styled
func (r *Renderer) renderResults(results []domain.MatchEntry) string {
	lines := make([]string, len(results))
	for i, e := range results {
		lines[i] = e.Prefix + r.styles.Match.Render(e.Match) + e.Suffix
	}
	return strings.Join(lines, "\n")
}

// box renders a bordered section of the given outer size. The body is wrapped
// to the inner width and cut to the lines that fit under the title.
func (r *Renderer) box(style lipgloss.Style, title, body string, width, height int) string {
	frameW := style.GetHorizontalFrameSize()
	frameH := style.GetVerticalFrameSize()
	innerW := width - frameW
	if innerW < 1 {
		innerW = 1
	}
	innerH := height - frameH
	if innerH < 1 {
		innerH = 1
	}

	wrapped := lipgloss.NewStyle().Width(innerW).Render(body)
	bodyLines := strings.Split(wrapped, "\n")
	if maxBody := innerH - 1; len(bodyLines) > maxBody {
		if maxBody < 0 {
			maxBody = 0
		}
		bodyLines = bodyLines[:maxBody]
	}

	content := r.styles.BoxTitle.Render(title)
	if len(bodyLines) > 0 {
		content += "\n" + strings.Join(bodyLines, "\n")
	}
	return style.
		Width(innerW + style.GetHorizontalPadding()).
		Height(innerH).
		Render(content)
}
