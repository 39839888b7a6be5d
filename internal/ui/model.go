package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"dictionarium/internal/domain"
	"dictionarium/internal/session"
	"dictionarium/internal/ui/input"
	inputtypes "dictionarium/internal/ui/input/types"
	"dictionarium/internal/ui/viewmodels"
	"dictionarium/internal/ui/views"
)

// Model adapts a session to Bubble Tea
type Model struct {
	session      *session.Session
	inputHandler inputtypes.KeyTranslator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	logger       *log.Logger

	// helpContent is shown by the help key
	helpContent string
}

// NewModel creates a new UI model around an existing session
func NewModel(sess *session.Session, keys input.KeyMap, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	return &Model{
		session:      sess,
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(sess, keys),
		logger:       logger,
		helpContent:  views.IntroText,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, action := range m.keyActions(msg) {
			cmd, quit := m.processAction(action)
			if quit {
				return m, tea.Quit
			}
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only, the screen is redrawn as before
			m.logger.Error("help pager failed", "err", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// keyActions translates a key message. Outside Browsing one key message is
// one session event: a pasted run only closes the intro or the preview, and
// the help key closes them instead of opening the pager.
func (m *Model) keyActions(msg tea.KeyMsg) []inputtypes.Action {
	actions := m.inputHandler.HandleKey(msg)
	if m.session.Mode() == domain.ModeBrowsing || len(actions) == 0 {
		return actions
	}
	first := actions[0]
	if _, ok := first.(inputtypes.ShowHelpAction); ok {
		first = inputtypes.SessionAction{Event: domain.IgnoredEvent{}}
	}
	return []inputtypes.Action{first}
}

// processAction executes one action. It reports whether the program should quit.
func (m *Model) processAction(action inputtypes.Action) (tea.Cmd, bool) {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.logger.Debug("quit", "force", a.Force)
		return nil, true

	case inputtypes.ShowHelpAction:
		return showHelpPager(m.helpContent), false

	case inputtypes.SessionAction:
		out := m.session.Handle(a.Event)
		if out.Quit {
			return nil, true
		}
		if out.ClearScreen {
			return tea.ClearScreen, false
		}
	}
	return nil, false
}

// View renders the current frame
func (m *Model) View() string {
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// Session returns the session driven by the model
func (m *Model) Session() *session.Session {
	return m.session
}
