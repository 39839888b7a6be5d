package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"dictionarium/internal/session"
	"dictionarium/internal/ui/input"
	"dictionarium/internal/ui/views"
)

// ViewModel transforms session state into view-ready data
type ViewModel struct {
	session *session.Session
	keys    input.KeyMap
	width   int
	height  int
	help    help.Model
}

// NewViewModel creates a new view model
func NewViewModel(sess *session.Session, keys input.KeyMap) *ViewModel {
	return &ViewModel{
		session: sess,
		keys:    keys,
		help:    help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// Dimensions returns the last terminal size set
func (vm *ViewModel) Dimensions() (int, int) {
	return vm.width, vm.height
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	snap := vm.session.Snapshot()
	return views.ViewState{
		Width:    vm.width,
		Height:   vm.height,
		Mode:     snap.Mode,
		Labels:   snap.Labels,
		Selected: snap.LanguageIndex,
		Buffer:   snap.Buffer,
		Token:    snap.Token,
		Results:  snap.Results,
		HelpView: vm.help.View(vm.keys),
	}
}
