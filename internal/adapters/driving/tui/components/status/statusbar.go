// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/styles"
)

// State represents the current dispatch state for display.
type State string

const (
	StateReady       State = "ready"
	StateDispatching State = "dispatching"
	StateDone        State = "done"
	StateWarning     State = "warning"
	StateHelp        State = "help"
)

// Bar displays dispatch progress and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	opened  int
	total   int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state or message.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateDispatching:
		if s.opened == 0 {
			return s.styles.Muted.Render(fmt.Sprintf("Opening %d searches...", s.total))
		}
		return s.styles.Normal.Render(fmt.Sprintf("Opened %d/%d", s.opened, s.total))
	case StateDone:
		return s.styles.Success.Render(fmt.Sprintf("Opened %d searches", s.total))
	case StateWarning:
		if s.message != "" {
			return s.styles.Warning.Render("Warning: " + s.message)
		}
		return s.styles.Warning.Render("Warning")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady:
		if s.message != "" {
			return s.styles.Muted.Render(s.message)
		}
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// StartDispatch shows the opening message for total searches.
func (s *Bar) StartDispatch(total int) {
	s.state = StateDispatching
	s.message = ""
	s.opened = 0
	s.total = total
}

// Progress records that opened of total searches have been handled.
// A warning already shown is kept until the dispatch finishes.
func (s *Bar) Progress(opened, total int) {
	s.opened = opened
	s.total = total
	if s.state != StateWarning {
		s.state = StateDispatching
	}
}

// Warn shows a warning message.
func (s *Bar) Warn(message string) {
	s.state = StateWarning
	s.message = message
}

// Finish shows the completion message, unless a warning is showing.
func (s *Bar) Finish(total int) {
	s.total = total
	s.opened = total
	if s.state != StateWarning {
		s.state = StateDone
	}
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Opened returns how many searches have been handled.
func (s *Bar) Opened() int {
	return s.opened
}

// Total returns the size of the current dispatch.
func (s *Bar) Total() int {
	return s.total
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.opened = 0
	s.total = 0
}
