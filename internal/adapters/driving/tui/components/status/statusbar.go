// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/keymap"
	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/styles"
	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

// Bar displays session state, selection count and keybinding hints.
type Bar struct {
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	state         domain.GalleryState
	message       string
	selectedCount int
	page          int
	totalPages    int
	width         int
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
		state:  domain.StateIdle,
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

// renderLeft renders session state, page position and selection count.
func (s *Bar) renderLeft() string {
	var parts []string

	switch s.state {
	case domain.StateLoading:
		parts = append(parts, s.styles.Muted.Render("Loading..."))
	case domain.StateBulkSelecting:
		parts = append(parts, s.styles.Warning.Render("Selecting..."))
	case domain.StateError:
		if s.message != "" {
			parts = append(parts, s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message)))
		} else {
			parts = append(parts, s.styles.Error.Render("Error"))
		}
	case domain.StateIdle:
		if s.message != "" {
			parts = append(parts, s.styles.Normal.Render(s.message))
		} else {
			parts = append(parts, s.styles.Muted.Render("Ready"))
		}
	}

	if s.totalPages > 0 {
		parts = append(parts, s.styles.Muted.Render(fmt.Sprintf("page %d/%d", s.page, s.totalPages)))
	}
	if s.selectedCount > 0 {
		parts = append(parts, s.styles.Checked.Render(fmt.Sprintf("%d selected", s.selectedCount)))
	}

	return strings.Join(parts, s.styles.Muted.Render("  •  "))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == domain.StateIdle {
		bindings = s.keymap.ShortHelp()
	} else {
		bindings = []key.Binding{s.keymap.Quit}
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the displayed session state.
func (s *Bar) SetState(state domain.GalleryState) {
	s.state = state
}

// State returns the displayed session state.
func (s *Bar) State() domain.GalleryState {
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

// SetSelectedCount sets the selection count.
func (s *Bar) SetSelectedCount(count int) {
	s.selectedCount = count
}

// SetPagePosition sets the page position display.
func (s *Bar) SetPagePosition(page, totalPages int) {
	s.page = page
	s.totalPages = totalPages
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Clear resets the status bar to its default state.
func (s *Bar) Clear() {
	s.state = domain.StateIdle
	s.message = ""
}
