package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/components/status"
	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/keymap"
	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/messages"
	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/styles"
	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/views/gallery"
	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// galleryView is the paginated catalogue browser.
	galleryView *gallery.View

	// statusBar shows session state and keybinding hints.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		galleryView: gallery.NewView(s, km, ports.Gallery),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewGallery,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("galleria - Catalogue Browser"),
		a.galleryView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.galleryView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewGallery:
			// q quits from the gallery unless the prompt is consuming input
			if !a.galleryView.IsPromptOpen() && msg.String() == "q" {
				return a, tea.Quit
			}
			a.galleryView, cmd = a.galleryView.Update(msg)
			a.syncStatus()
			return a, cmd

		case messages.ViewHelp:
			// Any of esc/q/? returns to the gallery
			a.currentView = messages.ViewGallery
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.galleryView, cmd = a.galleryView.Update(msg)
		a.syncStatus()
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward everything else (page loads, bulk completions, spinner
	// ticks) to the gallery view regardless of the active view, so an
	// in-flight fetch resolves while the help screen is open.
	a.galleryView, cmd = a.galleryView.Update(msg)
	a.syncStatus()
	return a, cmd
}

// syncStatus mirrors controller state into the status bar.
func (a *App) syncStatus() {
	a.statusBar.SetState(a.ports.Gallery.State())
	a.statusBar.SetSelectedCount(a.ports.Gallery.SelectionCount())
	if meta := a.ports.Gallery.Meta(); meta != nil {
		a.statusBar.SetPagePosition(meta.CurrentPage, meta.TotalPages)
	}
	if err := a.ports.Gallery.Err(); err != nil {
		a.statusBar.SetMessage(err.Error())
	} else {
		a.statusBar.SetMessage("")
	}
	a.err = a.galleryView.Err()
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.galleryView.View() + "\n" + a.statusBar.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  j/k, ↑/↓    Move cursor within the page
  h/l, ←/→    Previous / next page
  r           Reload the current page

Selection:
  space/x     Toggle the record under the cursor
  a           Select the first N records (walks pages)
  c           Clear the selection

Selections survive page navigation: records checked on one
page stay checked while you browse others.

Other:
  ?           Toggle this help
  esc         Back
  q, ctrl+c   Quit

[esc] back to gallery`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// GalleryView returns the gallery view (for testing).
func (a *App) GalleryView() *gallery.View {
	return a.galleryView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.galleryView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}

// StatusState returns the status bar state (for testing).
func (a *App) StatusState() domain.GalleryState {
	return a.statusBar.State()
}
