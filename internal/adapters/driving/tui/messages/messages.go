// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

// PageLoaded carries the result of a page navigation fetch.
type PageLoaded struct {
	Page *domain.Page
	Meta *domain.PaginationMeta
	Err  error
}

// SelectionToggled is sent when the checkbox state of the displayed
// page changes. Checked is the full set of records now checked on that
// page, not a delta.
type SelectionToggled struct {
	Checked []domain.Artwork
}

// BulkSelectRequested is a command to select the first N records
// starting from the current page.
type BulkSelectRequested struct {
	N int
}

// BulkSelectCompleted carries the outcome of a bulk selection walk.
type BulkSelectCompleted struct {
	Collected int
	Complete  bool
	Err       error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewGallery is the paginated catalogue browser.
	ViewGallery ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewGallery:
		return "gallery"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
