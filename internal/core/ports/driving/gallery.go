package driving

import (
	"context"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

// BulkSelectResult summarises a completed bulk selection walk.
type BulkSelectResult struct {
	// IDs are the collected identifiers in collection order.
	IDs []int

	// Collected is the number of IDs gathered by the walk.
	Collected int

	// Complete is false when the walk stopped early, either because a
	// page fetch failed or the collection was exhausted.
	Complete bool
}

// GalleryService drives a catalogue browsing session: page navigation,
// per-page selection reconciliation, and bulk cross-page selection.
type GalleryService interface {
	// ChangePage fetches the page containing the zero-based record
	// index firstIndex at the given page size and makes it current.
	// On failure the previous records and selection are retained and
	// the session enters the error state.
	ChangePage(ctx context.Context, firstIndex, pageSize int) error

	// Refresh refetches the current page at the current page size.
	Refresh(ctx context.Context) error

	// ReconcileSelection merges the checked records of the currently
	// displayed page into the selection. checked must be the full set
	// of records the UI now reports as checked on that page; records
	// on other pages are never touched.
	ReconcileSelection(checked []domain.Artwork) error

	// BulkSelect resolves "select the first n records starting at the
	// current page" into an ordered multi-page walk and replaces the
	// selection with the walked IDs. n outside [1, total] is rejected
	// with domain.ErrInvalidBulkRequest and no state change.
	BulkSelect(ctx context.Context, n int) (BulkSelectResult, error)

	// Page returns the currently displayed page, or nil.
	Page() *domain.Page

	// Meta returns the pagination metadata of the last successful
	// fetch, or nil.
	Meta() *domain.PaginationMeta

	// VisibleSelection returns the selected records of the current
	// page, in page order, for checkbox rendering.
	VisibleSelection() []domain.Artwork

	// IsSelected reports whether the given artwork ID is selected.
	IsSelected(id int) bool

	// SelectionCount returns the number of selected IDs.
	SelectionCount() int

	// SelectedIDs returns the selected IDs in unspecified order.
	SelectedIDs() []int

	// State returns the session state.
	State() domain.GalleryState

	// Err returns the error from the last failed fetch, or nil.
	Err() error
}
