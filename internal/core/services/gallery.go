package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driven"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driving"
	"github.com/galleria-labs/galleria-cli/internal/logger"
)

// Ensure GalleryController implements the interface.
var _ driving.GalleryService = (*GalleryController)(nil)

// GalleryController owns the browsing session state: the currently
// displayed page, the pagination metadata, and the cross-page
// selection. It is the only writer of the selection set.
//
// Navigation requests racing with an in-flight fetch are neither
// queued nor cancelled; whichever response is processed last wins.
// A mutex serialises all state mutation so the last-write-wins policy
// holds under real concurrency.
type GalleryController struct {
	mu sync.Mutex

	source    driven.ArtworkSource
	selector  *BulkRangeSelector
	selection *domain.SelectionSet

	page     *domain.Page
	meta     *domain.PaginationMeta
	pageSize int

	state   domain.GalleryState
	lastErr error
}

// NewGalleryController creates a controller over the given source.
func NewGalleryController(source driven.ArtworkSource, pageSize int) *GalleryController {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &GalleryController{
		source:    source,
		selector:  NewBulkRangeSelector(source),
		selection: domain.NewSelectionSet(),
		pageSize:  pageSize,
		state:     domain.StateIdle,
	}
}

// ChangePage fetches the page containing the zero-based record index
// firstIndex at the given page size and makes it current.
func (g *GalleryController) ChangePage(ctx context.Context, firstIndex, pageSize int) error {
	if pageSize <= 0 {
		pageSize = g.PageSize()
	}
	return g.loadPage(ctx, domain.PageForIndex(firstIndex, pageSize), pageSize)
}

// Refresh refetches the current page. Before any page has loaded it
// fetches page one.
func (g *GalleryController) Refresh(ctx context.Context) error {
	g.mu.Lock()
	page := 1
	if g.page != nil {
		page = g.page.Number
	}
	size := g.pageSize
	g.mu.Unlock()

	return g.loadPage(ctx, page, size)
}

// loadPage performs one fetch and applies the outcome. A failure moves
// the session to the error state; the previously displayed records and
// the selection are retained so the user can retry by navigating.
func (g *GalleryController) loadPage(ctx context.Context, pageNum, pageSize int) error {
	g.mu.Lock()
	g.state = domain.StateLoading
	g.mu.Unlock()

	page, meta, err := g.source.FetchPage(ctx, pageNum, pageSize)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.state = domain.StateError
		g.lastErr = err
		logger.Warn("page load failed: %v", err)
		return err
	}

	g.page = page
	g.meta = meta
	g.pageSize = pageSize
	g.state = domain.StateIdle
	g.lastErr = nil
	logger.Debug("loaded page %d/%d (%d records, %d total)",
		meta.CurrentPage, meta.TotalPages, len(page.Artworks), meta.Total)
	return nil
}

// ReconcileSelection merges the checked records of the current page
// into the selection. Records on other pages are never touched.
func (g *GalleryController) ReconcileSelection(checked []domain.Artwork) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.page == nil {
		return domain.ErrNoPageLoaded
	}
	ReconcilePageSelection(g.selection, g.page, checked)
	return nil
}

// BulkSelect walks forward from the current page collecting the first
// n record IDs in collection order, then replaces the selection with
// the result. The walk replaces rather than unions: a prior manual
// selection is discarded even when the walk ends early.
func (g *GalleryController) BulkSelect(ctx context.Context, n int) (driving.BulkSelectResult, error) {
	g.mu.Lock()
	if g.meta == nil {
		g.mu.Unlock()
		return driving.BulkSelectResult{}, domain.ErrNoPageLoaded
	}
	if n < 1 || n > g.meta.Total {
		g.mu.Unlock()
		return driving.BulkSelectResult{}, fmt.Errorf("%w: %d of %d records",
			domain.ErrInvalidBulkRequest, n, g.meta.Total)
	}
	startPage := g.meta.CurrentPage
	pageSize := g.pageSize
	g.state = domain.StateBulkSelecting
	g.mu.Unlock()

	ids, complete, err := g.selector.Select(ctx, startPage, pageSize, n)

	g.mu.Lock()
	defer g.mu.Unlock()

	// The walk always ends in the idle state; an early stop only
	// changes what message is surfaced, and the partial result is
	// applied without rollback.
	g.selection.ReplaceWith(ids)
	g.state = domain.StateIdle

	if err != nil {
		logger.Warn("bulk selection incomplete: %d of %d ids applied: %v", len(ids), n, err)
	}
	return driving.BulkSelectResult{IDs: ids, Collected: len(ids), Complete: complete}, err
}

// Page returns the currently displayed page, or nil.
func (g *GalleryController) Page() *domain.Page {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.page
}

// Meta returns the pagination metadata of the last successful fetch.
func (g *GalleryController) Meta() *domain.PaginationMeta {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.meta
}

// PageSize returns the page size in effect.
func (g *GalleryController) PageSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pageSize
}

// VisibleSelection returns the selected records of the current page in
// page order.
func (g *GalleryController) VisibleSelection() []domain.Artwork {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selection.VisibleSubset(g.page)
}

// IsSelected reports whether the given artwork ID is selected.
func (g *GalleryController) IsSelected(id int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selection.Contains(id)
}

// SelectionCount returns the number of selected IDs.
func (g *GalleryController) SelectionCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selection.Len()
}

// SelectedIDs returns the selected IDs in unspecified order.
func (g *GalleryController) SelectedIDs() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selection.IDs()
}

// State returns the session state.
func (g *GalleryController) State() domain.GalleryState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Err returns the error from the last failed fetch, or nil.
func (g *GalleryController) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}
