package services

import (
	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

// ReconcilePageSelection merges a page-scoped checkbox state change
// into the collection-wide selection.
//
// checked must be the full set of records the UI now reports as
// checked among the displayed page's records; the UI signal carries no
// added/removed delta, so reconciliation works from the complete page.
// Every checked record is added, every page record absent from checked
// is removed, and IDs that do not belong to the page are left alone:
// selections made on other pages survive untouched.
func ReconcilePageSelection(sel *domain.SelectionSet, page *domain.Page, checked []domain.Artwork) {
	if sel == nil || page == nil {
		return
	}

	checkedIDs := make(map[int]struct{}, len(checked))
	for i := range checked {
		checkedIDs[checked[i].ID] = struct{}{}
		sel.Add(checked[i].ID)
	}

	for i := range page.Artworks {
		id := page.Artworks[i].ID
		if _, ok := checkedIDs[id]; !ok {
			sel.Remove(id)
		}
	}
}
