package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

func pageOf(ids ...int) *domain.Page {
	artworks := make([]domain.Artwork, 0, len(ids))
	for _, id := range ids {
		artworks = append(artworks, domain.Artwork{ID: id})
	}
	return &domain.Page{Number: 1, Limit: len(ids), Artworks: artworks}
}

func TestReconcilePageSelection_AddsChecked(t *testing.T) {
	sel := domain.NewSelectionSet()
	page := pageOf(1, 2, 3)

	ReconcilePageSelection(sel, page, []domain.Artwork{{ID: 1}, {ID: 3}})

	assert.True(t, sel.Contains(1))
	assert.False(t, sel.Contains(2))
	assert.True(t, sel.Contains(3))
}

func TestReconcilePageSelection_RemovesUnchecked(t *testing.T) {
	sel := domain.NewSelectionSet()
	sel.Add(1)
	sel.Add(2)
	page := pageOf(1, 2, 3)

	// Record 2 was unchecked in the UI.
	ReconcilePageSelection(sel, page, []domain.Artwork{{ID: 1}})

	assert.True(t, sel.Contains(1))
	assert.False(t, sel.Contains(2))
}

func TestReconcilePageSelection_LeavesOtherPagesAlone(t *testing.T) {
	sel := domain.NewSelectionSet()
	sel.Add(100) // selected on a page that is not displayed
	sel.Add(2)
	page := pageOf(1, 2, 3)

	ReconcilePageSelection(sel, page, []domain.Artwork{{ID: 3}})

	assert.True(t, sel.Contains(100), "off-page selections survive")
	assert.False(t, sel.Contains(2))
	assert.True(t, sel.Contains(3))
}

func TestReconcilePageSelection_Idempotent(t *testing.T) {
	sel := domain.NewSelectionSet()
	page := pageOf(1, 2, 3)
	checked := []domain.Artwork{{ID: 2}}

	ReconcilePageSelection(sel, page, checked)
	ReconcilePageSelection(sel, page, checked)

	assert.Equal(t, 1, sel.Len())
	assert.True(t, sel.Contains(2))
}

func TestReconcilePageSelection_EmptyChecked(t *testing.T) {
	sel := domain.NewSelectionSet()
	sel.Add(1)
	sel.Add(2)
	sel.Add(50)
	page := pageOf(1, 2, 3)

	ReconcilePageSelection(sel, page, nil)

	assert.Equal(t, 1, sel.Len(), "all page records deselected")
	assert.True(t, sel.Contains(50))
}

func TestReconcilePageSelection_NilArguments(t *testing.T) {
	sel := domain.NewSelectionSet()
	sel.Add(1)

	ReconcilePageSelection(nil, pageOf(1), nil)
	ReconcilePageSelection(sel, nil, []domain.Artwork{{ID: 2}})

	assert.Equal(t, 1, sel.Len(), "nil page leaves the selection untouched")
}
