package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

func TestGalleryController_ChangePage(t *testing.T) {
	ctrl := NewGalleryController(fixedCollectionSource(25), 10)

	err := ctrl.ChangePage(context.Background(), 0, 10)
	require.NoError(t, err)

	page := ctrl.Page()
	require.NotNil(t, page)
	assert.Equal(t, 1, page.Number)
	assert.Len(t, page.Artworks, 10)
	assert.Equal(t, domain.StateIdle, ctrl.State())

	meta := ctrl.Meta()
	require.NotNil(t, meta)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestGalleryController_ChangePageByRecordIndex(t *testing.T) {
	ctrl := NewGalleryController(fixedCollectionSource(25), 10)

	// Index 10 is the first record of page two.
	require.NoError(t, ctrl.ChangePage(context.Background(), 10, 10))
	assert.Equal(t, 2, ctrl.Page().Number)

	// The last page is short.
	require.NoError(t, ctrl.ChangePage(context.Background(), 20, 10))
	assert.Equal(t, 3, ctrl.Page().Number)
	assert.Len(t, ctrl.Page().Artworks, 5)
}

func TestGalleryController_Refresh(t *testing.T) {
	source := fixedCollectionSource(25)
	ctrl := NewGalleryController(source, 10)

	// Before any page has loaded, refresh fetches page one.
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 1, ctrl.Page().Number)

	require.NoError(t, ctrl.ChangePage(context.Background(), 10, 10))
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 2, ctrl.Page().Number)
	assert.Equal(t, []int{1, 2, 2}, source.calls)
}

func TestGalleryController_FetchFailureKeepsStaleState(t *testing.T) {
	source := fixedCollectionSource(25)
	ctrl := NewGalleryController(source, 10)

	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))
	require.NoError(t, ctrl.ReconcileSelection([]domain.Artwork{{ID: 2}}))

	fetchErr := &domain.NetworkError{Page: 2, Err: errors.New("gateway timeout")}
	source.fetchPageFunc = func(_ context.Context, _, _ int) (*domain.Page, *domain.PaginationMeta, error) {
		return nil, nil, fetchErr
	}

	err := ctrl.ChangePage(context.Background(), 10, 10)
	require.Error(t, err)
	assert.True(t, domain.IsNetworkError(err))

	assert.Equal(t, domain.StateError, ctrl.State())
	assert.Equal(t, fetchErr, ctrl.Err())
	assert.Equal(t, 1, ctrl.Page().Number, "previously displayed records are retained")
	assert.True(t, ctrl.IsSelected(2), "selection survives the failure")
}

func TestGalleryController_RecoversFromErrorState(t *testing.T) {
	source := fixedCollectionSource(25)
	ctrl := NewGalleryController(source, 10)

	inner := source.fetchPageFunc
	source.fetchPageFunc = func(_ context.Context, _, _ int) (*domain.Page, *domain.PaginationMeta, error) {
		return nil, nil, &domain.NetworkError{Page: 1, Err: errors.New("dns failure")}
	}
	require.Error(t, ctrl.ChangePage(context.Background(), 0, 10))
	assert.Equal(t, domain.StateError, ctrl.State())

	source.fetchPageFunc = inner
	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))
	assert.Equal(t, domain.StateIdle, ctrl.State())
	assert.NoError(t, ctrl.Err())
}

func TestGalleryController_ReconcileSelectionSurvivesNavigation(t *testing.T) {
	ctrl := NewGalleryController(fixedCollectionSource(25), 10)

	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))
	require.NoError(t, ctrl.ReconcileSelection([]domain.Artwork{{ID: 3}, {ID: 7}}))

	// Navigate away and back.
	require.NoError(t, ctrl.ChangePage(context.Background(), 10, 10))
	assert.Empty(t, ctrl.VisibleSelection(), "nothing selected on page two")
	assert.Equal(t, 2, ctrl.SelectionCount())

	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))
	visible := ctrl.VisibleSelection()
	require.Len(t, visible, 2)
	assert.Equal(t, 3, visible[0].ID)
	assert.Equal(t, 7, visible[1].ID)
}

func TestGalleryController_ReconcileSelectionNoPage(t *testing.T) {
	ctrl := NewGalleryController(fixedCollectionSource(25), 10)

	err := ctrl.ReconcileSelection([]domain.Artwork{{ID: 1}})

	assert.ErrorIs(t, err, domain.ErrNoPageLoaded)
}

func TestGalleryController_BulkSelectSpansPages(t *testing.T) {
	ctrl := NewGalleryController(fixedCollectionSource(25), 10)
	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))

	result, err := ctrl.BulkSelect(context.Background(), 23)

	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, 23, result.Collected)
	assert.Equal(t, seq(1, 23), result.IDs)
	assert.Equal(t, 23, ctrl.SelectionCount())
	assert.True(t, ctrl.IsSelected(1))
	assert.True(t, ctrl.IsSelected(23))
	assert.False(t, ctrl.IsSelected(24))
	assert.Equal(t, domain.StateIdle, ctrl.State())
}

func TestGalleryController_BulkSelectReplacesPriorSelection(t *testing.T) {
	ctrl := NewGalleryController(fixedCollectionSource(25), 10)
	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))
	require.NoError(t, ctrl.ReconcileSelection([]domain.Artwork{{ID: 8}, {ID: 9}}))

	result, err := ctrl.BulkSelect(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 5, ctrl.SelectionCount(), "prior picks are replaced, not unioned")
	assert.Equal(t, seq(1, 5), result.IDs)
	assert.False(t, ctrl.IsSelected(8))
	assert.False(t, ctrl.IsSelected(9))
}

func TestGalleryController_BulkSelectPartialFailureApplied(t *testing.T) {
	source := fixedCollectionSource(50)
	inner := source.fetchPageFunc
	ctrl := NewGalleryController(source, 10)
	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))

	source.fetchPageFunc = func(ctx context.Context, page, limit int) (*domain.Page, *domain.PaginationMeta, error) {
		if page == 3 {
			return nil, nil, &domain.NetworkError{Page: 3, Err: errors.New("connection reset")}
		}
		return inner(ctx, page, limit)
	}

	result, err := ctrl.BulkSelect(context.Background(), 35)

	require.Error(t, err)
	assert.False(t, result.Complete)
	assert.Equal(t, 20, result.Collected)
	assert.Equal(t, 20, ctrl.SelectionCount(), "partial result is applied, not rolled back")
	assert.Equal(t, domain.StateIdle, ctrl.State(), "bulk failure does not enter the error state")
	assert.NoError(t, ctrl.Err())
}

func TestGalleryController_BulkSelectStartsAtCurrentPage(t *testing.T) {
	source := fixedCollectionSource(50)
	ctrl := NewGalleryController(source, 10)
	require.NoError(t, ctrl.ChangePage(context.Background(), 20, 10))
	source.calls = nil

	result, err := ctrl.BulkSelect(context.Background(), 15)

	require.NoError(t, err)
	assert.Equal(t, seq(21, 35), result.IDs)
	assert.Equal(t, []int{3, 4}, source.calls)
}

func TestGalleryController_BulkSelectValidation(t *testing.T) {
	source := fixedCollectionSource(25)
	ctrl := NewGalleryController(source, 10)

	_, err := ctrl.BulkSelect(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNoPageLoaded)

	require.NoError(t, ctrl.ChangePage(context.Background(), 0, 10))
	source.calls = nil

	_, err = ctrl.BulkSelect(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidBulkRequest)

	_, err = ctrl.BulkSelect(context.Background(), 26)
	assert.ErrorIs(t, err, domain.ErrInvalidBulkRequest)

	assert.Empty(t, source.calls, "invalid counts are rejected before any fetch")
	assert.Equal(t, domain.StateIdle, ctrl.State())
}

func TestNewGalleryController_DefaultPageSize(t *testing.T) {
	ctrl := NewGalleryController(fixedCollectionSource(5), 0)

	assert.Equal(t, domain.DefaultPageSize, ctrl.PageSize())
}
