package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_IDs(t *testing.T) {
	page := &Page{
		Number: 2,
		Limit:  3,
		Artworks: []Artwork{
			{ID: 10}, {ID: 11}, {ID: 12},
		},
	}

	assert.Equal(t, []int{10, 11, 12}, page.IDs())
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		limit      int
		page       int
		wantOffset int
		wantPages  int
	}{
		{name: "exact multiple", total: 30, limit: 10, page: 2, wantOffset: 10, wantPages: 3},
		{name: "partial last page", total: 25, limit: 10, page: 3, wantOffset: 20, wantPages: 3},
		{name: "single page", total: 4, limit: 10, page: 1, wantOffset: 0, wantPages: 1},
		{name: "empty collection", total: 0, limit: 10, page: 1, wantOffset: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.total, tt.limit, tt.page)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.wantOffset, meta.Offset)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}

func TestNewPaginationMeta_ClampsInvalidInput(t *testing.T) {
	meta := NewPaginationMeta(10, 0, 0)
	assert.Equal(t, 1, meta.Limit)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 0, meta.Offset)
}

func TestPageForIndex(t *testing.T) {
	assert.Equal(t, 1, PageForIndex(0, 10))
	assert.Equal(t, 1, PageForIndex(9, 10))
	assert.Equal(t, 2, PageForIndex(10, 10))
	assert.Equal(t, 3, PageForIndex(25, 10))
	assert.Equal(t, 1, PageForIndex(-5, 10))
	assert.Equal(t, 1, PageForIndex(50, 0))
}
