package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionSet_AddRemoveContains(t *testing.T) {
	sel := NewSelectionSet()

	assert.False(t, sel.Contains(42))

	sel.Add(42)
	assert.True(t, sel.Contains(42))
	assert.Equal(t, 1, sel.Len())

	// Add is idempotent
	sel.Add(42)
	assert.Equal(t, 1, sel.Len())

	sel.Remove(42)
	assert.False(t, sel.Contains(42))

	// Remove of an absent ID is a no-op
	sel.Remove(42)
	assert.Equal(t, 0, sel.Len())
}

func TestSelectionSet_ReplaceWith(t *testing.T) {
	sel := NewSelectionSet()
	sel.Add(1)
	sel.Add(2)

	sel.ReplaceWith([]int{3, 4, 5, 4})

	assert.Equal(t, 3, sel.Len(), "duplicates collapse")
	assert.False(t, sel.Contains(1), "prior membership discarded")
	assert.False(t, sel.Contains(2))
	assert.True(t, sel.Contains(3))
	assert.True(t, sel.Contains(4))
	assert.True(t, sel.Contains(5))
}

func TestSelectionSet_ReplaceWithEmpty(t *testing.T) {
	sel := NewSelectionSet()
	sel.Add(7)

	sel.ReplaceWith(nil)

	assert.Equal(t, 0, sel.Len())
}

func TestSelectionSet_VisibleSubset(t *testing.T) {
	sel := NewSelectionSet()
	sel.Add(2)
	sel.Add(4)
	sel.Add(99) // not on the page

	page := &Page{
		Number: 1,
		Limit:  4,
		Artworks: []Artwork{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
		},
	}

	visible := sel.VisibleSubset(page)

	require.Len(t, visible, 2)
	// Page order is preserved
	assert.Equal(t, 2, visible[0].ID)
	assert.Equal(t, 4, visible[1].ID)
}

func TestSelectionSet_VisibleSubsetNilPage(t *testing.T) {
	sel := NewSelectionSet()
	sel.Add(1)

	assert.Nil(t, sel.VisibleSubset(nil))
}

func TestSelectionSet_IDs(t *testing.T) {
	sel := NewSelectionSet()
	sel.Add(3)
	sel.Add(1)
	sel.Add(2)

	ids := sel.IDs()
	assert.ElementsMatch(t, []int{1, 2, 3}, ids)
}
