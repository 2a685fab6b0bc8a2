package domain

// SelectionSet is the collection-wide set of selected artwork IDs.
// Membership is independent of which page is currently displayed: an
// ID may be selected while its page is not loaded. Insertion order
// carries no meaning once an ID is in the set.
//
// SelectionSet is not safe for concurrent use; the gallery controller
// owns it and serialises all mutations.
type SelectionSet struct {
	ids map[int]struct{}
}

// NewSelectionSet creates an empty selection set.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{ids: make(map[int]struct{})}
}

// Contains reports whether id is selected.
func (s *SelectionSet) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Add marks id as selected. Adding an already-selected ID is a no-op.
func (s *SelectionSet) Add(id int) {
	s.ids[id] = struct{}{}
}

// Remove unmarks id. Removing an absent ID is a no-op.
func (s *SelectionSet) Remove(id int) {
	delete(s.ids, id)
}

// ReplaceWith discards all prior membership and selects exactly the
// given IDs. Duplicates collapse; order is not retained.
func (s *SelectionSet) ReplaceWith(ids []int) {
	s.ids = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// VisibleSubset returns the records of page that are currently
// selected, in page order. Cost is proportional to the page size, not
// to the size of the selection.
func (s *SelectionSet) VisibleSubset(page *Page) []Artwork {
	if page == nil {
		return nil
	}
	var visible []Artwork
	for i := range page.Artworks {
		if s.Contains(page.Artworks[i].ID) {
			visible = append(visible, page.Artworks[i])
		}
	}
	return visible
}

// Len returns the number of selected IDs.
func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// IDs returns the selected IDs in unspecified order.
func (s *SelectionSet) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
