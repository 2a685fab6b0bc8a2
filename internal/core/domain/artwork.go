package domain

// Artwork represents a single catalogue record as returned by the
// remote collection API. Only the ID participates in selection logic;
// the remaining fields exist for display.
type Artwork struct {
	// ID is the stable unique identifier assigned by the catalogue.
	ID int

	// Title is the human-readable title of the work.
	Title string

	// PlaceOfOrigin is where the work was created, if known.
	PlaceOfOrigin string

	// ArtistDisplay is the free-form artist attribution string.
	ArtistDisplay string

	// DateStart is the earliest year associated with the work.
	DateStart int

	// DateEnd is the latest year associated with the work.
	DateEnd int
}

// Page is one bounded chunk of the remote collection, in server order.
// Pages are created per fetch and never retained once the next page
// arrives.
type Page struct {
	// Number is the 1-based page number this page was requested with.
	Number int

	// Limit is the page size used for the request.
	Limit int

	// Artworks are the records on this page, in server order.
	Artworks []Artwork
}

// IDs returns the identifiers of the page's records in page order.
func (p *Page) IDs() []int {
	ids := make([]int, 0, len(p.Artworks))
	for i := range p.Artworks {
		ids = append(ids, p.Artworks[i].ID)
	}
	return ids
}

// PaginationMeta describes the collection-wide pagination state that
// accompanies every page response.
type PaginationMeta struct {
	// Total is the total number of records in the collection.
	Total int

	// Limit is the page size in effect.
	Limit int

	// Offset is the zero-based index of the first record on the
	// current page: (CurrentPage-1)*Limit.
	Offset int

	// TotalPages is ceil(Total/Limit).
	TotalPages int

	// CurrentPage is the 1-based page number.
	CurrentPage int
}

// NewPaginationMeta derives the full metadata for a page position.
func NewPaginationMeta(total, limit, page int) PaginationMeta {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	return PaginationMeta{
		Total:       total,
		Limit:       limit,
		Offset:      (page - 1) * limit,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
	}
}

// PageForIndex converts a zero-based record index into the 1-based
// number of the page containing it, for a given page size.
func PageForIndex(firstIndex, limit int) int {
	if limit < 1 || firstIndex < 0 {
		return 1
	}
	return firstIndex/limit + 1
}
