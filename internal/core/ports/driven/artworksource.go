package driven

import (
	"context"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

// ArtworkSource fetches pages from the remote catalogue.
// Implementations perform exactly one outbound request per call and
// do not retry; retry policy, if any, belongs to the caller.
type ArtworkSource interface {
	// FetchPage retrieves one page of the catalogue by 1-based page
	// number, together with collection-wide pagination metadata.
	// A failed fetch returns a *domain.NetworkError carrying the
	// requested page number.
	FetchPage(ctx context.Context, page, limit int) (*domain.Page, *domain.PaginationMeta, error)
}
