package services

import (
	"context"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driven"
	"github.com/galleria-labs/galleria-cli/internal/logger"
)

// BulkRangeSelector resolves "select the first n records" into an
// ordered walk over consecutive remote pages.
//
// Pages are fetched strictly sequentially - page P+1 is not requested
// until page P's response has been processed. This keeps the collected
// IDs in collection order and avoids unbounded concurrent requests
// against the remote source, at the cost of walk latency proportional
// to the number of pages traversed.
type BulkRangeSelector struct {
	source driven.ArtworkSource
}

// NewBulkRangeSelector creates a bulk selector over the given source.
func NewBulkRangeSelector(source driven.ArtworkSource) *BulkRangeSelector {
	return &BulkRangeSelector{source: source}
}

// Select walks forward from startPage accumulating record IDs in page
// order until n IDs are collected, the collection is exhausted, or a
// page fetch fails.
//
// The returned slice holds the IDs collected so far, in order. The
// boolean reports whether the walk completed normally: a fetch failure
// or early exhaustion yields false together with the partial result.
// The error is non-nil only for a fetch failure or an invalid n; it is
// returned for logging, and a partial result is still usable - nothing
// already collected is rolled back.
func (b *BulkRangeSelector) Select(ctx context.Context, startPage, pageSize, n int) ([]int, bool, error) {
	if n <= 0 {
		return nil, false, domain.ErrInvalidBulkRequest
	}
	if startPage < 1 {
		return nil, false, domain.ErrInvalidPage
	}

	remaining := n
	page := startPage
	collected := make([]int, 0, n)

	for remaining > 0 {
		result, _, err := b.source.FetchPage(ctx, page, pageSize)
		if err != nil {
			// Abort without retrying, keep everything collected so
			// far. The caller surfaces the partial outcome.
			logger.Warn("bulk selection walk aborted at page %d after %d of %d ids: %v",
				page, len(collected), n, err)
			return collected, false, err
		}

		take := len(result.Artworks)
		if take > remaining {
			take = remaining
		}
		for i := 0; i < take; i++ {
			collected = append(collected, result.Artworks[i].ID)
		}
		remaining -= take

		// A short page means the collection is exhausted: fewer than
		// n records exist from the start page onward.
		if len(result.Artworks) < pageSize && remaining > 0 {
			logger.Debug("bulk selection walk exhausted collection at page %d with %d of %d ids",
				page, len(collected), n)
			return collected, false, nil
		}

		page++
	}

	return collected, true, nil
}
