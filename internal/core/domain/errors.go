package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidBulkRequest indicates a bulk selection count outside
	// [1, total records]. Rejected before any network activity.
	ErrInvalidBulkRequest = errors.New("invalid bulk selection request")

	// ErrNoPageLoaded indicates an operation that needs a displayed
	// page was attempted before any page was fetched.
	ErrNoPageLoaded = errors.New("no page loaded")

	// ErrInvalidPage indicates a page number below 1 was requested.
	ErrInvalidPage = errors.New("invalid page number")
)

// NetworkError indicates a page fetch failed, carrying the 1-based
// page number that was being requested.
type NetworkError struct {
	Page int
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching page %d: %v", e.Page, e.Err)
}

// Unwrap returns the underlying transport or API error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
