package domain

// GalleryState identifies the controller's position in the session
// state machine.
type GalleryState int

const (
	// StateIdle means no request is in flight.
	StateIdle GalleryState = iota

	// StateLoading means a current-page fetch is in flight.
	StateLoading

	// StateBulkSelecting means a bulk selection walk is in flight.
	StateBulkSelecting

	// StateError means the last page fetch failed. The previously
	// displayed records and the selection are retained.
	StateError
)

// String returns the string representation of the state.
func (s GalleryState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateBulkSelecting:
		return "bulk_selecting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
