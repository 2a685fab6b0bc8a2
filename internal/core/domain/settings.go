package domain

// Default settings values.
const (
	// DefaultBaseURL is the public catalogue API endpoint.
	DefaultBaseURL = "https://api.artic.edu/api/v1"

	// DefaultPageSize is the number of records fetched per page.
	DefaultPageSize = 10

	// DefaultTimeoutSeconds is the per-request timeout.
	DefaultTimeoutSeconds = 15

	// DefaultRequestsPerSecond is the client-side fetch rate limit.
	DefaultRequestsPerSecond = 5.0

	// MaxPageSize is the largest page size the catalogue accepts.
	MaxPageSize = 100
)

// APISettings configures the remote catalogue client.
type APISettings struct {
	// BaseURL is the catalogue API root, without a trailing slash.
	BaseURL string

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int

	// RequestsPerSecond caps outbound fetches. Bulk selection walks
	// issue one request per page, so the cap keeps long walks polite.
	RequestsPerSecond float64
}

// GallerySettings configures the browsing session.
type GallerySettings struct {
	// PageSize is the number of records per displayed page.
	PageSize int
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	API     APISettings
	Gallery GallerySettings
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:           DefaultBaseURL,
			TimeoutSeconds:    DefaultTimeoutSeconds,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Gallery: GallerySettings{
			PageSize: DefaultPageSize,
		},
	}
}

// Normalise clamps out-of-range values back to usable defaults.
func (s *AppSettings) Normalise() {
	if s.API.BaseURL == "" {
		s.API.BaseURL = DefaultBaseURL
	}
	if s.API.TimeoutSeconds <= 0 {
		s.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if s.API.RequestsPerSecond <= 0 {
		s.API.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if s.Gallery.PageSize <= 0 {
		s.Gallery.PageSize = DefaultPageSize
	}
	if s.Gallery.PageSize > MaxPageSize {
		s.Gallery.PageSize = MaxPageSize
	}
}
