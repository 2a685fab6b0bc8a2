package driving

import "github.com/galleria-labs/galleria-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (domain.AppSettings, error)

	// Save persists application settings.
	Save(settings domain.AppSettings) error

	// SetPageSize updates the gallery page size.
	SetPageSize(size int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
