package services

import (
	"fmt"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driven"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL     = "api.base_url"
	keyAPITimeout     = "api.timeout_seconds"
	keyAPIRequestRate = "api.requests_per_second"
	keyGalleryPage    = "gallery.page_size"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing keys fall back
// to the built-in defaults; out-of-range values are clamped.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := domain.AppSettings{
		API: domain.APISettings{
			BaseURL:           s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			TimeoutSeconds:    s.getInt(keyAPITimeout, defaults.API.TimeoutSeconds),
			RequestsPerSecond: s.getFloat(keyAPIRequestRate, defaults.API.RequestsPerSecond),
		},
		Gallery: domain.GallerySettings{
			PageSize: s.getInt(keyGalleryPage, defaults.Gallery.PageSize),
		},
	}
	settings.Normalise()

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings domain.AppSettings) error {
	settings.Normalise()

	if err := s.configStore.Set(keyAPIBaseURL, settings.API.BaseURL); err != nil {
		return fmt.Errorf("save api base url: %w", err)
	}
	if err := s.configStore.Set(keyAPITimeout, settings.API.TimeoutSeconds); err != nil {
		return fmt.Errorf("save api timeout: %w", err)
	}
	if err := s.configStore.Set(keyAPIRequestRate, settings.API.RequestsPerSecond); err != nil {
		return fmt.Errorf("save api request rate: %w", err)
	}
	if err := s.configStore.Set(keyGalleryPage, settings.Gallery.PageSize); err != nil {
		return fmt.Errorf("save gallery page size: %w", err)
	}

	return s.configStore.Save()
}

// SetPageSize updates the gallery page size.
func (s *SettingsService) SetPageSize(size int) error {
	if size < 1 || size > domain.MaxPageSize {
		return fmt.Errorf("page size %d out of range [1, %d]", size, domain.MaxPageSize)
	}
	if err := s.configStore.Set(keyGalleryPage, size); err != nil {
		return fmt.Errorf("save gallery page size: %w", err)
	}
	return s.configStore.Save()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return fallback
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key)
	}
	return fallback
}
