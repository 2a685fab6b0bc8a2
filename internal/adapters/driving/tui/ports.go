// Package tui provides an interactive terminal user interface for galleria.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Gallery drives the browsing session.
	Gallery driving.GalleryService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(gallery driving.GalleryService, settings driving.SettingsService) *Ports {
	return &Ports{
		Gallery:  gallery,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Gallery == nil {
		return ErrMissingGalleryService
	}
	return nil
}
