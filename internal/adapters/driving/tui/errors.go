package tui

import "errors"

// ErrMissingGalleryService is returned when the gallery service is not provided.
var ErrMissingGalleryService = errors.New("tui: gallery service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
