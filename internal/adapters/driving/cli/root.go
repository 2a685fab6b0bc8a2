// Package cli implements the cobra command tree for galleria.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core services.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/galleria-labs/galleria-cli/internal/adapters/driven/artic"
	configfile "github.com/galleria-labs/galleria-cli/internal/adapters/driven/config/file"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driving"
	"github.com/galleria-labs/galleria-cli/internal/core/services"
	"github.com/galleria-labs/galleria-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string

	galleryService  driving.GalleryService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "galleria",
	Short: "Browse a remote art catalogue and build cross-page selections",
	Long: `Galleria is a terminal client for browsing a large, remotely
paginated art-collection catalogue one page at a time and building a
selection of artworks that survives page navigation - including a
"select the first N records" operation that walks across pages.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.galleria)")
}

// setup wires the adapters and services after flag parsing. Tests may
// pre-populate the services via SetServices, in which case setup only
// configures logging.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if galleryService != nil && settingsService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settings := services.NewSettingsService(store)
	cfg, err := settings.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	source := artic.NewClient(artic.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	})

	settingsService = settings
	galleryService = services.NewGalleryController(source, cfg.Gallery.PageSize)

	logger.Debug("configured catalogue client for %s (page size %d)", cfg.API.BaseURL, cfg.Gallery.PageSize)
	return nil
}

// SetServices injects pre-built services, bypassing setup wiring.
// Used by tests.
func SetServices(gallery driving.GalleryService, settings driving.SettingsService) {
	galleryService = gallery
	settingsService = settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
