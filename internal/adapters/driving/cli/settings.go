package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change application settings",
	RunE:  runSettingsShow,
}

var settingsPageSizeCmd = &cobra.Command{
	Use:   "page-size [n]",
	Short: "Set the gallery page size",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPageSize,
}

func init() {
	settingsCmd.AddCommand(settingsPageSizeCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	cmd.Printf("api.base_url            = %s\n", settings.API.BaseURL)
	cmd.Printf("api.timeout_seconds     = %d\n", settings.API.TimeoutSeconds)
	cmd.Printf("api.requests_per_second = %g\n", settings.API.RequestsPerSecond)
	cmd.Printf("gallery.page_size       = %d\n", settings.Gallery.PageSize)
	return nil
}

func runSettingsPageSize(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	size, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("page size must be a number")
	}
	if err := settingsService.SetPageSize(size); err != nil {
		return err
	}

	cmd.Printf("gallery.page_size = %d\n", size)
	return nil
}
