package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
)

var (
	listPage  int
	listLimit int
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the catalogue",
	Long: `Fetches a single page of the remote catalogue and prints it.
Useful for scripting and for checking connectivity without the TUI.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "1-based page number")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", domain.DefaultPageSize, "records per page")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the page as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if galleryService == nil {
		return errors.New("gallery service not configured")
	}
	if listPage < 1 {
		return domain.ErrInvalidPage
	}

	firstIndex := (listPage - 1) * listLimit
	if err := galleryService.ChangePage(cmd.Context(), firstIndex, listLimit); err != nil {
		return fmt.Errorf("fetch page: %w", err)
	}

	page := galleryService.Page()
	meta := galleryService.Meta()

	if listJSON {
		return outputListJSON(cmd, page, meta)
	}
	return outputListTable(cmd, page, meta)
}

func outputListJSON(cmd *cobra.Command, page *domain.Page, meta *domain.PaginationMeta) error {
	payload := struct {
		Pagination *domain.PaginationMeta `json:"pagination"`
		Artworks   []domain.Artwork       `json:"artworks"`
	}{meta, page.Artworks}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListTable(cmd *cobra.Command, page *domain.Page, meta *domain.PaginationMeta) error {
	if len(page.Artworks) == 0 {
		cmd.Println("No artworks on this page.")
		return nil
	}

	width := terminalWidth()
	titleWidth := (width - 24) / 2
	if titleWidth < 16 {
		titleWidth = 16
	}

	cmd.Printf("Page %d of %d (%d artworks total)\n\n", meta.CurrentPage, meta.TotalPages, meta.Total)
	for i := range page.Artworks {
		a := &page.Artworks[i]
		cmd.Printf("  %-8d %-*s  %s\n", a.ID, titleWidth, clip(a.Title, titleWidth), clip(a.PlaceOfOrigin, titleWidth))
		if a.ArtistDisplay != "" {
			cmd.Printf("  %-8s %s\n", "", clip(a.ArtistDisplay, width-12))
		}
	}

	return nil
}

// terminalWidth returns the stdout width, or a sane default when
// stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 100
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 40 {
		return 100
	}
	return w
}

func clip(s string, max int) string {
	if max > 3 && len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
