package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driving"
)

var (
	selectFromPage int
	selectLimit    int
	selectJSON     bool
)

var selectCmd = &cobra.Command{
	Use:   "select [count]",
	Short: "Select the first N records, walking across pages",
	Long: `Resolves "select the first N records" into a sequential walk over
consecutive catalogue pages starting from --from-page, and prints the
collected artwork IDs in collection order.

If a page fetch fails mid-walk, the IDs collected so far are still
printed and the command reports the walk as incomplete.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().IntVar(&selectFromPage, "from-page", 1, "1-based page to start the walk from")
	selectCmd.Flags().IntVarP(&selectLimit, "limit", "n", domain.DefaultPageSize, "records per page during the walk")
	selectCmd.Flags().BoolVar(&selectJSON, "json", false, "output the collected IDs as JSON")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	if galleryService == nil {
		return errors.New("gallery service not configured")
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidBulkRequest, args[0])
	}

	// Load the starting page first: the walk begins at the currently
	// viewed page, and validation needs the collection total.
	firstIndex := (selectFromPage - 1) * selectLimit
	if err := galleryService.ChangePage(cmd.Context(), firstIndex, selectLimit); err != nil {
		return fmt.Errorf("fetch start page: %w", err)
	}

	result, err := galleryService.BulkSelect(cmd.Context(), count)
	if err != nil && result.Collected == 0 {
		return fmt.Errorf("bulk select: %w", err)
	}

	if selectJSON {
		return outputSelectJSON(cmd, result)
	}

	cmd.Printf("Collected %d of %d ids", result.Collected, count)
	if !result.Complete {
		cmd.Printf(" (walk stopped early)")
	}
	cmd.Println()
	for _, id := range result.IDs {
		cmd.Println(id)
	}

	if err != nil {
		// Partial success: the collected prefix was applied, but the
		// caller should still see a non-zero exit.
		return fmt.Errorf("walk incomplete: %w", err)
	}
	return nil
}

func outputSelectJSON(cmd *cobra.Command, result driving.BulkSelectResult) error {
	payload := struct {
		IDs      []int `json:"ids"`
		Complete bool  `json:"complete"`
	}{result.IDs, result.Complete}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
