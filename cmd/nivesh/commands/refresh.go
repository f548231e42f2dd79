package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh [symbol]",
	Short: "Refresh market data for one or all stored securities",
	Long: `Recomputes price changes and momentum from recent daily history.

With a symbol argument only that security is refreshed; without one the
whole store is swept sequentially.

Example:
  go run ./cmd/nivesh refresh RELIANCE
  go run ./cmd/nivesh refresh`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := cmd.Context()

	if len(args) == 1 {
		symbol := args[0]
		fmt.Printf("Refreshing %s...\n", symbol)

		if err := d.Refresher.RefreshOne(ctx, symbol); err != nil {
			return fmt.Errorf("refresh %s: %w", symbol, err)
		}

		fmt.Println("Done")
		return nil
	}

	fmt.Println("Refreshing all stored securities...")

	summary, err := d.Refresher.RefreshAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh all: %w", err)
	}

	fmt.Printf("Done: %d total, %d succeeded, %d failed\n",
		summary.Total, summary.Succeeded, summary.Failed)
	return nil
}
