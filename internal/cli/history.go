package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	filterField  string
	filterValue  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [value]",
	Short: "List recently organized screenshots",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&filterField, "filter-by", "", "Field to filter by (name, category, batch)")
	historyCmd.Flags().StringVar(&filterValue, "value", "", "Value to search for")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "Maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	value := filterValue
	if value == "" && len(args) > 0 {
		value = args[0]
	}

	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	store, err := env.requireStore()
	if err != nil {
		return err
	}

	placements, err := store.ListPlacements(historyLimit, filterField, value)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(placements) == 0 {
		fmt.Fprintln(out, "No organized screenshots recorded.")
		return nil
	}

	rows := make([][]string, 0, len(placements))
	for _, p := range placements {
		batch := p.BatchID
		if len(batch) > 8 {
			batch = batch[:8]
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.PlacedAt.Local().Format("2006-01-02 15:04"),
			humanize.Time(p.PlacedAt),
			p.Category,
			batch,
			filepath.Base(p.DestPath),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "TIME", "AGE", "LOCATION", "BATCH", "FILE"},
		rows,
		[]columnAlignment{alignRight},
	))
	return nil
}
