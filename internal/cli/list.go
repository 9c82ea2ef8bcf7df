package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var days int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List screenshots",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&days, "days", 0, "Only show screenshots from the last N days")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := checkDays(); err != nil {
		return err
	}
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	screenshots, err := env.catalog.List(days)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(screenshots) == 0 {
		fmt.Fprintln(out, "No screenshots found.")
		return nil
	}
	fmt.Fprintf(out, "\nFound %d screenshots:\n", len(screenshots))
	printFiles(out, screenshots)
	return nil
}

func checkDays() error {
	if days < 0 {
		return fmt.Errorf("--days must not be negative, got %d", days)
	}
	return nil
}
