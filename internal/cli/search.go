package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search for screenshots by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	results, err := env.catalog.Search(keyword)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintf(out, "No screenshots found matching '%s'.\n", keyword)
		return nil
	}
	fmt.Fprintf(out, "\nFound %d screenshots matching '%s':\n", len(results), keyword)
	printFiles(out, results)
	return nil
}
