package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shotwiz/internal/inspect"
	"shotwiz/internal/tui"
)

const browseHeight = 20

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse screenshots interactively",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().IntVar(&days, "days", 0, "Only show screenshots from the last N days")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if err := checkDays(); err != nil {
		return err
	}
	if !isTerminal(os.Stdin) || !styled(cmd) {
		return errors.New("browse needs an interactive terminal; use 'shotwiz list' instead")
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
	if len(screenshots) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No screenshots found.")
		return nil
	}
	return tui.Browse(screenshots, inspect.Inspect, browseHeight)
}
