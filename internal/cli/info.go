package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shotwiz/internal/inspect"
	"shotwiz/internal/prompt"
	"shotwiz/internal/tui"
	"shotwiz/pkg/models"
)

var (
	latest   bool
	jsonInfo bool
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about screenshots",
	Long: `Show dimensions, format, color mode, size and timestamps for a screenshot.
With --latest the most recent screenshot is used; otherwise the candidates are
listed and you pick one by number.`,
	Example: "  shotwiz info --latest",
	Args:    cobra.NoArgs,
	RunE:    runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&latest, "latest", false, "Show info for the most recent screenshot")
	infoCmd.Flags().IntVar(&days, "days", 0, "Only consider screenshots from the last N days")
	infoCmd.Flags().BoolVar(&jsonInfo, "json", false, "Print the info as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := checkDays(); err != nil {
		return err
	}
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()

	if latest {
		shot, err := env.finder.Latest(days)
		if err != nil {
			return err
		}
		return printInfo(cmd, inspect.Inspect(shot.Path))
	}

	screenshots, err := env.catalog.List(days)
	if err != nil {
		return err
	}
	if len(screenshots) == 0 {
		fmt.Fprintln(out, "No screenshots found.")
		return nil
	}
	printFiles(out, screenshots)

	idx, err := prompt.Choose(cmd.InOrStdin(), out, len(screenshots))
	switch {
	case errors.Is(err, prompt.ErrCancelled):
		return nil
	case errors.Is(err, prompt.ErrNotANumber):
		fmt.Fprintln(out, "Invalid input. Please enter a number.")
		return nil
	case errors.Is(err, prompt.ErrOutOfRange):
		fmt.Fprintln(out, "Invalid selection.")
		return nil
	case err != nil:
		return err
	}
	return printInfo(cmd, inspect.Inspect(screenshots[idx].Path))
}

func printInfo(cmd *cobra.Command, info models.ImageInfo) error {
	out := cmd.OutOrStdout()
	if jsonInfo {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.InfoCard(info, styled(cmd), time.Now()))
	return nil
}
