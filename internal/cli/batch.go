package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shotwiz/internal/screenshot"
	"shotwiz/internal/tui"
	"shotwiz/pkg/models"
)

var batchCmd = &cobra.Command{
	Use:     "batch <prefix> <count>",
	Short:   "Batch rename multiple screenshots",
	Long:    `Copy the <count> most recent screenshots as <prefix>_01, <prefix>_02, ... newest first.`,
	Example: "  shotwiz batch meeting_slides 5 --location=presentations",
	Args:    cobra.ExactArgs(2),
	RunE:    runBatch,
}

func init() {
	addPlacementFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	prefix := args[0]
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 1 {
		return fmt.Errorf("count must be a positive integer, got %q", args[1])
	}

	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	files, err := env.finder.Find(screenshot.Query{Limit: count, Require: true})
	if err != nil {
		return err
	}

	if _, err := screenshot.ValidateRequest(models.OrganizeRequest{
		BaseName:  prefix,
		Category:  location,
		Extension: extension,
	}); err != nil {
		return err
	}
	if len(files) < count {
		msg := fmt.Sprintf("Only found %d screenshots, but %d were requested.", len(files), count)
		fmt.Fprintln(cmd.ErrOrStderr(), tui.Warning(msg, styledErr(cmd)))
		env.log.Debug("partial batch", zap.Int("found", len(files)), zap.Int("requested", count))
	}

	env.openHistory()
	placed, err := env.organizer.PlaceBatch(files, prefix, location, extension)
	out := cmd.OutOrStdout()
	for i, dest := range placed {
		printPlaced(out, files[i].Path, dest)
	}
	if err != nil {
		if len(placed) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d screenshots were copied before the failure.\n", len(placed), len(files))
		}
		return err
	}
	fmt.Fprintf(out, "\nCopied %d screenshots.\n", len(placed))
	return nil
}
