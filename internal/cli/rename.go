package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shotwiz/internal/screenshot"
	"shotwiz/pkg/models"
)

var (
	location  string
	extension string
)

var renameCmd = &cobra.Command{
	Use:   "rename <new_name>",
	Short: "Rename the most recent screenshot",
	Long: `Copy the most recent screenshot into the destination directory as
<new_name>_<YYYYMMDD_HHMMSS>.<ext>, optionally under a location subdirectory.
The original file is left untouched.`,
	Example: "  shotwiz rename aws_lambda_function --location=aws --ext=jpg",
	Args:    cobra.ExactArgs(1),
	RunE:    runRename,
}

func init() {
	addPlacementFlags(renameCmd)
	rootCmd.AddCommand(renameCmd)
}

func addPlacementFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&location, "location", "", "Optional location/category for organizing screenshots")
	cmd.Flags().StringVar(&extension, "ext", "png", "File extension")
}

func runRename(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	shot, err := env.finder.Latest(0)
	if err != nil {
		return err
	}
	req, err := screenshot.ValidateRequest(models.OrganizeRequest{
		BaseName:  args[0],
		Category:  location,
		Extension: extension,
	})
	if err != nil {
		return err
	}
	env.openHistory()

	dest, err := env.organizer.Place(shot.Path, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printPlaced(out, shot.Path, dest)
	fmt.Fprintf(out, "\nNew path: %s\n", dest)
	return nil
}

func printPlaced(w io.Writer, from, to string) {
	fmt.Fprintln(w, "Screenshot renamed and copied:")
	fmt.Fprintf(w, "  From: %s\n", from)
	fmt.Fprintf(w, "  To:   %s\n", to)
}
