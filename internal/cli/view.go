package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"
)

// opener launches the desktop's default viewer.
var opener = func(path string) error {
	return exec.Command("xdg-open", path).Start()
}

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Open an organized screenshot in the default viewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ID %q: %w", args[0], err)
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

	path, err := store.GetPlacementPath(id)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), "Tip: Run 'shotwiz cleanup' to remove stale records.")
		return fmt.Errorf("file no longer exists: %s", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Opening %s...\n", path)
	if err := opener(path); err != nil {
		return fmt.Errorf("opening viewer: %w", err)
	}
	return nil
}
