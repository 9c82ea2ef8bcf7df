package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove history records for missing files",
	Args:  cobra.NoArgs,
	RunE:  runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	store, err := env.requireStore()
	if err != nil {
		return err
	}

	paths, err := store.ListAllPaths()
	if err != nil {
		return fmt.Errorf("listing paths: %w", err)
	}

	ids := make([]int64, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := cmd.OutOrStdout()
	deletedCount := 0
	for _, id := range ids {
		path := paths[id]
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		fmt.Fprintf(out, "Removing record for missing file: %s (ID: %d)\n", path, id)
		if err := store.DeletePlacement(id); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error deleting record %d: %v\n", id, err)
			continue
		}
		deletedCount++
	}

	if deletedCount == 0 {
		fmt.Fprintln(out, "History is clean. No missing files found.")
	} else {
		fmt.Fprintf(out, "Cleaned up %d records.\n", deletedCount)
	}
	return nil
}
