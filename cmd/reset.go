package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	Long:  "Deletes the local database: sessions, paths, skill profiles, and all event history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes all sessions, paths, and skill profiles; re-run with --force to confirm")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecar files, if present.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Println("All learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
