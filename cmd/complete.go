package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <session> <skill> <module> <action>",
	Short: "Mark a learning action as completed",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleID, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid module %q", args[2])
		}
		actionIndex, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid action index %q", args[3])
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		outcome, err := e.journey.CompleteAction(cmd.Context(), args[0], args[1], moduleID, actionIndex)
		if err != nil {
			return err
		}

		fmt.Println("Action completed.")
		if outcome.NewConfidence > 0 {
			fmt.Printf("Confidence in %s: %.2f\n", args[1], outcome.NewConfidence)
		}
		if outcome.ModuleCompleted {
			fmt.Printf("Module %s completed!\n", args[2])
		}
		if outcome.UnlockedModule > 0 {
			fmt.Printf("Module %d unlocked.\n", outcome.UnlockedModule)
		}
		if outcome.PathCompleted {
			fmt.Printf("Path for %s fully completed!\n", args[1])
		}
		return nil
	},
}
