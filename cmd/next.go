package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next <session> <skill>",
	Short: "Show the next action on a learning path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		next, ok, err := e.journey.NextAction(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Path completed. Nothing left to do — congratulations!")
			return nil
		}

		a := next.Action
		fmt.Printf("Module %d: %s\n", next.ModuleID, next.ModuleName)
		fmt.Printf("Action %d (%s): %s\n", next.ActionIndex, a.Type, a.Title)
		if a.Description != "" {
			fmt.Printf("  %s\n", a.Description)
		}
		if a.URL != "" {
			fmt.Printf("  %s — %s\n", a.Platform, a.URL)
		}
		if a.DurationMins > 0 {
			fmt.Printf("  ~%d min\n", a.DurationMins)
		}

		if a.Type == "checkpoint" {
			fmt.Printf("\nSubmit with: pearl checkpoint %s %s %d\n", args[0], args[1], next.ModuleID)
		} else {
			fmt.Printf("\nMark done with: pearl complete %s %s %d %d\n", args[0], args[1], next.ModuleID, next.ActionIndex)
		}
		return nil
	},
}
