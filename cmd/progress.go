package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <session>",
	Short: "Show progress across every path in a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sp, err := e.journey.Progress(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Goal: %s\n", sp.Session.Goal)
		fmt.Printf("Started: %s\n\n", sp.Session.CreatedAt.Local().Format("2006-01-02"))

		fmt.Printf("%-20s  %-12s  %8s  %8s  %6s\n", "Skill", "Difficulty", "Modules", "Actions", "Done")
		fmt.Println(strings.Repeat("─", 64))
		for _, pp := range sp.Paths {
			p := pp.Progress
			done := fmt.Sprintf("%.0f%%", p.Percentage)
			if p.PathCompleted {
				done = "100% ✓"
			}
			fmt.Printf("%-20s  %-12s  %3d/%-4d  %3d/%-4d  %6s\n",
				pp.Skill, p.Difficulty,
				p.CompletedModules, p.TotalModules,
				p.ActionsCompleted, p.TotalActions,
				done)
		}
		return nil
	},
}
