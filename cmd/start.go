package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <career goal>",
	Short: "Start a learning journey for a career goal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		goal := strings.Join(args, " ")
		result, err := e.journey.Start(cmd.Context(), e.cfg.UserID, goal)
		if err != nil {
			return fmt.Errorf("start journey: %w", err)
		}

		fmt.Printf("Session %s\n\n", result.SessionID)
		fmt.Printf("Goal: %s\n", goal)
		fmt.Printf("Skills: %s\n\n", strings.Join(result.Skills, ", "))

		for _, p := range result.Paths {
			fmt.Printf("%s (%s, %d modules)\n", p.Skill, p.Difficulty, p.TotalModules)
			for _, m := range p.Modules {
				fmt.Printf("  %d. %s [%s]\n", m.ID, m.Name, m.Status)
			}
			fmt.Println()
		}

		fmt.Printf("Next: pearl next %s <skill>\n", result.SessionID)
		return nil
	},
}
