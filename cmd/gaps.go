package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <session>",
	Short: "Show skill gaps and job readiness for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		session, err := e.store.SessionRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		report, err := e.confidence.GapReport(cmd.Context(), session.UserID, session.Skills)
		if err != nil {
			return err
		}

		fmt.Printf("Goal: %s\n\n", session.Goal)
		fmt.Printf("%-20s  %10s  %-14s  %6s\n", "Skill", "Confidence", "Status", "Gap")
		fmt.Println(strings.Repeat("─", 58))
		for _, sg := range report.Skills {
			fmt.Printf("%-20s  %10.2f  %-14s  %6.2f\n", sg.Skill, sg.Confidence, sg.Status, sg.Gap)
		}
		fmt.Printf("\nReadiness: %.0f%% (%s)\n", report.Readiness, report.ReadinessLevel)
		return nil
	},
}
