package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plaroindia/Pearl/internal/confidence"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show skill confidence and practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		profiles, err := e.store.ProfileRepo().ListByUser(ctx, e.cfg.UserID)
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No learning activity recorded yet. Run `pearl start` to begin.")
			return nil
		}

		fmt.Printf("%-20s  %10s  %-14s  %12s  %10s\n",
			"Skill", "Confidence", "Status", "Checkpoints", "Practice")
		fmt.Println(strings.Repeat("─", 74))

		for _, p := range profiles {
			passed, total, err := e.store.EventRepo().CheckpointPassRate(ctx, e.cfg.UserID, p.SkillName)
			if err != nil {
				return err
			}
			checkpoints := "-"
			if total > 0 {
				checkpoints = fmt.Sprintf("%d/%d passed", passed, total)
			}
			fmt.Printf("%-20s  %10.2f  %-14s  %12s  %10d\n",
				p.SkillName, p.Confidence, confidence.StatusOf(p.Confidence), checkpoints, p.PracticeCount)
		}

		analytics, err := e.practice.History(ctx, e.cfg.UserID, "")
		if err != nil {
			return err
		}
		if analytics.Attempts > 0 {
			fmt.Printf("\nPractice: %d attempts, avg %.0f%%, best %.0f%%\n",
				analytics.Attempts, analytics.AvgScore, analytics.BestScore)
		}
		return nil
	},
}
