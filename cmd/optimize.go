package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plaroindia/Pearl/internal/optimizer"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <session>",
	Short: "Build a prioritized study plan for a session's skills",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, _ := cmd.Flags().GetInt("weeks")
		preference, _ := cmd.Flags().GetString("preference")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		session, err := e.store.SessionRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		confidences := make(map[string]float64, len(session.Skills))
		for _, skill := range session.Skills {
			conf, err := e.confidence.Confidence(cmd.Context(), session.UserID, skill)
			if err != nil {
				return fmt.Errorf("load confidence for %s: %w", skill, err)
			}
			confidences[skill] = conf
		}

		if weeks <= 0 {
			weeks, err = weeksFromEstimates(cmd, e, args[0])
			if err != nil {
				return err
			}
		}

		opt := optimizer.New(e.provider, optimizer.DefaultConfig())
		plan, err := opt.Optimize(cmd.Context(), optimizer.Input{
			Confidences:     confidences,
			RequiredSkills:  session.Skills,
			TimeBudgetWeeks: weeks,
			Preference:      preference,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Study plan (%d weeks, %s preference)\n\n", weeks, preference)
		fmt.Printf("%-4s  %-20s  %6s  %6s  %s\n", "Pri", "Skill", "Gap", "Weeks", "Skip")
		fmt.Println(strings.Repeat("─", 56))
		for _, entry := range plan.Entries {
			skip := "-"
			if len(entry.SkipModules) > 0 {
				parts := make([]string, len(entry.SkipModules))
				for i, id := range entry.SkipModules {
					parts[i] = fmt.Sprintf("%d", id)
				}
				skip = "modules " + strings.Join(parts, ",")
			}
			fmt.Printf("%-4d  %-20s  %6.2f  %6d  %s\n",
				entry.Priority, entry.Skill, entry.Gap, entry.EstimatedWeeks, skip)
		}

		if len(plan.ParallelTracks) > 0 {
			fmt.Println("\nStudy together:")
			for _, pair := range plan.ParallelTracks {
				fmt.Printf("  %s + %s\n", pair[0], pair[1])
			}
		}

		if len(plan.ContentMix) > 0 {
			fmt.Println("\nContent mix:")
			for _, kind := range []string{"video", "practice", "text"} {
				if w, ok := plan.ContentMix[kind]; ok {
					fmt.Printf("  %-8s %.0f%%\n", kind, w*100)
				}
			}
		}
		return nil
	},
}

// weeksFromEstimates derives the time budget from the session's module
// hour estimates and the configured hours_per_week.
func weeksFromEstimates(cmd *cobra.Command, e *env, sessionID string) (int, error) {
	paths, err := e.store.PathRepo().List(cmd.Context(), sessionID)
	if err != nil {
		return 0, err
	}
	totalHours := 0
	for _, p := range paths {
		for _, m := range p.Modules {
			totalHours += m.EstimatedHours
		}
	}
	return optimizer.BudgetWeeks(totalHours, e.cfg.HoursPerWeek), nil
}

func init() {
	optimizeCmd.Flags().Int("weeks", 0, "Total study time budget in weeks (default: estimated from module hours and hours_per_week)")
	optimizeCmd.Flags().String("preference", "mixed", "Learning style: video, reading, hands_on, or mixed")
}
