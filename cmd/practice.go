package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <skill>",
	Short: "Take a standalone practice quiz for a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		set := e.practice.GenerateSet(cmd.Context(), args[0], topic)
		fmt.Printf("Practice: %s — %s (%d questions)\n", set.Skill, set.Topic, len(set.Questions))

		started := time.Now()
		answers, err := promptAnswers(cmd.InOrStdin(), set.Questions)
		if err != nil {
			return err
		}
		elapsed := int(time.Since(started).Seconds())

		result, err := e.practice.Submit(cmd.Context(), e.cfg.UserID, set, answers, elapsed)
		if err != nil {
			return err
		}

		printFeedback(set.Questions, result.Feedback)
		fmt.Printf("\nScore: %.0f%% (%d/%d correct)\n",
			result.Score, result.CorrectCount, result.TotalQuestions)
		fmt.Printf("Confidence in %s: %.2f\n", set.Skill, result.NewConfidence)
		return nil
	},
}

func init() {
	practiceCmd.Flags().String("topic", "", "Narrow the quiz to a topic within the skill")
}
