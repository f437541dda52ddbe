package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plaroindia/Pearl/internal/checkpoint"
	"github.com/plaroindia/Pearl/internal/progression"
)

var checkpointCmd = &cobra.Command{
	Use:   "checkpoint <session> <skill> <module>",
	Short: "Take a module's checkpoint quiz",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleID, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid module %q", args[2])
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		path, err := e.journey.Path(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		mod := path.Module(moduleID)
		if mod == nil {
			return progression.ErrModuleNotFound
		}
		cp := mod.Checkpoint()
		if cp == nil {
			return progression.ErrNoCheckpoint
		}

		answers, err := collectAnswers(cmd, cp.Questions)
		if err != nil {
			return err
		}

		outcome, err := e.journey.SubmitCheckpoint(cmd.Context(), args[0], args[1], moduleID, answers)
		if err != nil {
			return err
		}

		printFeedback(cp.Questions, outcome.Result.Feedback)
		fmt.Printf("\nScore: %.0f%% (%d/%d correct, pass mark %.0f%%)\n",
			outcome.Result.Score, outcome.Result.CorrectCount, outcome.Result.TotalQuestions, cp.PassThreshold)

		if !outcome.Result.Passed {
			fmt.Println("Not passed yet. Review the material and try again.")
			return nil
		}

		fmt.Println("Checkpoint passed!")
		fmt.Printf("Confidence in %s: %.2f\n", args[1], outcome.NewConfidence)
		if outcome.UnlockedModule > 0 {
			fmt.Printf("Module %d unlocked.\n", outcome.UnlockedModule)
		}
		if outcome.PathCompleted {
			fmt.Printf("Path for %s fully completed!\n", args[1])
		}
		return nil
	},
}

func init() {
	checkpointCmd.Flags().String("answers", "", "Comma-separated answer numbers (e.g. 2,1,4,3); prompts interactively when omitted")
}

// collectAnswers reads answers from --answers, or prompts question by
// question. Answers are entered 1-based and returned 0-based.
func collectAnswers(cmd *cobra.Command, questions []progression.Question) ([]int, error) {
	if flag, _ := cmd.Flags().GetString("answers"); flag != "" {
		return parseAnswerList(flag, len(questions))
	}
	return promptAnswers(cmd.InOrStdin(), questions)
}

func parseAnswerList(s string, want int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d answers, got %d", want, len(parts))
	}
	answers := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > 4 {
			return nil, fmt.Errorf("answer %d must be a number 1-4, got %q", i+1, p)
		}
		answers[i] = n - 1
	}
	return answers, nil
}

func promptAnswers(in io.Reader, questions []progression.Question) ([]int, error) {
	reader := bufio.NewReader(in)
	answers := make([]int, 0, len(questions))

	for i, q := range questions {
		fmt.Printf("\nQ%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}
		for {
			fmt.Print("Your answer (1-4): ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil, fmt.Errorf("read answer: %w", err)
			}
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || n < 1 || n > 4 {
				fmt.Println("Please enter a number from 1 to 4.")
				continue
			}
			answers = append(answers, n-1)
			break
		}
	}
	return answers, nil
}

func printFeedback(questions []progression.Question, feedback []checkpoint.Feedback) {
	fmt.Println()
	for _, fb := range feedback {
		switch fb.Status {
		case checkpoint.FeedbackCorrect:
			fmt.Printf("Q%d: correct\n", fb.QuestionNum)
		case checkpoint.FeedbackIncorrect:
			fmt.Printf("Q%d: incorrect", fb.QuestionNum)
			if n := fb.QuestionNum - 1; n >= 0 && n < len(questions) {
				q := questions[n]
				if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
					fmt.Printf(" (answer: %s)", q.Options[q.CorrectIndex])
				}
			}
			fmt.Println()
			if fb.Explanation != "" {
				fmt.Printf("    %s\n", fb.Explanation)
			}
		default:
			fmt.Println(fb.Explanation)
		}
	}
}
