// Package checkpoint grades checkpoint submissions. Evaluation is pure:
// the same questions and answers always produce the same result.
package checkpoint

import (
	"fmt"

	"github.com/plaroindia/Pearl/internal/progression"
)

// FeedbackStatus labels a single question's outcome.
type FeedbackStatus string

const (
	FeedbackCorrect    FeedbackStatus = "correct"
	FeedbackIncorrect  FeedbackStatus = "incorrect"
	FeedbackDiagnostic FeedbackStatus = "diagnostic"
)

// Feedback is the per-question (or diagnostic) line returned with a result.
type Feedback struct {
	QuestionNum int
	Status      FeedbackStatus
	Explanation string
}

// Result is the outcome of grading one submission.
type Result struct {
	Passed         bool
	Score          float64 // 0-100
	CorrectCount   int
	TotalQuestions int
	Feedback       []Feedback
}

// Evaluate grades answers against the question bank. An empty question list
// or an answer-count mismatch fails immediately with score 0 and a
// diagnostic feedback item rather than dividing by zero.
func Evaluate(questions []progression.Question, answers []int, passThreshold float64) Result {
	if passThreshold <= 0 {
		passThreshold = progression.DefaultPassThreshold
	}

	if len(questions) == 0 {
		return Result{
			Feedback: []Feedback{{
				Status:      FeedbackDiagnostic,
				Explanation: "checkpoint has no questions; submission cannot be graded",
			}},
		}
	}
	if len(answers) != len(questions) {
		return Result{
			TotalQuestions: len(questions),
			Feedback: []Feedback{{
				Status: FeedbackDiagnostic,
				Explanation: fmt.Sprintf("expected %d answers, got %d",
					len(questions), len(answers)),
			}},
		}
	}

	res := Result{TotalQuestions: len(questions)}
	for i, q := range questions {
		fb := Feedback{
			QuestionNum: i + 1,
			Status:      FeedbackIncorrect,
			Explanation: q.Explanation,
		}
		if answers[i] == q.CorrectIndex {
			res.CorrectCount++
			fb.Status = FeedbackCorrect
		}
		res.Feedback = append(res.Feedback, fb)
	}

	res.Score = 100 * float64(res.CorrectCount) / float64(res.TotalQuestions)
	res.Passed = res.Score >= passThreshold
	return res
}
