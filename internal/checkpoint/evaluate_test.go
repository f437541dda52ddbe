package checkpoint

import (
	"testing"

	"github.com/plaroindia/Pearl/internal/progression"
)

func bank() []progression.Question {
	return []progression.Question{
		{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "E1"},
		{Text: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "E2"},
		{Text: "Q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "E3"},
		{Text: "Q4", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3, Explanation: "E4"},
	}
}

func TestEvaluate_AllCorrect(t *testing.T) {
	res := Evaluate(bank(), []int{0, 1, 2, 3}, 70)

	if !res.Passed {
		t.Error("expected pass")
	}
	if res.Score != 100 {
		t.Errorf("expected score 100, got %v", res.Score)
	}
	if res.CorrectCount != 4 || res.TotalQuestions != 4 {
		t.Errorf("expected 4/4, got %d/%d", res.CorrectCount, res.TotalQuestions)
	}
	for _, fb := range res.Feedback {
		if fb.Status != FeedbackCorrect {
			t.Errorf("question %d: expected correct, got %q", fb.QuestionNum, fb.Status)
		}
	}
}

func TestEvaluate_ThreeOfFourPasses(t *testing.T) {
	res := Evaluate(bank(), []int{0, 1, 2, 0}, 70)

	if res.Score != 75 {
		t.Errorf("expected score 75, got %v", res.Score)
	}
	if !res.Passed {
		t.Error("75 >= 70 should pass")
	}
	if res.Feedback[3].Status != FeedbackIncorrect {
		t.Errorf("question 4 should be incorrect, got %q", res.Feedback[3].Status)
	}
	if res.Feedback[3].Explanation != "E4" {
		t.Errorf("feedback should carry the explanation, got %q", res.Feedback[3].Explanation)
	}
}

func TestEvaluate_OneOfFourFails(t *testing.T) {
	res := Evaluate(bank(), []int{0, 0, 0, 0}, 70)

	if res.Score != 25 {
		t.Errorf("expected score 25, got %v", res.Score)
	}
	if res.Passed {
		t.Error("25 < 70 should fail")
	}
}

func TestEvaluate_ExactThresholdPasses(t *testing.T) {
	qs := bank()[:2]
	res := Evaluate(qs, []int{0, 0}, 50)
	if res.Score != 50 || !res.Passed {
		t.Errorf("score at threshold should pass, got score=%v passed=%v", res.Score, res.Passed)
	}
}

func TestEvaluate_EmptyQuestions(t *testing.T) {
	res := Evaluate(nil, nil, 70)

	if res.Passed || res.Score != 0 {
		t.Errorf("expected fail with score 0, got passed=%v score=%v", res.Passed, res.Score)
	}
	if len(res.Feedback) != 1 || res.Feedback[0].Status != FeedbackDiagnostic {
		t.Fatalf("expected one diagnostic feedback item, got %+v", res.Feedback)
	}
}

func TestEvaluate_AnswerCountMismatch(t *testing.T) {
	res := Evaluate(bank(), []int{0, 1}, 70)

	if res.Passed || res.Score != 0 {
		t.Errorf("expected fail with score 0, got passed=%v score=%v", res.Passed, res.Score)
	}
	if len(res.Feedback) != 1 || res.Feedback[0].Status != FeedbackDiagnostic {
		t.Fatalf("expected one diagnostic feedback item, got %+v", res.Feedback)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	a := Evaluate(bank(), []int{0, 1, 0, 3}, 70)
	b := Evaluate(bank(), []int{0, 1, 0, 3}, 70)

	if a.Score != b.Score || a.Passed != b.Passed || a.CorrectCount != b.CorrectCount {
		t.Errorf("evaluation not deterministic: %+v vs %+v", a, b)
	}
}
