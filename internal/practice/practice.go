// Package practice generates and scores standalone practice sets. Practice
// is off-path: it never touches module progression, but scored attempts
// feed the skill confidence aggregator.
package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plaroindia/Pearl/internal/checkpoint"
	"github.com/plaroindia/Pearl/internal/confidence"
	"github.com/plaroindia/Pearl/internal/llm"
	"github.com/plaroindia/Pearl/internal/pathgen"
	"github.com/plaroindia/Pearl/internal/progression"
	"github.com/plaroindia/Pearl/internal/store"
)

// SetSize is the number of questions in a practice set.
const SetSize = 5

const practiceSystemPrompt = `You are a career learning mentor writing
short practice quizzes. Write multiple-choice questions on the requested
topic. Each question has exactly 4 options with one correct answer and a
short explanation.`

// Set is a generated practice quiz.
type Set struct {
	Skill     string
	Topic     string
	Questions []progression.Question
}

// Result is a scored practice submission.
type Result struct {
	Score          float64
	CorrectCount   int
	TotalQuestions int
	Feedback       []checkpoint.Feedback
	NewConfidence  float64
}

// Service generates, scores, and records practice sets.
type Service struct {
	provider   llm.Provider
	config     pathgen.Config
	events     store.EventRepo
	confidence *confidence.Service
}

// NewService creates a practice Service.
func NewService(provider llm.Provider, cfg pathgen.Config, events store.EventRepo, conf *confidence.Service) *Service {
	return &Service{provider: provider, config: cfg, events: events, confidence: conf}
}

// questionBatchOutput is the raw LLM response before validation.
type questionBatchOutput struct {
	Questions []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	} `json:"questions"`
}

// GenerateSet builds a practice set for a skill and optional topic. The
// LLM gets the usual attempt budget; after that the deterministic
// template takes over, so generation never fails.
func (s *Service) GenerateSet(ctx context.Context, skill, topic string) *Set {
	ctx = llm.WithPurpose(ctx, "practice")

	if topic == "" {
		topic = skill
	}

	for attempt := 0; attempt < s.config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		questions, err := s.generateBatch(ctx, skill, topic)
		if err == nil {
			return &Set{Skill: skill, Topic: topic, Questions: questions}
		}
	}

	return &Set{Skill: skill, Topic: topic, Questions: fallbackSet(skill, topic)}
}

func (s *Service) generateBatch(ctx context.Context, skill, topic string) ([]progression.Question, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\n", skill)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "\nWrite %d multiple-choice questions of mixed difficulty.", SetSize)

	req := llm.Request{
		System: practiceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      pathgen.QuestionBatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionBatchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	var valid []progression.Question
	for _, q := range raw.Questions {
		question := progression.Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
		if usableQuestion(question) {
			valid = append(valid, question)
		}
	}

	if len(valid) < SetSize {
		return nil, fmt.Errorf("batch has %d valid questions, need %d", len(valid), SetSize)
	}
	return valid[:SetSize], nil
}

func usableQuestion(q progression.Question) bool {
	if q.Text == "" || q.Explanation == "" || len(q.Options) != 4 {
		return false
	}
	if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
		return false
	}
	for _, opt := range q.Options {
		if opt == "" {
			return false
		}
	}
	return true
}

// Submit scores an answered set, records the attempt, and applies the
// practice evidence to the user's confidence.
func (s *Service) Submit(ctx context.Context, userID string, set *Set, answers []int, timeTakenSecs int) (*Result, error) {
	eval := checkpoint.Evaluate(set.Questions, answers, 0)

	attempt := store.PracticeAttemptData{
		UserID:         userID,
		Skill:          set.Skill,
		Topic:          set.Topic,
		Score:          eval.Score,
		CorrectCount:   eval.CorrectCount,
		TotalQuestions: eval.TotalQuestions,
		TimeTakenSecs:  timeTakenSecs,
	}
	if err := s.events.AppendPracticeAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("record practice attempt: %w", err)
	}

	profile, err := s.confidence.Record(ctx, userID, set.Skill, confidence.Event{
		Kind:  confidence.KindPractice,
		Score: eval.Score,
	})
	if err != nil {
		return nil, fmt.Errorf("apply practice evidence: %w", err)
	}

	return &Result{
		Score:          eval.Score,
		CorrectCount:   eval.CorrectCount,
		TotalQuestions: eval.TotalQuestions,
		Feedback:       eval.Feedback,
		NewConfidence:  profile.Confidence,
	}, nil
}

// Analytics summarizes a user's practice history for one skill (or all
// skills when skill is empty).
type Analytics struct {
	Attempts  int
	AvgScore  float64
	BestScore float64
}

// History computes practice analytics from the attempt log.
func (s *Service) History(ctx context.Context, userID, skill string) (*Analytics, error) {
	attempts, err := s.events.PracticeHistory(ctx, userID, skill, 0)
	if err != nil {
		return nil, fmt.Errorf("load practice history: %w", err)
	}

	a := &Analytics{Attempts: len(attempts)}
	if len(attempts) == 0 {
		return a, nil
	}

	var total float64
	for _, at := range attempts {
		total += at.Score
		if at.Score > a.BestScore {
			a.BestScore = at.Score
		}
	}
	a.AvgScore = total / float64(len(attempts))
	return a, nil
}
