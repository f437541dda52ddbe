package store

import (
	"context"
	"fmt"

	"github.com/plaroindia/Pearl/ent"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
	"github.com/plaroindia/Pearl/ent/llmrequestevent"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendCheckpointResult(ctx context.Context, data CheckpointResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckpointResult.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetSkill(data.Skill).
		SetModuleID(data.ModuleID).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetCorrectCount(data.CorrectCount).
		SetTotalQuestions(data.TotalQuestions).
		SetAnswers(data.Answers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkpoint result: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendPracticeAttempt(ctx context.Context, data PracticeAttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeAttempt.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSkill(data.Skill).
		SetTopic(data.Topic).
		SetScore(data.Score).
		SetCorrectCount(data.CorrectCount).
		SetTotalQuestions(data.TotalQuestions).
		SetTimeTakenSecs(data.TimeTakenSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) PracticeHistory(ctx context.Context, userID, skill string, limit int) ([]PracticeAttemptData, error) {
	q := r.client.PracticeAttempt.Query().
		Where(practiceattempt.UserID(userID))
	if skill != "" {
		q = q.Where(practiceattempt.Skill(skill))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.Order(ent.Desc(practiceattempt.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice attempts: %w", err)
	}

	out := make([]PracticeAttemptData, len(rows))
	for i, row := range rows {
		out[i] = PracticeAttemptData{
			UserID:         row.UserID,
			Skill:          row.Skill,
			Topic:          row.Topic,
			Score:          row.Score,
			CorrectCount:   row.CorrectCount,
			TotalQuestions: row.TotalQuestions,
			TimeTakenSecs:  row.TimeTakenSecs,
		}
	}
	return out, nil
}

func (r *eventRepo) CheckpointPassRate(ctx context.Context, userID, skill string) (int, int, error) {
	total, err := r.client.CheckpointResult.Query().
		Where(
			checkpointresult.UserID(userID),
			checkpointresult.Skill(skill),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count checkpoint results: %w", err)
	}

	passed, err := r.client.CheckpointResult.Query().
		Where(
			checkpointresult.UserID(userID),
			checkpointresult.Skill(skill),
			checkpointresult.Passed(true),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count passed checkpoints: %w", err)
	}

	return passed, total, nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMEventSummary, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	out := make([]LLMEventSummary, len(rows))
	for i, row := range rows {
		out[i] = LLMEventSummary{
			Sequence:     row.Sequence,
			Timestamp:    row.Timestamp,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatency   float64 `json:"avg_latency"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	out := make([]LLMUsageStat, len(rows))
	for i, row := range rows {
		out[i] = LLMUsageStat{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatency),
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm model usage: %w", err)
	}

	out := make([]LLMModelUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		}
	}
	return out, nil
}
