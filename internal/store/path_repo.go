package store

import (
	"context"
	"fmt"

	"github.com/plaroindia/Pearl/ent"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/schema"
	"github.com/plaroindia/Pearl/internal/progression"
)

type pathRepo struct {
	client *ent.Client
}

func (r *pathRepo) Create(ctx context.Context, p *progression.Path) error {
	row, err := r.client.LearningPath.Create().
		SetSessionID(p.SessionID).
		SetUserID(p.UserID).
		SetSkill(p.Skill).
		SetDifficulty(p.Difficulty).
		SetTotalModules(p.TotalModules).
		SetCurrentModule(p.CurrentModule).
		SetCompleted(p.Completed).
		SetModules(docsFromModules(p.Modules)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save learning path: %w", err)
	}
	p.Version = row.Version
	return nil
}

func (r *pathRepo) Get(ctx context.Context, sessionID, skill string) (*progression.Path, error) {
	row, err := r.client.LearningPath.Query().
		Where(
			learningpath.SessionID(sessionID),
			learningpath.Skill(skill),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("path %q/%q: %w", sessionID, skill, ErrNotFound)
		}
		return nil, fmt.Errorf("query learning path: %w", err)
	}
	return pathFromRow(row), nil
}

func (r *pathRepo) List(ctx context.Context, sessionID string) ([]*progression.Path, error) {
	rows, err := r.client.LearningPath.Query().
		Where(learningpath.SessionID(sessionID)).
		Order(ent.Asc(learningpath.FieldSkill)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learning paths: %w", err)
	}
	paths := make([]*progression.Path, len(rows))
	for i, row := range rows {
		paths[i] = pathFromRow(row)
	}
	return paths, nil
}

// UpdateCAS predicates the write on the version the caller read. A zero
// row count means another writer got there first.
func (r *pathRepo) UpdateCAS(ctx context.Context, p *progression.Path) error {
	n, err := r.client.LearningPath.Update().
		Where(
			learningpath.SessionID(p.SessionID),
			learningpath.Skill(p.Skill),
			learningpath.Version(p.Version),
		).
		SetCurrentModule(p.CurrentModule).
		SetCompleted(p.Completed).
		SetModules(docsFromModules(p.Modules)).
		SetVersion(p.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update learning path: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("path %q/%q version %d: %w", p.SessionID, p.Skill, p.Version, ErrConflict)
	}
	p.Version++
	return nil
}

func pathFromRow(row *ent.LearningPath) *progression.Path {
	return &progression.Path{
		SessionID:     row.SessionID,
		UserID:        row.UserID,
		Skill:         row.Skill,
		Difficulty:    row.Difficulty,
		TotalModules:  row.TotalModules,
		CurrentModule: row.CurrentModule,
		Completed:     row.Completed,
		Modules:       modulesFromDocs(row.Modules),
		Version:       row.Version,
	}
}

func docsFromModules(mods []progression.Module) []schema.ModuleDoc {
	docs := make([]schema.ModuleDoc, len(mods))
	for i, m := range mods {
		actions := make([]schema.ActionDoc, len(m.Actions))
		for j, a := range m.Actions {
			questions := make([]schema.QuestionDoc, len(a.Questions))
			for k, q := range a.Questions {
				questions[k] = schema.QuestionDoc{
					Question:     q.Text,
					Options:      q.Options,
					CorrectIndex: q.CorrectIndex,
					Explanation:  q.Explanation,
				}
			}
			actions[j] = schema.ActionDoc{
				Type:          string(a.Type),
				Title:         a.Title,
				Description:   a.Description,
				Platform:      a.Platform,
				URL:           a.URL,
				DurationMins:  a.DurationMins,
				Completed:     a.Completed,
				Questions:     questions,
				PassThreshold: a.PassThreshold,
			}
		}
		docs[i] = schema.ModuleDoc{
			ModuleID:           m.ID,
			Name:               m.Name,
			Description:        m.Description,
			LearningObjectives: m.LearningObjectives,
			CompletionCriteria: m.CompletionCriteria,
			EstimatedHours:     m.EstimatedHours,
			Status:             string(m.Status),
			Actions:            actions,
		}
	}
	return docs
}

func modulesFromDocs(docs []schema.ModuleDoc) []progression.Module {
	mods := make([]progression.Module, len(docs))
	for i, d := range docs {
		actions := make([]progression.Action, len(d.Actions))
		for j, a := range d.Actions {
			questions := make([]progression.Question, len(a.Questions))
			for k, q := range a.Questions {
				questions[k] = progression.Question{
					Text:         q.Question,
					Options:      q.Options,
					CorrectIndex: q.CorrectIndex,
					Explanation:  q.Explanation,
				}
			}
			actions[j] = progression.Action{
				Type:          progression.ActionType(a.Type),
				Title:         a.Title,
				Description:   a.Description,
				Platform:      a.Platform,
				URL:           a.URL,
				DurationMins:  a.DurationMins,
				Completed:     a.Completed,
				Questions:     questions,
				PassThreshold: a.PassThreshold,
			}
		}
		mods[i] = progression.Module{
			ID:                 d.ModuleID,
			Name:               d.Name,
			Description:        d.Description,
			LearningObjectives: d.LearningObjectives,
			CompletionCriteria: d.CompletionCriteria,
			EstimatedHours:     d.EstimatedHours,
			Status:             progression.ModuleStatus(d.Status),
			Actions:            actions,
		}
	}
	return mods
}
