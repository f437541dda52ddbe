package store

import (
	"context"
	"fmt"

	"github.com/plaroindia/Pearl/ent"
	"github.com/plaroindia/Pearl/ent/skillprofile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID, skillName string) (*Profile, error) {
	row, err := r.client.SkillProfile.Query().
		Where(
			skillprofile.UserID(userID),
			skillprofile.SkillName(skillName),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("profile %q/%q: %w", userID, skillName, ErrNotFound)
		}
		return nil, fmt.Errorf("query skill profile: %w", err)
	}
	return profileFromRow(row), nil
}

func (r *profileRepo) ListByUser(ctx context.Context, userID string) ([]*Profile, error) {
	rows, err := r.client.SkillProfile.Query().
		Where(skillprofile.UserID(userID)).
		Order(ent.Asc(skillprofile.FieldSkillName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skill profiles: %w", err)
	}
	profiles := make([]*Profile, len(rows))
	for i, row := range rows {
		profiles[i] = profileFromRow(row)
	}
	return profiles, nil
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	existing, err := r.client.SkillProfile.Query().
		Where(
			skillprofile.UserID(p.UserID),
			skillprofile.SkillName(p.SkillName),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query skill profile: %w", err)
	}

	if existing == nil {
		create := r.client.SkillProfile.Create().
			SetUserID(p.UserID).
			SetSkillName(p.SkillName).
			SetConfidence(p.Confidence).
			SetEvidence(p.Evidence).
			SetPracticeCount(p.PracticeCount)
		if p.LastPracticedAt != nil {
			create = create.SetLastPracticedAt(*p.LastPracticedAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create skill profile: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetConfidence(p.Confidence).
		SetEvidence(p.Evidence).
		SetPracticeCount(p.PracticeCount)
	if p.LastPracticedAt != nil {
		update = update.SetLastPracticedAt(*p.LastPracticedAt)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update skill profile: %w", err)
	}
	return nil
}

func profileFromRow(row *ent.SkillProfile) *Profile {
	evidence := row.Evidence
	if evidence == nil {
		evidence = map[string]int{}
	}
	return &Profile{
		UserID:          row.UserID,
		SkillName:       row.SkillName,
		Confidence:      row.Confidence,
		Evidence:        evidence,
		PracticeCount:   row.PracticeCount,
		LastPracticedAt: row.LastPracticedAt,
	}
}
