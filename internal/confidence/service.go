package confidence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plaroindia/Pearl/internal/store"
)

// Service applies evidence events to persisted skill profiles.
type Service struct {
	profiles store.ProfileRepo
}

// NewService creates a Service over the given profile repo.
func NewService(profiles store.ProfileRepo) *Service {
	return &Service{profiles: profiles}
}

// Record applies one evidence event to the user's profile for a skill,
// creating the profile on first evidence. Returns the updated profile.
func (s *Service) Record(ctx context.Context, userID, skill string, e Event) (*store.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID, skill)
	if errors.Is(err, store.ErrNotFound) {
		profile = &store.Profile{
			UserID:    userID,
			SkillName: skill,
			Evidence:  map[string]int{},
		}
	} else if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	profile.Confidence = Apply(profile.Confidence, e)
	if profile.Evidence == nil {
		profile.Evidence = map[string]int{}
	}
	profile.Evidence[string(e.Kind)]++

	if e.Kind == KindPractice {
		now := time.Now().UTC()
		profile.PracticeCount++
		profile.LastPracticedAt = &now
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// Confidence returns the user's confidence for a skill, zero when no
// profile exists yet.
func (s *Service) Confidence(ctx context.Context, userID, skill string) (float64, error) {
	profile, err := s.profiles.Get(ctx, userID, skill)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return profile.Confidence, nil
}
