package confidence

import (
	"context"
	"errors"
	"fmt"

	"github.com/plaroindia/Pearl/internal/store"
)

// SkillGap is one row of a gap analysis.
type SkillGap struct {
	Skill      string
	Confidence float64
	Status     Status
	Gap        float64
}

// Report summarizes how far a user is from their target skill set.
type Report struct {
	Skills         []SkillGap
	Readiness      float64 // 0-100
	ReadinessLevel string
}

// GapReport builds a gap analysis over the required skills. Skills with
// no profile yet count as zero confidence. Readiness is total confidence
// against a DefaultTarget for every skill, as a percentage.
func (s *Service) GapReport(ctx context.Context, userID string, required []string) (*Report, error) {
	if len(required) == 0 {
		return &Report{ReadinessLevel: readinessLevel(0)}, nil
	}

	report := &Report{Skills: make([]SkillGap, 0, len(required))}
	var total float64
	for _, skill := range required {
		conf := 0.0
		profile, err := s.profiles.Get(ctx, userID, skill)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		if profile != nil {
			conf = profile.Confidence
		}
		total += conf
		report.Skills = append(report.Skills, SkillGap{
			Skill:      skill,
			Confidence: conf,
			Status:     StatusOf(conf),
			Gap:        GapSeverity(conf, DefaultTarget),
		})
	}

	readiness := total / (float64(len(required)) * DefaultTarget) * 100
	if readiness > 100 {
		readiness = 100
	}
	report.Readiness = readiness
	report.ReadinessLevel = readinessLevel(readiness)
	return report, nil
}

func readinessLevel(readiness float64) string {
	switch {
	case readiness >= 90:
		return "job_ready"
	case readiness >= 70:
		return "nearly_ready"
	case readiness >= 50:
		return "progressing_well"
	case readiness >= 30:
		return "building_foundation"
	default:
		return "getting_started"
	}
}
