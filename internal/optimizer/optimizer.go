// Package optimizer orders a user's skill gaps into a study plan. The
// plan is advisory: it never mutates stored paths or profiles.
package optimizer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/plaroindia/Pearl/internal/llm"
)

// Input is everything the optimizer considers.
type Input struct {
	// Confidences maps skill name to current confidence [0, 1]. Skills
	// absent from the map count as zero.
	Confidences map[string]float64

	// RequiredSkills is the target skill set in declaration order.
	// Declaration order breaks priority ties.
	RequiredSkills []string

	// TimeBudgetWeeks is the total study budget to spread over the plan.
	TimeBudgetWeeks int

	// Preference is the learning style: "video", "reading", "hands_on",
	// or "mixed".
	Preference string
}

// Entry is one skill's slot in the plan, in priority order.
type Entry struct {
	Skill          string
	Gap            float64
	Priority       int // 1 is highest
	EstimatedWeeks int
	// SkipModules lists module IDs the learner can skip. Populated for
	// skills the learner already knows well (confidence > 0.7), where
	// the two fundamentals modules add nothing.
	SkipModules []int
}

// Plan is the optimizer output.
type Plan struct {
	Entries []Entry

	// ContentMix weights content kinds (video, practice, text) for the
	// learner's preference.
	ContentMix map[string]float64

	// ParallelTracks suggests skill pairs that can be studied together
	// because both gaps are small.
	ParallelTracks [][2]string

	// Source records whether the ordering came from the LLM or the
	// deterministic heuristic.
	Source string
}

// Config controls the optimizer's LLM attempt.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.3}
}

// Optimizer builds study plans, preferring the LLM and falling back to a
// deterministic heuristic.
type Optimizer struct {
	provider llm.Provider
	config   Config
}

// New creates an Optimizer with the given provider and config. A nil
// provider always uses the heuristic.
func New(provider llm.Provider, cfg Config) *Optimizer {
	return &Optimizer{provider: provider, config: cfg}
}

// Optimize produces a plan for the input. Any LLM failure falls back to
// the heuristic, so the call only errors on empty input.
func (o *Optimizer) Optimize(ctx context.Context, in Input) (*Plan, error) {
	if len(in.RequiredSkills) == 0 {
		return nil, fmt.Errorf("no skills to plan")
	}

	if o.provider != nil {
		if plan, err := o.generate(ctx, in); err == nil {
			return plan, nil
		}
	}

	return Heuristic(in), nil
}

// planOutput is the raw LLM response before validation.
type planOutput struct {
	Entries []struct {
		Skill          string `json:"skill"`
		Priority       int    `json:"priority"`
		EstimatedWeeks int    `json:"estimated_weeks"`
		SkipModules    []int  `json:"skip_modules"`
	} `json:"entries"`
}

func (o *Optimizer) generate(ctx context.Context, in Input) (*Plan, error) {
	ctx = llm.WithPurpose(ctx, "optimize")

	req := llm.Request{
		System: optimizeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOptimizeMessage(in)},
		},
		Schema:      PlanSchema,
		MaxTokens:   o.config.MaxTokens,
		Temperature: o.config.Temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw planOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	known := map[string]bool{}
	for _, s := range in.RequiredSkills {
		known[s] = true
	}
	if len(raw.Entries) != len(in.RequiredSkills) {
		return nil, fmt.Errorf("plan covers %d of %d skills", len(raw.Entries), len(in.RequiredSkills))
	}

	entries := make([]Entry, len(raw.Entries))
	seen := map[string]bool{}
	for i, e := range raw.Entries {
		if !known[e.Skill] {
			return nil, fmt.Errorf("plan names unknown skill %q", e.Skill)
		}
		if seen[e.Skill] {
			return nil, fmt.Errorf("plan repeats skill %q", e.Skill)
		}
		seen[e.Skill] = true
		weeks := e.EstimatedWeeks
		if weeks < 1 {
			weeks = 1
		}
		entries[i] = Entry{
			Skill:          e.Skill,
			Gap:            gapFor(in, e.Skill),
			Priority:       i + 1,
			EstimatedWeeks: weeks,
			SkipModules:    e.SkipModules,
		}
	}

	// The ordering contract holds regardless of which source produced
	// the plan: biggest gap first.
	for i := 1; i < len(entries); i++ {
		if entries[i].Gap > entries[i-1].Gap {
			return nil, fmt.Errorf("plan is not ordered by descending gap")
		}
	}

	return &Plan{
		Entries:        entries,
		ContentMix:     contentMix(in.Preference),
		ParallelTracks: parallelTracks(entries),
		Source:         "llm",
	}, nil
}

// Heuristic is the deterministic fallback ordering: largest gap first,
// declaration order breaking ties.
func Heuristic(in Input) *Plan {
	entries := make([]Entry, len(in.RequiredSkills))
	for i, skill := range in.RequiredSkills {
		entries[i] = Entry{
			Skill: skill,
			Gap:   gapFor(in, skill),
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Gap > entries[j].Gap
	})

	var totalGap float64
	for _, e := range entries {
		totalGap += e.Gap
	}

	budget := in.TimeBudgetWeeks
	if budget < len(entries) {
		budget = len(entries)
	}

	for i := range entries {
		entries[i].Priority = i + 1

		weeks := 1
		if totalGap > 0 {
			weeks = int(float64(budget)*entries[i].Gap/totalGap + 0.5)
			if weeks < 1 {
				weeks = 1
			}
		}
		entries[i].EstimatedWeeks = weeks

		if conf := in.Confidences[entries[i].Skill]; conf > 0.7 {
			entries[i].SkipModules = []int{1, 2}
		}
	}

	return &Plan{
		Entries:        entries,
		ContentMix:     contentMix(in.Preference),
		ParallelTracks: parallelTracks(entries),
		Source:         "heuristic",
	}
}

// BudgetWeeks converts total estimated module hours into a study budget
// in whole weeks, given a weekly hour allowance. Never less than one.
func BudgetWeeks(totalHours int, hoursPerWeek float64) int {
	if hoursPerWeek <= 0 {
		hoursPerWeek = 10
	}
	weeks := int(math.Ceil(float64(totalHours) / hoursPerWeek))
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

func gapFor(in Input, skill string) float64 {
	gap := 1 - in.Confidences[skill]
	if gap < 0 {
		return 0
	}
	return gap
}

func contentMix(preference string) map[string]float64 {
	switch preference {
	case "video":
		return map[string]float64{"video": 0.7, "practice": 0.2, "text": 0.1}
	case "reading":
		return map[string]float64{"text": 0.6, "video": 0.2, "practice": 0.2}
	case "hands_on":
		return map[string]float64{"practice": 0.6, "video": 0.3, "text": 0.1}
	default:
		return map[string]float64{"video": 0.4, "practice": 0.4, "text": 0.2}
	}
}

// parallelTracks pairs adjacent plan entries whose gaps are both small
// enough to study side by side.
func parallelTracks(entries []Entry) [][2]string {
	var tracks [][2]string
	for i := 0; i+1 < len(entries); i += 2 {
		if entries[i].Gap <= 0.4 && entries[i+1].Gap <= 0.4 {
			tracks = append(tracks, [2]string{entries[i].Skill, entries[i+1].Skill})
		}
	}
	return tracks
}

const optimizeSystemPrompt = `You are a career learning mentor who
sequences skill development. Order the skills so the biggest gaps get
attention first, and spread the weekly budget across them.`

func buildOptimizeMessage(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly budget: %d weeks total\n", in.TimeBudgetWeeks)
	fmt.Fprintf(&b, "Learning preference: %s\n", in.Preference)
	b.WriteString("Skills (current confidence 0-1):\n")
	for _, s := range in.RequiredSkills {
		fmt.Fprintf(&b, "- %s: %.2f\n", s, in.Confidences[s])
	}
	b.WriteString("\nReturn one entry per skill, highest priority first. ")
	b.WriteString("Suggest skip_modules [1,2] only for skills above 0.7 confidence.")
	return b.String()
}
