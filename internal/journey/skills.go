package journey

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plaroindia/Pearl/internal/llm"
)

const extractSystemPrompt = `You are a career learning mentor. Given a
career goal, list the core technical skills the learner must build.
Return 5-7 skills, most fundamental first, using standard industry names.`

// SkillListSchema defines the JSON schema for skill extraction responses.
var SkillListSchema = &llm.Schema{
	Name:        "skill-list",
	Description: "Core technical skills for a career goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills": map[string]any{
				"type":        "array",
				"minItems":    5,
				"maxItems":    7,
				"items":       map[string]any{"type": "string"},
				"description": "5-7 skill names, most fundamental first",
			},
		},
		"required":             []any{"skills"},
		"additionalProperties": false,
	},
}

// extractSkills derives the skill set for a career goal. LLM first; the
// role-keyword table covers outages.
func (s *Service) extractSkills(ctx context.Context, goal string) []string {
	ctx = llm.WithPurpose(ctx, "skills")

	req := llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Career goal: %s", goal)},
		},
		Schema:    SkillListSchema,
		MaxTokens: 512,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err == nil {
		var raw struct {
			Skills []string `json:"skills"`
		}
		if jerr := json.Unmarshal(resp.Content, &raw); jerr == nil {
			skills := cleanSkills(raw.Skills)
			if len(skills) >= 5 {
				return skills[:min(len(skills), 7)]
			}
		}
	}

	return FallbackSkills(goal)
}

func cleanSkills(skills []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	return out
}

// roleSkills maps role keywords to a default skill set. Checked in order
// so more specific phrases win over generic ones.
var roleSkills = []struct {
	keyword string
	skills  []string
}{
	{"machine learning", []string{"Python", "Machine Learning", "Statistics", "TensorFlow", "SQL"}},
	{"backend", []string{"Python", "SQL", "REST APIs", "Git", "Docker"}},
	{"frontend", []string{"JavaScript", "React", "CSS", "HTML", "TypeScript"}},
	{"fullstack", []string{"JavaScript", "Python", "React", "Node.js", "SQL"}},
	{"full stack", []string{"JavaScript", "Python", "React", "Node.js", "SQL"}},
	{"data", []string{"Python", "SQL", "Statistics", "Data Analysis", "Pandas"}},
	{"devops", []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux"}},
	{"mobile", []string{"Flutter", "React Native", "Swift", "Kotlin", "Git"}},
	{"design", []string{"Figma", "UI/UX Design", "Prototyping", "User Research", "Communication"}},
}

// FallbackSkills returns a skill set from role keywords in the goal, or a
// generic professional set when nothing matches.
func FallbackSkills(goal string) []string {
	lower := strings.ToLower(goal)
	for _, m := range roleSkills {
		if strings.Contains(lower, m.keyword) {
			return append([]string(nil), m.skills...)
		}
	}
	return []string{"Communication", "Problem Solving", "Critical Thinking", "Teamwork", "Adaptability"}
}
