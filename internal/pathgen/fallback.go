package pathgen

import (
	"fmt"
	"strings"

	"github.com/plaroindia/Pearl/internal/progression"
)

// FallbackModules returns a deterministic 4-module plan used when LLM
// decomposition is unavailable. The template walks fundamentals to
// applied work and reads sensibly for any skill name.
func FallbackModules(skill, difficulty string) []ModuleSpec {
	depth := "core"
	if difficulty == "advanced" {
		depth = "advanced"
	}
	return []ModuleSpec{
		{
			Name:        fmt.Sprintf("%s Fundamentals", skill),
			Description: fmt.Sprintf("The essential concepts and vocabulary of %s.", skill),
			LearningObjectives: []string{
				fmt.Sprintf("Explain the core ideas behind %s", skill),
				"Recognize the standard terminology",
			},
			CompletionCriteria: "Describe the fundamentals in your own words",
			EstimatedHours:     4,
		},
		{
			Name:        fmt.Sprintf("Working with %s", skill),
			Description: fmt.Sprintf("The %s techniques used day to day.", depth),
			LearningObjectives: []string{
				fmt.Sprintf("Apply common %s techniques to small tasks", skill),
				"Identify which technique fits which situation",
			},
			CompletionCriteria: "Complete guided exercises without reference material",
			EstimatedHours:     6,
		},
		{
			Name:        fmt.Sprintf("%s in Practice", skill),
			Description: fmt.Sprintf("Build something real with %s.", skill),
			LearningObjectives: []string{
				fmt.Sprintf("Complete an end-to-end project using %s", skill),
				"Debug and iterate on your own work",
			},
			CompletionCriteria: "Finish a small project from scratch",
			EstimatedHours:     8,
		},
		{
			Name:        fmt.Sprintf("Advanced %s and Review", skill),
			Description: "Deepen weak areas and consolidate what you learned.",
			LearningObjectives: []string{
				"Handle edge cases and harder scenarios",
				"Review and connect all earlier modules",
			},
			CompletionCriteria: "Pass the final checkpoint",
			EstimatedHours:     6,
		},
	}
}

// FallbackActions returns deterministic content actions used when action
// generation is unavailable. Templates carry no resource links; the
// catalog enrichment pass fills those in where it can.
func FallbackActions(spec ModuleSpec) map[progression.ActionType]ActionContent {
	return map[progression.ActionType]ActionContent{
		progression.ActionOverview: {
			Title:        fmt.Sprintf("Overview: %s", spec.Name),
			Description:  fmt.Sprintf("A quick orientation to %s. %s", spec.Name, spec.Description),
			DurationMins: 15,
		},
		progression.ActionCourse: {
			Title:        fmt.Sprintf("Course: %s", spec.Name),
			Description:  fmt.Sprintf("Structured lessons covering: %s.", strings.Join(spec.LearningObjectives, "; ")),
			DurationMins: 60,
		},
		progression.ActionHandsOn: {
			Title:        fmt.Sprintf("Hands-on: %s", spec.Name),
			Description:  fmt.Sprintf("Apply what you learned. %s", spec.CompletionCriteria),
			DurationMins: 90,
		},
	}
}

// FallbackQuestions returns a deterministic checkpoint bank used when
// question generation is unavailable. The questions cover study habits
// rather than module content, so they remain answerable for any skill.
func FallbackQuestions(skill string, spec ModuleSpec) []progression.Question {
	return []progression.Question{
		{
			Text: fmt.Sprintf("Which approach is most effective when starting to learn %s?", spec.Name),
			Options: []string{
				"Work through the fundamentals before attempting advanced material",
				"Skip directly to the hardest topics",
				"Memorize terminology without practicing",
				"Avoid hands-on exercises until the end",
			},
			CorrectIndex: 0,
			Explanation:  "Fundamentals first gives later material something to attach to.",
		},
		{
			Text: fmt.Sprintf("What is the best way to confirm you understand %s?", skill),
			Options: []string{
				"Re-read the same material repeatedly",
				"Apply it to a practical task and check the result",
				"Watch more videos on the topic",
				"Move on as soon as it feels familiar",
			},
			CorrectIndex: 1,
			Explanation:  "Applying knowledge exposes gaps that passive review hides.",
		},
		{
			Text: "When you get stuck on an exercise, what should you do first?",
			Options: []string{
				"Give up and skip the module",
				"Copy a solution without reading it",
				"Break the problem into smaller steps and retry",
				"Wait until the checkpoint to find out what you missed",
			},
			CorrectIndex: 2,
			Explanation:  "Decomposing a problem usually reveals which step is failing.",
		},
		{
			Text: fmt.Sprintf("Why does this path end each module, including %q, with a checkpoint?", spec.Name),
			Options: []string{
				"To add time to the schedule",
				"To rank learners against each other",
				"To replace the hands-on work",
				"To verify the objectives are met before harder material unlocks",
			},
			CorrectIndex: 3,
			Explanation:  "Checkpoints gate progression so gaps do not compound in later modules.",
		},
	}
}
