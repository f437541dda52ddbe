package practice

import (
	"fmt"

	"github.com/plaroindia/Pearl/internal/progression"
)

// fallbackSet is the deterministic practice bank used when question
// generation is unavailable. Like the checkpoint fallback, it covers
// learning technique rather than topic content so it stays answerable
// for any skill.
func fallbackSet(skill, topic string) []progression.Question {
	return []progression.Question{
		{
			Text: fmt.Sprintf("You want to get better at %s. What should a practice session focus on?", topic),
			Options: []string{
				"Material slightly beyond your current comfort level",
				"Only material you have already mastered",
				"The hardest material available, regardless of level",
				"Whatever requires the least effort",
			},
			CorrectIndex: 0,
			Explanation:  "Practice just past your comfort level produces the fastest improvement.",
		},
		{
			Text: "How often should you review material you got wrong?",
			Options: []string{
				"Never; move on to new material",
				"Soon after the mistake, then again after a gap",
				"Only right before an assessment",
				"Once a year",
			},
			CorrectIndex: 1,
			Explanation:  "Spaced review of mistakes is what converts errors into retention.",
		},
		{
			Text: fmt.Sprintf("What signals real progress in %s?", skill),
			Options: []string{
				"Hours spent watching tutorials",
				"Number of bookmarked articles",
				"Solving problems you previously could not",
				"Confidence without testing it",
			},
			CorrectIndex: 2,
			Explanation:  "Progress shows up as capability on problems that used to be out of reach.",
		},
		{
			Text: "After finishing a practice set, what is the most useful next step?",
			Options: []string{
				"Immediately start another set",
				"Forget about it",
				"Only celebrate the correct answers",
				"Read the explanations for every question you missed",
			},
			CorrectIndex: 3,
			Explanation:  "The explanations on missed questions are where the learning happens.",
		},
		{
			Text: fmt.Sprintf("Why mix easier and harder questions when practicing %s?", topic),
			Options: []string{
				"Easier questions maintain fundamentals while harder ones stretch you",
				"It makes the score look better",
				"Hard questions are a waste of time",
				"Easy questions are a waste of time",
			},
			CorrectIndex: 0,
			Explanation:  "Mixed difficulty reinforces fundamentals and builds new capability at once.",
		},
	}
}
