// Package catalog holds a curated table of learning resources from trusted
// providers (YouTube, freeCodeCamp, MIT OpenCourseWare). Generated actions
// link to these when the learner's skill matches; unknown skills fall back
// to generated descriptions without URLs.
package catalog

import "strings"

// Kind classifies a resource by how the learner consumes it.
type Kind string

const (
	KindVideo Kind = "video" // watch
	KindTask  Kind = "task"  // hands-on practice
	KindText  Kind = "text"  // reading / coursework
)

// Resource is one curated learning resource.
type Resource struct {
	Title        string
	Platform     string
	URL          string
	Kind         Kind
	Difficulty   string
	DurationMins int
}

var resources = map[string][]Resource{
	"python": {
		{Title: "Python Full Course - freeCodeCamp", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=rfscVS0vtbE", Kind: KindVideo, Difficulty: "beginner", DurationMins: 270},
		{Title: "Python in 100 Seconds", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=x7X9w_GIm1s", Kind: KindVideo, Difficulty: "beginner", DurationMins: 2},
		{Title: "Scientific Computing with Python", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/scientific-computing-with-python/", Kind: KindTask, Difficulty: "intermediate", DurationMins: 300},
		{Title: "Python for Everybody", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/python-for-everybody/", Kind: KindTask, Difficulty: "beginner", DurationMins: 200},
		{Title: "Introduction to Computer Science and Programming in Python", Platform: "MIT OpenCourseWare", URL: "https://ocw.mit.edu/courses/6-0001-introduction-to-computer-science-and-programming-in-python-fall-2016/", Kind: KindText, Difficulty: "advanced", DurationMins: 900},
	},
	"javascript": {
		{Title: "JavaScript Full Course for Beginners", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=PkZNo7MFNFg", Kind: KindVideo, Difficulty: "beginner", DurationMins: 480},
		{Title: "Modern JavaScript Course 2024", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=lkIFF4maKMU", Kind: KindVideo, Difficulty: "intermediate", DurationMins: 600},
		{Title: "JavaScript Algorithms and Data Structures", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Kind: KindTask, Difficulty: "intermediate", DurationMins: 300},
	},
	"react": {
		{Title: "React Course - Beginner's Tutorial", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=bMknfKXIFA8", Kind: KindVideo, Difficulty: "intermediate", DurationMins: 720},
		{Title: "Front End Development Libraries", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/front-end-development-libraries/", Kind: KindTask, Difficulty: "intermediate", DurationMins: 300},
	},
	"sql": {
		{Title: "SQL Tutorial - Full Database Course", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=HXV3zeQKqGY", Kind: KindVideo, Difficulty: "beginner", DurationMins: 240},
		{Title: "Relational Database Certification", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/relational-database/", Kind: KindTask, Difficulty: "intermediate", DurationMins: 300},
	},
	"machine learning": {
		{Title: "Machine Learning Course - freeCodeCamp", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=NWONeJKn6kc", Kind: KindVideo, Difficulty: "advanced", DurationMins: 600},
		{Title: "Introduction to Machine Learning", Platform: "MIT OpenCourseWare", URL: "https://ocw.mit.edu/courses/6-036-introduction-to-machine-learning-fall-2020/", Kind: KindText, Difficulty: "advanced", DurationMins: 1200},
	},
	"git": {
		{Title: "Git and GitHub Tutorial", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=RGOj5yH7evk", Kind: KindVideo, Difficulty: "beginner", DurationMins: 120},
	},
	"rest apis": {
		{Title: "REST API Best Practices", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=SLwpqD8n3d0", Kind: KindVideo, Difficulty: "intermediate", DurationMins: 180},
		{Title: "Build a REST API", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/", Kind: KindTask, Difficulty: "intermediate", DurationMins: 200},
	},
}

// ForSkill returns curated resources for a skill, optionally filtered by
// kind (empty kind matches all). Matching is case-insensitive and tolerates
// qualifiers like "Advanced SQL" or "Python programming". Returns nil when
// the skill has no curated entries.
func ForSkill(skill string, kind Kind) []Resource {
	entries := lookup(skill)
	if entries == nil {
		return nil
	}
	if kind == "" {
		out := make([]Resource, len(entries))
		copy(out, entries)
		return out
	}
	var out []Resource
	for _, r := range entries {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// MixedPath assembles a balanced resource list for a learning preference:
// "video", "reading", "hands_on", or "mixed" (the default for anything
// else). Videos come first, then one practice task, then one text resource,
// with categories dropped when the preference weights them below the cut.
func MixedPath(skill, preference string) []Resource {
	entries := lookup(skill)
	if entries == nil {
		return nil
	}

	byKind := map[Kind][]Resource{}
	for _, r := range entries {
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	w := preferenceWeights(preference)

	var out []Resource
	if w[KindVideo] >= 0.3 {
		out = append(out, take(byKind[KindVideo], 2)...)
	}
	if w[KindTask] >= 0.2 {
		out = append(out, take(byKind[KindTask], 1)...)
	}
	if w[KindText] >= 0.1 {
		out = append(out, take(byKind[KindText], 1)...)
	}
	return out
}

// ContentMix returns the kind weights for a learning preference. The
// optimizer reports these alongside its module ordering.
func ContentMix(preference string) map[string]float64 {
	w := preferenceWeights(preference)
	return map[string]float64{
		string(KindVideo): w[KindVideo],
		string(KindTask):  w[KindTask],
		string(KindText):  w[KindText],
	}
}

func preferenceWeights(preference string) map[Kind]float64 {
	switch preference {
	case "video":
		return map[Kind]float64{KindVideo: 0.7, KindTask: 0.2, KindText: 0.1}
	case "reading":
		return map[Kind]float64{KindText: 0.6, KindVideo: 0.2, KindTask: 0.2}
	case "hands_on":
		return map[Kind]float64{KindTask: 0.6, KindVideo: 0.3, KindText: 0.1}
	default:
		return map[Kind]float64{KindVideo: 0.4, KindTask: 0.4, KindText: 0.2}
	}
}

func lookup(skill string) []Resource {
	key := strings.ToLower(strings.TrimSpace(skill))
	if entries, ok := resources[key]; ok {
		return entries
	}
	// "Advanced SQL" or "Python programming" should still hit the table.
	for name, entries := range resources {
		if strings.Contains(key, name) {
			return entries
		}
	}
	return nil
}

func take(rs []Resource, n int) []Resource {
	if len(rs) < n {
		n = len(rs)
	}
	return rs[:n]
}
