package pathgen

// ModuleSpec is a module skeleton produced by the decomposer, before
// actions are attached. IDs and status are assigned when the path is
// assembled.
type ModuleSpec struct {
	// Name is the module title, e.g. "SQL Joins and Aggregation".
	Name string

	// Description summarizes what the module covers.
	Description string

	// LearningObjectives lists 2-4 concrete outcomes.
	LearningObjectives []string

	// CompletionCriteria states how the learner proves the module is done.
	CompletionCriteria string

	// EstimatedHours is the expected study effort, rounded to whole hours.
	EstimatedHours int
}

// DecomposeInput holds the context for a decomposition request.
type DecomposeInput struct {
	// Skill is the target skill, e.g. "Python" or "Data Modeling".
	Skill string

	// Difficulty calibrates the plan: "beginner", "intermediate",
	// or "advanced".
	Difficulty string

	// GoalContext is the learner's stated career goal, when known.
	// Included in the prompt for better module framing.
	GoalContext string
}
