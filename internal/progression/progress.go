package progression

// Progress summarizes a path's completion state for reporting.
type Progress struct {
	Skill            string
	Difficulty       string
	TotalModules     int
	CompletedModules int
	CurrentModule    int
	ActionsCompleted int
	TotalActions     int
	Percentage       float64
	PathCompleted    bool
}

// Summarize computes completion counts and percentage for a path.
func Summarize(p *Path) Progress {
	prog := Progress{
		Skill:         p.Skill,
		Difficulty:    p.Difficulty,
		TotalModules:  p.TotalModules,
		CurrentModule: p.CurrentModule,
		PathCompleted: p.Completed,
	}
	for _, m := range p.Modules {
		if m.Status == StatusCompleted {
			prog.CompletedModules++
		}
		prog.ActionsCompleted += m.ActionsCompleted()
		prog.TotalActions += len(m.Actions)
	}
	if prog.TotalModules > 0 {
		prog.Percentage = float64(prog.CompletedModules) / float64(prog.TotalModules) * 100
	}
	return prog
}
