package progression

import "fmt"

// ActionType identifies one of the four fixed learning-action slots in a
// module. Every module carries exactly one of each, in declaration order,
// with the checkpoint always last.
type ActionType string

const (
	ActionOverview   ActionType = "overview"
	ActionCourse     ActionType = "course"
	ActionHandsOn    ActionType = "hands_on"
	ActionCheckpoint ActionType = "checkpoint"
)

// ActionOrder is the fixed slot order for every module.
var ActionOrder = [4]ActionType{ActionOverview, ActionCourse, ActionHandsOn, ActionCheckpoint}

// ParseActionType validates a wire-format action type.
func ParseActionType(s string) (ActionType, error) {
	switch ActionType(s) {
	case ActionOverview, ActionCourse, ActionHandsOn, ActionCheckpoint:
		return ActionType(s), nil
	}
	return "", fmt.Errorf("unknown action type %q", s)
}

// ModuleStatus is the lifecycle state of a module. Transitions only move
// forward: locked → active → completed.
type ModuleStatus string

const (
	StatusLocked    ModuleStatus = "locked"
	StatusActive    ModuleStatus = "active"
	StatusCompleted ModuleStatus = "completed"
)

// ParseModuleStatus validates a wire-format module status.
func ParseModuleStatus(s string) (ModuleStatus, error) {
	switch ModuleStatus(s) {
	case StatusLocked, StatusActive, StatusCompleted:
		return ModuleStatus(s), nil
	}
	return "", fmt.Errorf("unknown module status %q", s)
}

// Question is a single checkpoint question: exactly four options, one
// correct index, and an explanation shown with feedback.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// DefaultPassThreshold is the checkpoint pass mark in percent.
const DefaultPassThreshold = 70.0

// Action is one learning activity inside a module. The resource fields
// (Platform, URL, DurationMins) apply to the three content slots; Questions
// and PassThreshold apply only to the checkpoint slot.
type Action struct {
	Type         ActionType
	Title        string
	Description  string
	Platform     string
	URL          string
	DurationMins int
	Completed    bool

	Questions     []Question
	PassThreshold float64
}

// Module is a 2-4 hour unit of a skill's curriculum with four action slots.
// ID is 1-indexed and defines the linear prerequisite chain.
type Module struct {
	ID                 int
	Name               string
	Description        string
	LearningObjectives []string
	CompletionCriteria string
	EstimatedHours     int
	Status             ModuleStatus
	Actions            []Action
}

// Checkpoint returns the module's checkpoint action, or nil if the module
// is malformed.
func (m *Module) Checkpoint() *Action {
	for i := range m.Actions {
		if m.Actions[i].Type == ActionCheckpoint {
			return &m.Actions[i]
		}
	}
	return nil
}

// ActionsCompleted counts the module's completed action slots.
func (m *Module) ActionsCompleted() int {
	n := 0
	for _, a := range m.Actions {
		if a.Completed {
			n++
		}
	}
	return n
}

// Path is one skill's learning path within a session. CurrentModule is a
// 1-indexed pointer that only moves forward; when it exceeds TotalModules
// the path is finished.
type Path struct {
	SessionID     string
	UserID        string
	Skill         string
	Difficulty    string
	TotalModules  int
	CurrentModule int
	Completed     bool
	Modules       []Module

	// Version is the store's optimistic-concurrency token. Zero for paths
	// not yet persisted.
	Version int
}

// ActiveModule returns the module the CurrentModule pointer addresses,
// or nil when the path is finished.
func (p *Path) ActiveModule() *Module {
	if p.CurrentModule < 1 || p.CurrentModule > len(p.Modules) {
		return nil
	}
	return &p.Modules[p.CurrentModule-1]
}

// Module returns the module with the given 1-indexed id, or nil.
func (p *Path) Module(id int) *Module {
	if id < 1 || id > len(p.Modules) {
		return nil
	}
	return &p.Modules[id-1]
}
