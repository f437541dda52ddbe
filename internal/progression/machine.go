package progression

import (
	"errors"
	"fmt"
)

// Domain-validation failures. Callers surface these as invalid-input or
// not-found results; they are never retried.
var (
	ErrModuleNotFound  = errors.New("module not found")
	ErrModuleLocked    = errors.New("module is locked")
	ErrModuleCompleted = errors.New("module already completed")
	ErrActionIndex     = errors.New("action index out of range")
	ErrCheckpointGated = errors.New("checkpoint actions complete only through submission")
	ErrNoCheckpoint    = errors.New("module has no checkpoint action")
)

// Transition reports what a completion event changed at the module level.
type Transition struct {
	ModuleCompleted int  // 1-indexed id of the module that completed, 0 if none
	UnlockedModule  int  // 1-indexed id of the successor that became active, 0 if none
	PathCompleted   bool // true when the final module completed
}

// NewPath assembles a path from generated modules: module 1 starts active,
// all others locked, and the current-module pointer starts at 1.
func NewPath(sessionID, userID, skill, difficulty string, modules []Module) *Path {
	for i := range modules {
		modules[i].ID = i + 1
		if i == 0 {
			modules[i].Status = StatusActive
		} else {
			modules[i].Status = StatusLocked
		}
	}
	return &Path{
		SessionID:     sessionID,
		UserID:        userID,
		Skill:         skill,
		Difficulty:    difficulty,
		TotalModules:  len(modules),
		CurrentModule: 1,
		Modules:       modules,
	}
}

// NextAction is a pure query: it scans the active module's actions in slot
// order and returns the first incomplete one. ok is false when the path is
// finished or has no active module.
type NextAction struct {
	ModuleID    int
	ModuleName  string
	ActionIndex int
	Action      Action
}

// FindNextAction returns the next incomplete action on the path.
func FindNextAction(p *Path) (NextAction, bool) {
	if p.Completed || p.CurrentModule > p.TotalModules {
		return NextAction{}, false
	}
	m := p.ActiveModule()
	if m == nil || m.Status != StatusActive {
		return NextAction{}, false
	}
	for i, a := range m.Actions {
		if !a.Completed {
			return NextAction{
				ModuleID:    m.ID,
				ModuleName:  m.Name,
				ActionIndex: i,
				Action:      a,
			}, true
		}
	}
	return NextAction{}, false
}

// CompleteAction marks a non-checkpoint action complete. It does not by
// itself unlock anything unless the module's checkpoint already passed and
// this was the last outstanding slot. Completing an already-complete action
// is a no-op.
func CompleteAction(p *Path, moduleID, actionIndex int) (*Transition, error) {
	m := p.Module(moduleID)
	if m == nil {
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleNotFound)
	}
	switch m.Status {
	case StatusLocked:
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleLocked)
	case StatusCompleted:
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleCompleted)
	}
	if actionIndex < 0 || actionIndex >= len(m.Actions) {
		return nil, fmt.Errorf("module %d action %d: %w", moduleID, actionIndex, ErrActionIndex)
	}
	if m.Actions[actionIndex].Type == ActionCheckpoint {
		return nil, ErrCheckpointGated
	}

	m.Actions[actionIndex].Completed = true
	return maybeCompleteModule(p, m), nil
}

// RecordCheckpoint applies a checkpoint submission outcome to the active
// module. A pass marks the checkpoint slot complete and, once all four
// slots are complete, completes the module and unlocks its successor. A
// fail changes nothing: the module stays active for retry.
func RecordCheckpoint(p *Path, moduleID int, passed bool) (*Transition, error) {
	m := p.Module(moduleID)
	if m == nil {
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleNotFound)
	}
	switch m.Status {
	case StatusLocked:
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleLocked)
	case StatusCompleted:
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleCompleted)
	}
	cp := m.Checkpoint()
	if cp == nil {
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrNoCheckpoint)
	}
	if !passed {
		return nil, nil
	}

	cp.Completed = true
	return maybeCompleteModule(p, m), nil
}

// maybeCompleteModule completes the module once all four slots are done
// (which implies the checkpoint passed, since that slot only completes on a
// pass) and cascades the unlock.
func maybeCompleteModule(p *Path, m *Module) *Transition {
	if m.ActionsCompleted() < len(m.Actions) {
		return nil
	}
	cp := m.Checkpoint()
	if cp == nil || !cp.Completed {
		return nil
	}

	m.Status = StatusCompleted
	t := &Transition{ModuleCompleted: m.ID}

	if next := p.Module(m.ID + 1); next != nil {
		next.Status = StatusActive
		p.CurrentModule = next.ID
		t.UnlockedModule = next.ID
	} else {
		p.CurrentModule = m.ID + 1
		p.Completed = true
		t.PathCompleted = true
	}
	return t
}
