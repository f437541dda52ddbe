package progression

import (
	"errors"
	"testing"
)

func testModules(n int) []Module {
	mods := make([]Module, n)
	for i := range mods {
		mods[i] = Module{
			Name: "Module",
			Actions: []Action{
				{Type: ActionOverview, Title: "Watch"},
				{Type: ActionCourse, Title: "Study"},
				{Type: ActionHandsOn, Title: "Build"},
				{Type: ActionCheckpoint, Title: "Checkpoint", PassThreshold: DefaultPassThreshold},
			},
		}
	}
	return mods
}

func TestNewPath_InitialState(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(4))

	if p.TotalModules != 4 {
		t.Fatalf("expected 4 modules, got %d", p.TotalModules)
	}
	if p.CurrentModule != 1 {
		t.Errorf("expected current module 1, got %d", p.CurrentModule)
	}
	if p.Modules[0].Status != StatusActive {
		t.Errorf("module 1 should start active, got %q", p.Modules[0].Status)
	}
	for _, m := range p.Modules[1:] {
		if m.Status != StatusLocked {
			t.Errorf("module %d should start locked, got %q", m.ID, m.Status)
		}
	}
	for i, m := range p.Modules {
		if m.ID != i+1 {
			t.Errorf("module id not sequential: index %d has id %d", i, m.ID)
		}
	}
}

func TestFindNextAction_ScansInOrder(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(2))

	na, ok := FindNextAction(p)
	if !ok {
		t.Fatal("expected a next action")
	}
	if na.ModuleID != 1 || na.ActionIndex != 0 || na.Action.Type != ActionOverview {
		t.Errorf("expected module 1 action 0 overview, got module %d action %d %q",
			na.ModuleID, na.ActionIndex, na.Action.Type)
	}

	if _, err := CompleteAction(p, 1, 0); err != nil {
		t.Fatalf("complete action: %v", err)
	}
	na, ok = FindNextAction(p)
	if !ok || na.ActionIndex != 1 || na.Action.Type != ActionCourse {
		t.Errorf("expected course slot next, got %+v ok=%v", na, ok)
	}
}

func TestCompleteAction_DoesNotUnlock(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(2))

	for i := 0; i < 3; i++ {
		tr, err := CompleteAction(p, 1, i)
		if err != nil {
			t.Fatalf("complete action %d: %v", i, err)
		}
		if tr != nil {
			t.Fatalf("action %d should not trigger a transition without the checkpoint", i)
		}
	}
	if p.Modules[0].Status != StatusActive {
		t.Errorf("module 1 should stay active, got %q", p.Modules[0].Status)
	}
	if p.Modules[1].Status != StatusLocked {
		t.Errorf("module 2 should stay locked, got %q", p.Modules[1].Status)
	}
}

func TestCompleteAction_RejectsCheckpointSlot(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(1))

	if _, err := CompleteAction(p, 1, 3); !errors.Is(err, ErrCheckpointGated) {
		t.Errorf("expected ErrCheckpointGated, got %v", err)
	}
}

func TestCompleteAction_Validation(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(2))

	if _, err := CompleteAction(p, 99, 0); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("expected ErrModuleNotFound, got %v", err)
	}
	if _, err := CompleteAction(p, 2, 0); !errors.Is(err, ErrModuleLocked) {
		t.Errorf("expected ErrModuleLocked, got %v", err)
	}
	if _, err := CompleteAction(p, 1, 7); !errors.Is(err, ErrActionIndex) {
		t.Errorf("expected ErrActionIndex, got %v", err)
	}
}

func TestRecordCheckpoint_PassUnlocksSuccessor(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(3))
	for i := 0; i < 3; i++ {
		if _, err := CompleteAction(p, 1, i); err != nil {
			t.Fatalf("complete action %d: %v", i, err)
		}
	}

	tr, err := RecordCheckpoint(p, 1, true)
	if err != nil {
		t.Fatalf("record checkpoint: %v", err)
	}
	if tr == nil || tr.ModuleCompleted != 1 || tr.UnlockedModule != 2 {
		t.Fatalf("expected module 1 completed and module 2 unlocked, got %+v", tr)
	}
	if p.Modules[0].Status != StatusCompleted {
		t.Errorf("module 1 should be completed, got %q", p.Modules[0].Status)
	}
	if p.Modules[1].Status != StatusActive {
		t.Errorf("module 2 should be active, got %q", p.Modules[1].Status)
	}
	if p.CurrentModule != 2 {
		t.Errorf("current module should advance to 2, got %d", p.CurrentModule)
	}
}

func TestRecordCheckpoint_FailLeavesModuleActive(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(2))
	for i := 0; i < 3; i++ {
		if _, err := CompleteAction(p, 1, i); err != nil {
			t.Fatalf("complete action %d: %v", i, err)
		}
	}

	tr, err := RecordCheckpoint(p, 1, false)
	if err != nil {
		t.Fatalf("record checkpoint: %v", err)
	}
	if tr != nil {
		t.Fatalf("failed checkpoint should not transition, got %+v", tr)
	}
	if p.Modules[0].Status != StatusActive {
		t.Errorf("module 1 should stay active for retry, got %q", p.Modules[0].Status)
	}
	if p.Modules[1].Status != StatusLocked {
		t.Errorf("module 2 should stay locked, got %q", p.Modules[1].Status)
	}
	if p.CurrentModule != 1 {
		t.Errorf("current module should not move, got %d", p.CurrentModule)
	}
}

func TestRecordCheckpoint_PassBeforeOtherSlots(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(2))

	// Checkpoint passes first; module must wait for the remaining slots.
	tr, err := RecordCheckpoint(p, 1, true)
	if err != nil {
		t.Fatalf("record checkpoint: %v", err)
	}
	if tr != nil {
		t.Fatalf("module should not complete with slots outstanding, got %+v", tr)
	}

	var last *Transition
	for i := 0; i < 3; i++ {
		last, err = CompleteAction(p, 1, i)
		if err != nil {
			t.Fatalf("complete action %d: %v", i, err)
		}
	}
	if last == nil || last.ModuleCompleted != 1 {
		t.Fatalf("final slot should complete the module, got %+v", last)
	}
}

func TestRecordCheckpoint_LastModuleCompletesPath(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(1))
	for i := 0; i < 3; i++ {
		if _, err := CompleteAction(p, 1, i); err != nil {
			t.Fatalf("complete action %d: %v", i, err)
		}
	}

	tr, err := RecordCheckpoint(p, 1, true)
	if err != nil {
		t.Fatalf("record checkpoint: %v", err)
	}
	if tr == nil || !tr.PathCompleted || tr.UnlockedModule != 0 {
		t.Fatalf("expected path completion with no unlock, got %+v", tr)
	}
	if !p.Completed {
		t.Error("path should be marked complete")
	}
	if _, ok := FindNextAction(p); ok {
		t.Error("finished path should have no next action")
	}
}

func TestSummarize(t *testing.T) {
	p := NewPath("sess", "user", "Python", "beginner", testModules(2))
	for i := 0; i < 3; i++ {
		if _, err := CompleteAction(p, 1, i); err != nil {
			t.Fatalf("complete action %d: %v", i, err)
		}
	}
	if _, err := RecordCheckpoint(p, 1, true); err != nil {
		t.Fatalf("record checkpoint: %v", err)
	}

	prog := Summarize(p)
	if prog.CompletedModules != 1 || prog.TotalModules != 2 {
		t.Errorf("expected 1/2 modules, got %d/%d", prog.CompletedModules, prog.TotalModules)
	}
	if prog.Percentage != 50 {
		t.Errorf("expected 50%%, got %v", prog.Percentage)
	}
	if prog.ActionsCompleted != 4 || prog.TotalActions != 8 {
		t.Errorf("expected 4/8 actions, got %d/%d", prog.ActionsCompleted, prog.TotalActions)
	}
}
