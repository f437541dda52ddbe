package catalog

import "testing"

func TestForSkillExactMatch(t *testing.T) {
	rs := ForSkill("Python", "")
	if len(rs) != 5 {
		t.Fatalf("expected 5 python resources, got %d", len(rs))
	}
}

func TestForSkillKindFilter(t *testing.T) {
	rs := ForSkill("SQL", KindVideo)
	if len(rs) != 1 {
		t.Fatalf("expected 1 sql video, got %d", len(rs))
	}
	if rs[0].Platform != "YouTube" {
		t.Errorf("expected YouTube, got %q", rs[0].Platform)
	}
}

func TestForSkillQualifiedName(t *testing.T) {
	rs := ForSkill("Advanced SQL", KindTask)
	if len(rs) != 1 {
		t.Fatalf("expected qualified name to match sql, got %d resources", len(rs))
	}
}

func TestForSkillUnknown(t *testing.T) {
	if rs := ForSkill("Quantum Basket Weaving", ""); rs != nil {
		t.Fatalf("expected nil for unknown skill, got %d resources", len(rs))
	}
}

func TestMixedPathVideoPreference(t *testing.T) {
	rs := MixedPath("Python", "video")
	// 2 videos + 1 task + 1 text under the video weights.
	if len(rs) != 4 {
		t.Fatalf("expected 4 resources, got %d", len(rs))
	}
	if rs[0].Kind != KindVideo || rs[1].Kind != KindVideo {
		t.Error("expected videos first")
	}
}

func TestMixedPathReadingSkipsVideo(t *testing.T) {
	for _, r := range MixedPath("Python", "reading") {
		if r.Kind == KindVideo {
			t.Fatal("reading preference should not include videos")
		}
	}
}

func TestContentMixDefaultsToMixed(t *testing.T) {
	mix := ContentMix("whatever")
	if mix["video"] != 0.4 || mix["task"] != 0.4 || mix["text"] != 0.2 {
		t.Fatalf("unexpected mixed weights: %v", mix)
	}
}
