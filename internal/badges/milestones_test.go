package badges

import (
	"testing"
	"time"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func names(bs []Badge) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Name
	}
	return out
}

func TestEvaluateXPMilestones(t *testing.T) {
	tests := []struct {
		xp   int
		want []string
	}{
		{0, nil},
		{99, nil},
		{100, []string{"XP Master bronze"}},
		{500, []string{"XP Master bronze", "XP Master silver"}},
		{1050, []string{"XP Master bronze", "XP Master silver", "XP Master gold"}},
	}

	for _, tt := range tests {
		got := Evaluate(Counters{XP: tt.xp}, nil, now)
		if len(got) != len(tt.want) {
			t.Errorf("Evaluate(xp=%d) awarded %v, want %v", tt.xp, names(got), tt.want)
			continue
		}
		for i, b := range got {
			if b.Name != tt.want[i] {
				t.Errorf("Evaluate(xp=%d)[%d] = %q, want %q", tt.xp, i, b.Name, tt.want[i])
			}
			if b.Type != TypeMastery {
				t.Errorf("Evaluate(xp=%d)[%d] type = %q, want mastery", tt.xp, i, b.Type)
			}
		}
	}
}

func TestEvaluateCrossingGoldOnly(t *testing.T) {
	// Learner at 950 XP already holds bronze and silver; adding 100 XP
	// must award gold and nothing else.
	held := Evaluate(Counters{XP: 950}, nil, now)
	if len(held) != 2 {
		t.Fatalf("setup: got %v", names(held))
	}

	got := Evaluate(Counters{XP: 1050}, held, now)
	if len(got) != 1 || got[0].Name != "XP Master gold" {
		t.Fatalf("awarded %v, want only XP Master gold", names(got))
	}
	if got[0].Tier != TierGold {
		t.Errorf("tier = %q, want gold", got[0].Tier)
	}
}

func TestEvaluateStreakMilestones(t *testing.T) {
	got := Evaluate(Counters{StreakDays: 3}, nil, now)
	if len(got) != 1 || got[0].Name != "3 Day Streak bronze" {
		t.Fatalf("awarded %v, want 3 Day Streak bronze", names(got))
	}
	if got[0].Type != TypeStreak {
		t.Errorf("type = %q, want streak", got[0].Type)
	}

	got = Evaluate(Counters{StreakDays: 30}, got, now)
	want := []string{"7 Day Streak silver", "30 Day Streak gold"}
	if len(got) != 2 || got[0].Name != want[0] || got[1].Name != want[1] {
		t.Errorf("awarded %v, want %v", names(got), want)
	}
}

func TestEvaluateCompletionMilestones(t *testing.T) {
	got := Evaluate(Counters{CompletedModules: 15}, nil, now)
	want := []string{"Module Master bronze", "Module Master silver"}
	if len(got) != 2 || got[0].Name != want[0] || got[1].Name != want[1] {
		t.Fatalf("awarded %v, want %v", names(got), want)
	}
	for _, b := range got {
		if b.Type != TypeCompletion {
			t.Errorf("%s type = %q, want completion", b.Name, b.Type)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	c := Counters{XP: 1200, StreakDays: 8, CompletedModules: 6}
	first := Evaluate(c, nil, now)
	if len(first) == 0 {
		t.Fatal("expected awards on first evaluation")
	}

	second := Evaluate(c, first, now)
	if len(second) != 0 {
		t.Errorf("re-evaluation awarded %v, want none", names(second))
	}
}

func TestEvaluateNoDuplicateKeys(t *testing.T) {
	c := Counters{XP: 5000, StreakDays: 100, CompletedModules: 50}
	got := Evaluate(c, nil, now)

	seen := make(map[Key]bool)
	for _, b := range got {
		if seen[b.Key()] {
			t.Errorf("duplicate badge key %+v", b.Key())
		}
		seen[b.Key()] = true
	}
}

func TestSkillMastery(t *testing.T) {
	b := SkillMastery("Web Development", now)
	if b.Name != "Web Development Master" {
		t.Errorf("name = %q", b.Name)
	}
	if b.Type != TypeMastery || b.Tier != TierGold {
		t.Errorf("type/tier = %q/%q, want mastery/gold", b.Type, b.Tier)
	}
	if b.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestHeld(t *testing.T) {
	held := []Badge{{Name: "XP Master bronze", Type: TypeMastery}}
	if !Held(held, "XP Master bronze", TypeMastery) {
		t.Error("expected held")
	}
	// Same name under a different type is a different badge.
	if Held(held, "XP Master bronze", TypeStreak) {
		t.Error("expected not held for different type")
	}
}
