package catalog

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeedLoads(t *testing.T) {
	skills, err := Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("got %d skills, want 3", len(skills))
	}

	byID := make(map[string]Skill)
	for _, s := range skills {
		byID[s.ID] = s
	}

	web, ok := byID["web-dev"]
	if !ok {
		t.Fatal("missing web-dev skill")
	}
	if web.Name != "Web Development" || web.Difficulty != DifficultyBeginner {
		t.Errorf("web-dev = %q/%q", web.Name, web.Difficulty)
	}
	if len(web.Modules) != 3 {
		t.Fatalf("web-dev has %d modules, want 3", len(web.Modules))
	}
	for _, m := range web.Modules {
		if m.Status != StatusNotStarted {
			t.Errorf("module %s seeded with status %q", m.ID, m.Status)
		}
	}
}

func TestSeedModulesSortedByWeek(t *testing.T) {
	skills, err := Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for _, s := range skills {
		for i := 1; i < len(s.Modules); i++ {
			if s.Modules[i-1].Week > s.Modules[i].Week {
				t.Errorf("skill %s: module %s (week %d) before %s (week %d)",
					s.ID, s.Modules[i-1].ID, s.Modules[i-1].Week,
					s.Modules[i].ID, s.Modules[i].Week)
			}
		}
	}
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"empty skills", `{"skills": []}`},
		{"missing id", `{"skills": [{"name": "X", "category": "C", "difficulty": "beginner", "modules": []}]}`},
		{"bad difficulty", `{"skills": [{"id": "x", "name": "X", "category": "C", "difficulty": "expert", "modules": []}]}`},
		{"negative xp", `{"skills": [{"id": "x", "name": "X", "category": "C", "difficulty": "beginner",
			"modules": [{"id": "m", "title": "M", "week": 1, "status": "not-started", "xpReward": -10}]}]}`},
		{"bad status", `{"skills": [{"id": "x", "name": "X", "category": "C", "difficulty": "beginner",
			"modules": [{"id": "m", "title": "M", "week": 1, "status": "done", "xpReward": 10}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load([]byte(tt.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestResourceTimestampRoundTrip(t *testing.T) {
	r := Resource{
		ID:        "res-1",
		Title:     "HTML Crash Course",
		Type:      ResourceVideo,
		URL:       "https://example.com",
		CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Resource
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.CreatedAt.Equal(r.CreatedAt) {
		t.Errorf("CreatedAt round-trip: got %v, want %v", back.CreatedAt, r.CreatedAt)
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusNotStarted, StatusInProgress, true},
		{StatusNotStarted, StatusCompleted, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusNotStarted, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusNotStarted, false},
		{StatusNotStarted, StatusNotStarted, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusInProgress, Status("done"), false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSkillCompleted(t *testing.T) {
	s := Skill{Modules: []Module{
		{ID: "a", Status: StatusCompleted},
		{ID: "b", Status: StatusInProgress},
	}}
	if s.Completed() {
		t.Error("skill with in-progress module reported completed")
	}

	s.Modules[1].Status = StatusCompleted
	if !s.Completed() {
		t.Error("fully completed skill not reported completed")
	}

	empty := Skill{}
	if empty.Completed() {
		t.Error("empty skill reported completed")
	}
}

func TestSkillStats(t *testing.T) {
	s := Skill{Modules: []Module{
		{Status: StatusCompleted},
		{Status: StatusCompleted},
		{Status: StatusInProgress},
		{Status: StatusNotStarted},
	}}
	st := s.Stats()
	if st.Completed != 2 || st.InProgress != 1 || st.Total != 4 {
		t.Errorf("stats = %+v", st)
	}
	if st.Percent != 50 {
		t.Errorf("percent = %v, want 50", st.Percent)
	}
}
