package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nishantk77/skillpath-ascend-together/internal/badges"
	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "skillpath.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	skills, err := s.SkillRepo().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("got %d skills, want 3", len(skills))
	}

	var web *catalog.Skill
	for i := range skills {
		if skills[i].ID == "web-dev" {
			web = &skills[i]
		}
	}
	if web == nil {
		t.Fatal("missing web-dev skill")
	}
	if len(web.Modules) != 3 {
		t.Fatalf("web-dev has %d modules, want 3", len(web.Modules))
	}
	for i := 1; i < len(web.Modules); i++ {
		if web.Modules[i-1].Week > web.Modules[i].Week {
			t.Error("modules not ordered by week")
		}
	}
	if web.Modules[0].XPReward != 100 {
		t.Errorf("first module xpReward = %d, want 100", web.Modules[0].XPReward)
	}
	if len(web.Modules[0].Resources) == 0 {
		t.Error("expected seeded resources on the first module")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	login := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	u := &User{
		ID:            "user-1",
		Name:          "Priya",
		Email:         "priya@example.com",
		PasswordHash:  "$2a$10$fakehash",
		Role:          RoleLearner,
		XP:            950,
		Interests:     []string{"Web Development"},
		WeeklyTime:    6,
		Goals:         []string{"Switch careers"},
		JoinDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		LastLoginDate: &login,
		CurrentStreak: 2,
		LongestStreak: 5,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Email != u.Email || got.XP != 950 || got.Role != RoleLearner {
		t.Errorf("got %+v", got)
	}
	if got.CurrentStreak != 2 || got.LongestStreak != 5 {
		t.Errorf("streaks = %d/%d, want 2/5", got.CurrentStreak, got.LongestStreak)
	}
	if got.LastLoginDate == nil || !got.LastLoginDate.Equal(login) {
		t.Errorf("LastLoginDate = %v, want %v", got.LastLoginDate, login)
	}
	if len(got.Interests) != 1 || got.Interests[0] != "Web Development" {
		t.Errorf("Interests = %v", got.Interests)
	}

	got.XP = 1050
	got.CompletedModules = 1
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	back, err := repo.ByEmail(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if back.XP != 1050 || back.CompletedModules != 1 {
		t.Errorf("after update: xp=%d completed=%d", back.XP, back.CompletedModules)
	}
}

func TestUserNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.UserRepo().ByID(ctx, "nobody"); !IsNotFound(err) {
		t.Errorf("ByID(nobody) err = %v, want ErrNotFound", err)
	}
	if _, err := s.UserRepo().ByEmail(ctx, "nobody@example.com"); !IsNotFound(err) {
		t.Errorf("ByEmail err = %v, want ErrNotFound", err)
	}
}

func TestAddBadgeDedup(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u := &User{ID: "user-1", Name: "Priya", Email: "priya@example.com", Role: RoleLearner, JoinDate: time.Now()}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	b := badges.Badge{
		ID:         "badge-1",
		Name:       "XP Master bronze",
		Type:       badges.TypeMastery,
		Tier:       badges.TierBronze,
		DateEarned: time.Now(),
	}
	if err := repo.AddBadge(ctx, "user-1", b); err != nil {
		t.Fatalf("AddBadge: %v", err)
	}

	// Same (name, type) again with a fresh ID: the unique index rejects
	// it and AddBadge treats that as already-held.
	dup := b
	dup.ID = "badge-2"
	if err := repo.AddBadge(ctx, "user-1", dup); err != nil {
		t.Fatalf("AddBadge duplicate: %v", err)
	}

	got, err := repo.ByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if len(got.Badges) != 1 {
		t.Fatalf("user holds %d badges, want 1", len(got.Badges))
	}
}

func TestUpdateModuleStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	if err := repo.UpdateModuleStatus(ctx, "web-dev", "web-dev-1", catalog.StatusInProgress); err != nil {
		t.Fatalf("UpdateModuleStatus: %v", err)
	}

	skill, err := repo.ByID(ctx, "web-dev")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if m := skill.Module("web-dev-1"); m == nil || m.Status != catalog.StatusInProgress {
		t.Errorf("module status not persisted: %+v", m)
	}

	// Unknown module, and a module of a different skill, are NotFound.
	if err := repo.UpdateModuleStatus(ctx, "web-dev", "nope", catalog.StatusCompleted); !IsNotFound(err) {
		t.Errorf("unknown module err = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateModuleStatus(ctx, "ui-ux", "web-dev-1", catalog.StatusCompleted); !IsNotFound(err) {
		t.Errorf("cross-skill module err = %v, want ErrNotFound", err)
	}
}

func TestDiscussionsAndReplies(t *testing.T) {
	s := openTestStore(t)
	repo := s.DiscussionRepo()
	ctx := context.Background()

	d := &Discussion{
		ID:        "disc-1",
		SkillID:   "web-dev",
		ModuleID:  "web-dev-1",
		UserID:    "user-1",
		UserName:  "Priya",
		Title:     "Stuck on flexbox",
		Content:   "Why does my layout overflow?",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i, at := range []time.Time{
		time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	} {
		rep := &Reply{
			ID:        "reply-" + string(rune('a'+i)),
			UserID:    "user-2",
			UserName:  "Sam",
			Content:   "Check min-width",
			CreatedAt: at,
		}
		if err := repo.AddReply(ctx, "disc-1", rep); err != nil {
			t.Fatalf("AddReply: %v", err)
		}
	}

	got, err := repo.ByID(ctx, "disc-1")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if len(got.Replies) != 2 {
		t.Fatalf("got %d replies, want 2", len(got.Replies))
	}
	if got.Replies[0].CreatedAt.After(got.Replies[1].CreatedAt) {
		t.Error("replies not ordered by creation time")
	}

	bySkill, err := repo.BySkill(ctx, "web-dev")
	if err != nil {
		t.Fatalf("BySkill: %v", err)
	}
	if len(bySkill) != 1 {
		t.Errorf("BySkill returned %d threads, want 1", len(bySkill))
	}
	byModule, err := repo.ByModule(ctx, "web-dev-1")
	if err != nil {
		t.Fatalf("ByModule: %v", err)
	}
	if len(byModule) != 1 {
		t.Errorf("ByModule returned %d threads, want 1", len(byModule))
	}

	if err := repo.AddReply(ctx, "missing", &Reply{ID: "r", UserID: "u", UserName: "n", Content: "c", CreatedAt: time.Now()}); !IsNotFound(err) {
		t.Errorf("AddReply(missing) err = %v, want ErrNotFound", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	id, err := repo.CurrentUserID(ctx)
	if err != nil {
		t.Fatalf("CurrentUserID: %v", err)
	}
	if id != "" {
		t.Errorf("fresh store has session for %q", id)
	}

	if err := repo.Set(ctx, "user-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "user-2"); err != nil {
		t.Fatalf("Set again: %v", err)
	}
	id, err = repo.CurrentUserID(ctx)
	if err != nil {
		t.Fatalf("CurrentUserID: %v", err)
	}
	if id != "user-2" {
		t.Errorf("current user = %q, want user-2 (login replaces session)", id)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	id, _ = repo.CurrentUserID(ctx)
	if id != "" {
		t.Errorf("after clear, current user = %q", id)
	}
}

func TestEventSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendXP(ctx, XPEventData{UserID: "u", Points: 100, Reason: "Completed HTML & CSS Fundamentals"}); err != nil {
		t.Fatalf("AppendXP: %v", err)
	}
	if err := repo.AppendBadge(ctx, BadgeEventData{UserID: "u", BadgeName: "XP Master bronze", BadgeType: "mastery", Tier: "bronze"}); err != nil {
		t.Fatalf("AppendBadge: %v", err)
	}
	if err := repo.AppendXP(ctx, XPEventData{UserID: "u", Points: 150, Reason: "Completed Responsive Web Design"}); err != nil {
		t.Fatalf("AppendXP: %v", err)
	}

	xp, err := repo.QueryXP(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryXP: %v", err)
	}
	if len(xp) != 2 {
		t.Fatalf("got %d xp events, want 2", len(xp))
	}
	if xp[0].Sequence <= xp[1].Sequence {
		t.Error("QueryXP not ordered newest first")
	}

	bs, err := repo.QueryBadges(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryBadges: %v", err)
	}
	if len(bs) != 1 {
		t.Fatalf("got %d badge events, want 1", len(bs))
	}
	// The badge event sits between the two XP events in the global order.
	if !(bs[0].Sequence > xp[1].Sequence && bs[0].Sequence < xp[0].Sequence) {
		t.Errorf("badge sequence %d not between xp sequences %d and %d",
			bs[0].Sequence, xp[1].Sequence, xp[0].Sequence)
	}
}

func TestResetKeepsCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	users := s.UserRepo()
	if err := users.Create(ctx, &User{ID: "u1", Name: "P", Email: "p@example.com", Role: RoleLearner, JoinDate: time.Now()}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.SessionRepo().Set(ctx, "u1"); err != nil {
		t.Fatalf("Set session: %v", err)
	}
	if err := s.SkillRepo().UpdateModuleStatus(ctx, "web-dev", "web-dev-1", catalog.StatusCompleted); err != nil {
		t.Fatalf("UpdateModuleStatus: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if _, err := users.ByID(ctx, "u1"); !IsNotFound(err) {
		t.Errorf("user survived reset: %v", err)
	}
	id, _ := s.SessionRepo().CurrentUserID(ctx)
	if id != "" {
		t.Error("session survived reset")
	}
	skills, err := s.SkillRepo().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(skills) != 3 {
		t.Errorf("catalog did not survive reset: %d skills", len(skills))
	}
	for _, sk := range skills {
		for _, m := range sk.Modules {
			if m.Status != catalog.StatusNotStarted {
				t.Errorf("module %s status %q after reset", m.ID, m.Status)
			}
		}
	}
}
