package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nishantk77/skillpath-ascend-together/internal/badges"
	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store, *notify.Recorder) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "skillpath.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	rec := &notify.Recorder{}
	return NewService(st, rec), st, rec
}

func signup(t *testing.T, s *Service, email string) *store.User {
	t.Helper()
	u, err := s.Signup(context.Background(), SignupInput{
		Name:     "Ada",
		Email:    email,
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return u
}

func TestSignupCreatesUserAndSession(t *testing.T) {
	s, st, rec := newTestService(t)
	ctx := context.Background()

	u := signup(t, s, "Ada@Example.com")

	if u.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.Role != store.RoleLearner {
		t.Errorf("role = %q, want learner", u.Role)
	}
	if !s.IsAuthenticated() {
		t.Error("not authenticated after signup")
	}

	id, err := st.SessionRepo().CurrentUserID(ctx)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if id != u.ID {
		t.Errorf("session user = %q, want %q", id, u.ID)
	}
	if !rec.Has("Welcome to SkillPath!") {
		t.Error("missing welcome notification")
	}
}

func TestSignupValidation(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		in    SignupInput
		field string
	}{
		{"missing name", SignupInput{Email: "a@b.c", Password: "x"}, "name"},
		{"missing email", SignupInput{Name: "A", Password: "x"}, "email"},
		{"missing password", SignupInput{Name: "A", Email: "a@b.c"}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Signup(ctx, tc.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	s, _, _ := newTestService(t)
	signup(t, s, "ada@example.com")

	_, err := s.Signup(context.Background(), SignupInput{
		Name:     "Other",
		Email:    "ADA@example.com",
		Password: "different",
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestLogin(t *testing.T) {
	s, _, rec := newTestService(t)
	ctx := context.Background()
	signup(t, s, "ada@example.com")
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := s.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Login(ctx, "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}

	u, err := s.Login(ctx, "ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Name != "Ada" {
		t.Errorf("name = %q", u.Name)
	}
	if !rec.Has("Welcome back!") {
		t.Error("missing welcome-back notification")
	}
}

func TestAdminLogin(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := s.AdminLogin(ctx, "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, err := s.AdminLogin(ctx, "root", "skillpath123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong username: err = %v", err)
	}

	u, err := s.AdminLogin(ctx, "admin", "skillpath123")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if u.Role != store.RoleAdmin {
		t.Errorf("role = %q, want admin", u.Role)
	}
	if !s.IsAdmin() {
		t.Error("IsAdmin false after admin login")
	}

	// Second login reuses the synthesized record.
	again, err := s.AdminLogin(ctx, "admin", "skillpath123")
	if err != nil {
		t.Fatalf("second admin login: %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("admin ID changed: %q vs %q", again.ID, u.ID)
	}
}

func TestLogoutWhenLoggedOutIsNoop(t *testing.T) {
	s, _, rec := newTestService(t)
	if err := s.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Has("Logged out") {
		t.Error("notified about a logout that did nothing")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skillpath.db")
	ctx := context.Background()

	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	s := NewService(st, nil)
	u := signup(t, s, "ada@example.com")
	st.Close()

	st2, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer st2.Close()

	s2 := NewService(st2, nil)
	if err := s2.LoadSession(ctx); err != nil {
		t.Fatalf("load session: %v", err)
	}
	if s2.Current() == nil || s2.Current().ID != u.ID {
		t.Fatalf("session not restored: %+v", s2.Current())
	}
}

func TestAddXPRequiresAuth(t *testing.T) {
	s, _, _ := newTestService(t)
	if err := s.AddXP(context.Background(), 50); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestAddXPRejectsNegative(t *testing.T) {
	s, _, _ := newTestService(t)
	signup(t, s, "ada@example.com")

	err := s.AddXP(context.Background(), -10)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if s.Current().XP != 0 {
		t.Errorf("xp = %d after rejected award", s.Current().XP)
	}
}

func TestAddXPAwardsOnlyCrossedMilestones(t *testing.T) {
	s, st, _ := newTestService(t)
	ctx := context.Background()
	u := signup(t, s, "ada@example.com")

	// Jump past bronze and silver in one award: both are granted.
	if err := s.AddXP(ctx, 950); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if !u.HasBadge("XP Master bronze", badges.TypeMastery) ||
		!u.HasBadge("XP Master silver", badges.TypeMastery) {
		t.Fatal("bronze and silver not awarded at 950 XP")
	}
	if u.HasBadge("XP Master gold", badges.TypeMastery) {
		t.Fatal("gold awarded early")
	}

	// 950 → 1050 crosses only the gold threshold.
	if err := s.AddXP(ctx, 100); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if u.XP != 1050 {
		t.Fatalf("xp = %d, want 1050", u.XP)
	}
	if !u.HasBadge("XP Master gold", badges.TypeMastery) {
		t.Fatal("gold not awarded at 1050 XP")
	}

	// The earlier tiers were not re-awarded.
	fresh, err := st.UserRepo().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	count := 0
	for _, b := range fresh.Badges {
		if b.Type == badges.TypeMastery {
			count++
		}
	}
	if count != 3 {
		t.Errorf("mastery badges = %d, want 3", count)
	}
}

func TestAwardBadgeIsIdempotent(t *testing.T) {
	s, _, rec := newTestService(t)
	ctx := context.Background()
	u := signup(t, s, "ada@example.com")

	b := badges.SkillMastery("Web Development", time.Now())
	if err := s.AwardBadge(ctx, b); err != nil {
		t.Fatalf("award: %v", err)
	}
	if err := s.AwardBadge(ctx, b); err != nil {
		t.Fatalf("second award: %v", err)
	}
	if len(u.Badges) != 1 {
		t.Fatalf("badges = %d, want 1", len(u.Badges))
	}
	earned := 0
	for _, m := range rec.Messages {
		if m.Title == "Badge earned!" {
			earned++
		}
	}
	if earned != 1 {
		t.Errorf("badge notifications = %d, want 1", earned)
	}
}

func TestUpdateStreak(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	u := signup(t, s, "ada@example.com")

	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 9, 0, 0, 0, time.UTC)
	}

	s.now = func() time.Time { return day(1) }
	if err := s.UpdateStreak(ctx); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if u.CurrentStreak != 1 {
		t.Fatalf("streak = %d after first login, want 1", u.CurrentStreak)
	}

	// Same calendar day, later hour: unchanged.
	s.now = func() time.Time { return day(1).Add(10 * time.Hour) }
	if err := s.UpdateStreak(ctx); err != nil {
		t.Fatalf("same-day login: %v", err)
	}
	if u.CurrentStreak != 1 {
		t.Fatalf("streak = %d after same-day login, want 1", u.CurrentStreak)
	}

	// Consecutive days extend.
	for d := 2; d <= 3; d++ {
		s.now = func() time.Time { return day(d) }
		if err := s.UpdateStreak(ctx); err != nil {
			t.Fatalf("day %d login: %v", d, err)
		}
	}
	if u.CurrentStreak != 3 {
		t.Fatalf("streak = %d, want 3", u.CurrentStreak)
	}
	if !u.HasBadge("3 Day Streak bronze", badges.TypeStreak) {
		t.Error("3-day streak badge not awarded")
	}

	// A gap resets to 1 but keeps the longest.
	s.now = func() time.Time { return day(10) }
	if err := s.UpdateStreak(ctx); err != nil {
		t.Fatalf("post-gap login: %v", err)
	}
	if u.CurrentStreak != 1 {
		t.Errorf("streak = %d after gap, want 1", u.CurrentStreak)
	}
	if u.LongestStreak != 3 {
		t.Errorf("longest = %d, want 3", u.LongestStreak)
	}
}

func TestRecordModuleCompletion(t *testing.T) {
	s, st, rec := newTestService(t)
	ctx := context.Background()
	u := signup(t, s, "ada@example.com")

	if err := s.RecordModuleCompletion(ctx, 150, "web-dev", "html-basics", "HTML Basics"); err != nil {
		t.Fatalf("record completion: %v", err)
	}
	if u.XP != 150 {
		t.Errorf("xp = %d, want 150", u.XP)
	}
	if u.CompletedModules != 1 {
		t.Errorf("completed = %d, want 1", u.CompletedModules)
	}
	if !rec.Has("Module completed!") {
		t.Error("missing completion notification")
	}

	events, err := st.EventRepo().QueryXP(ctx, store.QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query xp events: %v", err)
	}
	if len(events) != 1 || events[0].Reason != "Completed HTML Basics" {
		t.Fatalf("unexpected xp events: %+v", events)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	s, st, _ := newTestService(t)
	ctx := context.Background()
	u := signup(t, s, "ada@example.com")

	name := "Ada Lovelace"
	interests := []string{"Data Science"}
	if err := s.UpdateUser(ctx, UpdateInput{Name: &name, Interests: &interests}); err != nil {
		t.Fatalf("update: %v", err)
	}

	fresh, err := st.UserRepo().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if fresh.Name != "Ada Lovelace" {
		t.Errorf("name = %q", fresh.Name)
	}
	if len(fresh.Interests) != 1 || fresh.Interests[0] != "Data Science" {
		t.Errorf("interests = %v", fresh.Interests)
	}
	if fresh.Email != "ada@example.com" {
		t.Errorf("email changed: %q", fresh.Email)
	}

	empty := "   "
	err = s.UpdateUser(ctx, UpdateInput{Name: &empty})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("blank name: err = %v, want ValidationError", err)
	}
}
