package progress

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nishantk77/skillpath-ascend-together/internal/badges"
	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
)

func newTestService(t *testing.T) (*Service, *profile.Service, *notify.Recorder) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "skillpath.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	rec := &notify.Recorder{}
	p := profile.NewService(st, rec)
	return NewService(st, p, rec), p, rec
}

func login(t *testing.T, p *profile.Service) *store.User {
	t.Helper()
	u, err := p.Signup(context.Background(), profile.SignupInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return u
}

func moduleStatus(t *testing.T, s *Service, skillID, moduleID string) catalog.Status {
	t.Helper()
	sk, err := s.Skill(context.Background(), skillID)
	if err != nil {
		t.Fatalf("load skill: %v", err)
	}
	mod := sk.Module(moduleID)
	if mod == nil {
		t.Fatalf("module %s not found", moduleID)
	}
	return mod.Status
}

func TestStartRequiresAuth(t *testing.T) {
	s, _, _ := newTestService(t)
	if err := s.Start(context.Background(), "web-dev", "web-dev-1"); !errors.Is(err, profile.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestStart(t *testing.T) {
	s, p, _ := newTestService(t)
	ctx := context.Background()
	login(t, p)

	if err := s.Start(ctx, "web-dev", "web-dev-1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := moduleStatus(t, s, "web-dev", "web-dev-1"); got != catalog.StatusInProgress {
		t.Fatalf("status = %s, want in-progress", got)
	}

	// Starting again is a no-op.
	if err := s.Start(ctx, "web-dev", "web-dev-1"); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if got := moduleStatus(t, s, "web-dev", "web-dev-1"); got != catalog.StatusInProgress {
		t.Fatalf("status after restart = %s", got)
	}
}

func TestStartUnknownModule(t *testing.T) {
	s, p, _ := newTestService(t)
	login(t, p)

	if err := s.Start(context.Background(), "web-dev", "nope"); !store.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if err := s.Start(context.Background(), "nope", "web-dev-1"); !store.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCompleteAwardsXPOnce(t *testing.T) {
	s, p, _ := newTestService(t)
	ctx := context.Background()
	u := login(t, p)

	if err := s.Start(ctx, "web-dev", "web-dev-2"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Complete(ctx, "web-dev", "web-dev-2"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if got := moduleStatus(t, s, "web-dev", "web-dev-2"); got != catalog.StatusCompleted {
		t.Fatalf("status = %s, want completed", got)
	}
	if u.XP != 150 {
		t.Errorf("xp = %d, want 150", u.XP)
	}
	if u.CompletedModules != 1 {
		t.Errorf("completed = %d, want 1", u.CompletedModules)
	}

	// Completing a completed module changes nothing.
	if err := s.Complete(ctx, "web-dev", "web-dev-2"); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if u.XP != 150 {
		t.Errorf("xp = %d after repeat completion, want 150", u.XP)
	}
	if u.CompletedModules != 1 {
		t.Errorf("completed = %d after repeat completion, want 1", u.CompletedModules)
	}
}

func TestCompleteFromNotStarted(t *testing.T) {
	s, p, _ := newTestService(t)
	u := login(t, p)

	// Skipping the in-progress state is allowed: status only moves
	// forward, and completed is forward of not-started.
	if err := s.Complete(context.Background(), "web-dev", "web-dev-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if u.XP != 100 {
		t.Errorf("xp = %d, want 100", u.XP)
	}
}

func TestCompletingSkillAwardsMasteryBadge(t *testing.T) {
	s, p, _ := newTestService(t)
	ctx := context.Background()
	u := login(t, p)

	for _, id := range []string{"web-dev-1", "web-dev-2"} {
		if err := s.Complete(ctx, "web-dev", id); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}
	if u.HasBadge("Web Development Master", badges.TypeMastery) {
		t.Fatal("mastery badge awarded before skill finished")
	}

	if err := s.Complete(ctx, "web-dev", "web-dev-3"); err != nil {
		t.Fatalf("complete web-dev-3: %v", err)
	}
	if !u.HasBadge("Web Development Master", badges.TypeMastery) {
		t.Fatal("mastery badge not awarded")
	}
	if u.XP != 450 {
		t.Errorf("xp = %d, want 450", u.XP)
	}
}

func TestUpdateStatusRejectsBackwardMove(t *testing.T) {
	s, p, _ := newTestService(t)
	ctx := context.Background()
	login(t, p)

	if err := s.Complete(ctx, "web-dev", "web-dev-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	err := s.UpdateStatus(ctx, "web-dev", "web-dev-1", catalog.StatusInProgress)
	var verr *profile.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if got := moduleStatus(t, s, "web-dev", "web-dev-1"); got != catalog.StatusCompleted {
		t.Fatalf("status regressed to %s", got)
	}

	if err := s.UpdateStatus(ctx, "web-dev", "web-dev-2", "done"); err == nil {
		t.Fatal("unknown status accepted")
	}
}

func TestRecommended(t *testing.T) {
	s, p, _ := newTestService(t)
	ctx := context.Background()

	// Logged out: the whole catalog.
	all, err := s.Recommended(ctx)
	if err != nil {
		t.Fatalf("recommended: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("skills = %d, want 3", len(all))
	}

	login(t, p)
	interests := []string{"Data Science"}
	if err := p.UpdateUser(ctx, profile.UpdateInput{Interests: &interests}); err != nil {
		t.Fatalf("update interests: %v", err)
	}

	matched, err := s.Recommended(ctx)
	if err != nil {
		t.Fatalf("recommended: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "data-science" {
		t.Fatalf("recommended = %+v", matched)
	}
}

func TestInProgress(t *testing.T) {
	s, p, _ := newTestService(t)
	ctx := context.Background()
	login(t, p)

	active, err := s.InProgress(ctx)
	if err != nil {
		t.Fatalf("in progress: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("active = %d before any start", len(active))
	}

	if err := s.Start(ctx, "ui-ux", "ui-ux-1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	active, err = s.InProgress(ctx)
	if err != nil {
		t.Fatalf("in progress: %v", err)
	}
	if len(active) != 1 || active[0].ID != "ui-ux" {
		t.Fatalf("active = %+v", active)
	}
}
