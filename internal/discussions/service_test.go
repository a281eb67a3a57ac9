package discussions

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
)

func newTestService(t *testing.T) (*Service, *profile.Service) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "skillpath.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	p := profile.NewService(st, notify.Discard)
	return NewService(st, p, notify.Discard), p
}

func login(t *testing.T, p *profile.Service, name, email string) {
	t.Helper()
	if _, err := p.Signup(context.Background(), profile.SignupInput{
		Name:     name,
		Email:    email,
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}
}

func TestAddDiscussionRequiresAuth(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.AddDiscussion(context.Background(), "web-dev", "web-dev-1", "Stuck on flexbox", "How does align-items work?")
	if !errors.Is(err, profile.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestAddDiscussionValidation(t *testing.T) {
	s, p := newTestService(t)
	ctx := context.Background()
	login(t, p, "Ada", "ada@example.com")

	if _, err := s.AddDiscussion(ctx, "web-dev", "web-dev-1", "  ", "body"); err == nil {
		t.Fatal("blank title accepted")
	}
	if _, err := s.AddDiscussion(ctx, "web-dev", "web-dev-1", "title", ""); err == nil {
		t.Fatal("blank content accepted")
	}
}

func TestAddDiscussionAndReply(t *testing.T) {
	s, p := newTestService(t)
	ctx := context.Background()
	login(t, p, "Ada", "ada@example.com")

	d, err := s.AddDiscussion(ctx, "web-dev", "web-dev-1", "Stuck on flexbox", "How does align-items work?")
	if err != nil {
		t.Fatalf("add discussion: %v", err)
	}
	if d.UserName != "Ada" {
		t.Errorf("author = %q, want Ada", d.UserName)
	}

	if _, err := s.AddReply(ctx, d.ID, "It aligns on the cross axis."); err != nil {
		t.Fatalf("add reply: %v", err)
	}

	got, err := s.ByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("load thread: %v", err)
	}
	if len(got.Replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(got.Replies))
	}
	if got.Replies[0].Content != "It aligns on the cross axis." {
		t.Errorf("reply content = %q", got.Replies[0].Content)
	}
}

func TestAddDiscussionUnknownModule(t *testing.T) {
	s, p := newTestService(t)
	ctx := context.Background()
	login(t, p, "Ada", "ada@example.com")

	if _, err := s.AddDiscussion(ctx, "web-dev", "web-dev-99", "title", "body"); !store.IsNotFound(err) {
		t.Fatalf("unknown module: err = %v, want not found", err)
	}
	if _, err := s.AddDiscussion(ctx, "nope", "web-dev-1", "title", "body"); !store.IsNotFound(err) {
		t.Fatalf("unknown skill: err = %v, want not found", err)
	}

	// Nothing was stored for either failed attempt.
	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("threads = %d, want 0", len(all))
	}
}

func TestAddReplyUnknownThread(t *testing.T) {
	s, p := newTestService(t)
	login(t, p, "Ada", "ada@example.com")

	_, err := s.AddReply(context.Background(), "missing", "hello?")
	if !store.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestQueriesByScope(t *testing.T) {
	s, p := newTestService(t)
	ctx := context.Background()
	login(t, p, "Ada", "ada@example.com")

	if _, err := s.AddDiscussion(ctx, "web-dev", "web-dev-1", "First", "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddDiscussion(ctx, "web-dev", "web-dev-2", "Second", "b"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddDiscussion(ctx, "ui-ux", "ui-ux-1", "Third", "c"); err != nil {
		t.Fatalf("add: %v", err)
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
	if all[0].Title != "First" {
		t.Errorf("oldest first violated: %q", all[0].Title)
	}

	bySkill, err := s.ForSkill(ctx, "web-dev")
	if err != nil {
		t.Fatalf("for skill: %v", err)
	}
	if len(bySkill) != 2 {
		t.Fatalf("skill threads = %d, want 2", len(bySkill))
	}

	byModule, err := s.ForModule(ctx, "ui-ux-1")
	if err != nil {
		t.Fatalf("for module: %v", err)
	}
	if len(byModule) != 1 || byModule[0].Title != "Third" {
		t.Fatalf("module threads = %+v", byModule)
	}
}
