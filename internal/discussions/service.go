// Package discussions manages the per-module Q&A threads. Threads and
// replies are attributed to the user who was logged in when they were
// posted; the author's name is denormalized onto the record so threads
// stay readable even if the account changes later.
package discussions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
)

// Service creates and queries discussion threads.
type Service struct {
	threads  store.DiscussionRepo
	skills   store.SkillRepo
	profile  *profile.Service
	notifier notify.Notifier

	now func() time.Time
}

// NewService creates a discussions service. Posting requires an
// authenticated session; reading does not.
func NewService(st *store.Store, p *profile.Service, n notify.Notifier) *Service {
	if n == nil {
		n = notify.Discard
	}
	return &Service{
		threads:  st.DiscussionRepo(),
		skills:   st.SkillRepo(),
		profile:  p,
		notifier: n,
		now:      time.Now,
	}
}

// All returns every thread, oldest first.
func (s *Service) All(ctx context.Context) ([]store.Discussion, error) {
	return s.threads.All(ctx)
}

// ByID returns one thread with its replies.
func (s *Service) ByID(ctx context.Context, id string) (*store.Discussion, error) {
	return s.threads.ByID(ctx, id)
}

// ForSkill returns the threads attached to any module of a skill.
func (s *Service) ForSkill(ctx context.Context, skillID string) ([]store.Discussion, error) {
	return s.threads.BySkill(ctx, skillID)
}

// ForModule returns the threads attached to one module.
func (s *Service) ForModule(ctx context.Context, moduleID string) ([]store.Discussion, error) {
	return s.threads.ByModule(ctx, moduleID)
}

// AddDiscussion opens a new thread under a module, authored by the
// current user. Returns store.ErrNotFound when the module does not exist,
// so a typo cannot leave an orphaned thread.
func (s *Service) AddDiscussion(ctx context.Context, skillID, moduleID, title, content string) (*store.Discussion, error) {
	u := s.profile.Current()
	if u == nil {
		return nil, profile.ErrUnauthenticated
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	switch {
	case title == "":
		return nil, &profile.ValidationError{Field: "title", Message: "is required"}
	case content == "":
		return nil, &profile.ValidationError{Field: "content", Message: "is required"}
	}

	skill, err := s.skills.ByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill.Module(moduleID) == nil {
		return nil, fmt.Errorf("module %s in skill %s: %w", moduleID, skillID, store.ErrNotFound)
	}

	d := &store.Discussion{
		ID:        uuid.NewString(),
		SkillID:   skillID,
		ModuleID:  moduleID,
		UserID:    u.ID,
		UserName:  u.Name,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.threads.Create(ctx, d); err != nil {
		return nil, err
	}

	s.notifier.Notify("Discussion created", title)
	return d, nil
}

// AddReply posts a reply to an existing thread, authored by the current
// user. Returns store.ErrNotFound when the thread does not exist.
func (s *Service) AddReply(ctx context.Context, discussionID, content string) (*store.Reply, error) {
	u := s.profile.Current()
	if u == nil {
		return nil, profile.ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &profile.ValidationError{Field: "content", Message: "is required"}
	}

	rep := &store.Reply{
		ID:           uuid.NewString(),
		DiscussionID: discussionID,
		UserID:       u.ID,
		UserName:     u.Name,
		Content:      content,
		CreatedAt:    s.now(),
	}
	if err := s.threads.AddReply(ctx, discussionID, rep); err != nil {
		return nil, err
	}

	s.notifier.Notify("Reply posted", "Your reply has been added")
	return rep, nil
}
