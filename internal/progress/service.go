// Package progress drives the module status state machine and the skill
// level queries built on top of it. Status only moves forward: not-started
// → in-progress → completed. Completing a module is the single place XP
// enters the system.
package progress

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/nishantk77/skillpath-ascend-together/internal/badges"
	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
)

// Service mutates module status and answers skill progress queries.
type Service struct {
	skills   store.SkillRepo
	profile  *profile.Service
	notifier notify.Notifier

	now func() time.Time
}

// NewService creates a progress service. All mutations require an
// authenticated session on the profile service.
func NewService(st *store.Store, p *profile.Service, n notify.Notifier) *Service {
	if n == nil {
		n = notify.Discard
	}
	return &Service{skills: st.SkillRepo(), profile: p, notifier: n, now: time.Now}
}

// Skills returns the full catalog with current statuses.
func (s *Service) Skills(ctx context.Context) ([]catalog.Skill, error) {
	return s.skills.All(ctx)
}

// Skill returns one skill with current statuses.
func (s *Service) Skill(ctx context.Context, skillID string) (*catalog.Skill, error) {
	return s.skills.ByID(ctx, skillID)
}

// Start moves a module from not-started to in-progress. Starting a module
// that is already in progress or completed is a no-op: the learner's
// position never moves backward.
func (s *Service) Start(ctx context.Context, skillID, moduleID string) error {
	if !s.profile.IsAuthenticated() {
		return profile.ErrUnauthenticated
	}

	_, mod, err := s.lookup(ctx, skillID, moduleID)
	if err != nil {
		return err
	}
	if mod.Status != catalog.StatusNotStarted {
		return nil
	}

	if err := s.skills.UpdateModuleStatus(ctx, skillID, moduleID, catalog.StatusInProgress); err != nil {
		return err
	}
	s.notifier.Notify("Module started", mod.Title)
	return nil
}

// Complete moves a module into the completed state and applies the
// completion side effects exactly once: the XP reward, the learner's
// completed-modules counter, milestone badges, and the skill mastery
// badge when this was the skill's last open module. Completing an
// already-completed module is a no-op and never double-awards XP.
func (s *Service) Complete(ctx context.Context, skillID, moduleID string) error {
	if !s.profile.IsAuthenticated() {
		return profile.ErrUnauthenticated
	}

	skill, mod, err := s.lookup(ctx, skillID, moduleID)
	if err != nil {
		return err
	}
	if mod.Status == catalog.StatusCompleted {
		return nil
	}

	if err := s.skills.UpdateModuleStatus(ctx, skillID, moduleID, catalog.StatusCompleted); err != nil {
		return err
	}
	mod.Status = catalog.StatusCompleted

	if err := s.profile.RecordModuleCompletion(ctx, mod.XPReward, skillID, moduleID, mod.Title); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}

	if skill.Completed() {
		b := badges.SkillMastery(skill.Name, s.now())
		if err := s.profile.AwardBadge(ctx, b); err != nil {
			return fmt.Errorf("award mastery badge: %w", err)
		}
	}
	return nil
}

// UpdateStatus applies an arbitrary requested status, validating that the
// move is forward. It is the generic entry point behind Start and
// Complete; requesting the module's current status is a no-op.
func (s *Service) UpdateStatus(ctx context.Context, skillID, moduleID string, status catalog.Status) error {
	if !status.Valid() {
		return &profile.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}
	if !s.profile.IsAuthenticated() {
		return profile.ErrUnauthenticated
	}

	_, mod, err := s.lookup(ctx, skillID, moduleID)
	if err != nil {
		return err
	}
	if mod.Status == status {
		return nil
	}
	if !mod.Status.CanTransition(status) {
		return &profile.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("cannot move from %s back to %s", mod.Status, status),
		}
	}

	if status == catalog.StatusCompleted {
		return s.Complete(ctx, skillID, moduleID)
	}
	if err := s.skills.UpdateModuleStatus(ctx, skillID, moduleID, status); err != nil {
		return err
	}
	s.notifier.Notify("Module started", mod.Title)
	return nil
}

// Recommended returns the skills matching the current user's interests.
// Without a user (or without interests) the whole catalog is returned, so
// browsing works before onboarding.
func (s *Service) Recommended(ctx context.Context) ([]catalog.Skill, error) {
	skills, err := s.skills.All(ctx)
	if err != nil {
		return nil, err
	}

	u := s.profile.Current()
	if u == nil || len(u.Interests) == 0 {
		return skills, nil
	}

	var matched []catalog.Skill
	for _, sk := range skills {
		if slices.Contains(u.Interests, sk.Name) {
			matched = append(matched, sk)
		}
	}
	return matched, nil
}

// InProgress returns the skills the learner has touched: at least one
// module started or completed.
func (s *Service) InProgress(ctx context.Context) ([]catalog.Skill, error) {
	skills, err := s.skills.All(ctx)
	if err != nil {
		return nil, err
	}

	var active []catalog.Skill
	for _, sk := range skills {
		if sk.InProgress() {
			active = append(active, sk)
		}
	}
	return active, nil
}

// lookup loads a skill and resolves the module within it.
func (s *Service) lookup(ctx context.Context, skillID, moduleID string) (*catalog.Skill, *catalog.Module, error) {
	skill, err := s.skills.ByID(ctx, skillID)
	if err != nil {
		return nil, nil, err
	}
	mod := skill.Module(moduleID)
	if mod == nil {
		return nil, nil, fmt.Errorf("module %s in skill %s: %w", moduleID, skillID, store.ErrNotFound)
	}
	return skill, mod, nil
}
