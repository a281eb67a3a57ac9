package profile

import (
	"context"
	"fmt"

	"github.com/nishantk77/skillpath-ascend-together/internal/badges"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
	"github.com/nishantk77/skillpath-ascend-together/internal/streak"
)

// AddXP awards points to the current user. XP is monotonic: negative
// points are a validation error, and nothing ever subtracts from the
// total. Crossing an XP milestone awards the matching badge.
func (s *Service) AddXP(ctx context.Context, points int) error {
	return s.addXP(ctx, points, "XP awarded", nil, nil)
}

func (s *Service) addXP(ctx context.Context, points int, reason string, skillID, moduleID *string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	if points < 0 {
		return &ValidationError{Field: "points", Message: "must not be negative"}
	}

	u.XP += points
	if err := s.users.Update(ctx, u); err != nil {
		return fmt.Errorf("persist xp: %w", err)
	}
	if err := s.events.AppendXP(ctx, store.XPEventData{
		UserID:   u.ID,
		Points:   points,
		Reason:   reason,
		SkillID:  skillID,
		ModuleID: moduleID,
	}); err != nil {
		return fmt.Errorf("record xp event: %w", err)
	}

	s.notifier.Notify(fmt.Sprintf("+%d XP", points), "You've earned experience points!")
	_, err = s.CheckAndAwardBadges(ctx)
	return err
}

// AwardBadge grants a badge to the current user. Awarding a badge the
// user already holds (same name and type) is a no-op.
func (s *Service) AwardBadge(ctx context.Context, b badges.Badge) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	if u.HasBadge(b.Name, b.Type) {
		return nil
	}

	if err := s.users.AddBadge(ctx, u.ID, b); err != nil {
		return fmt.Errorf("persist badge: %w", err)
	}
	if err := s.events.AppendBadge(ctx, store.BadgeEventData{
		UserID:    u.ID,
		BadgeName: b.Name,
		BadgeType: string(b.Type),
		Tier:      string(b.Tier),
	}); err != nil {
		return fmt.Errorf("record badge event: %w", err)
	}

	u.Badges = append(u.Badges, b)
	s.notifier.Notify("Badge earned!", fmt.Sprintf("%s %s", b.Type.Icon(), b.Name))
	return nil
}

// CheckAndAwardBadges evaluates every milestone family against the current
// counters and awards whatever is newly earned. Safe to call at any time:
// re-evaluation with unchanged counters awards nothing.
func (s *Service) CheckAndAwardBadges(ctx context.Context) ([]badges.Badge, error) {
	u, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	earned := badges.Evaluate(badges.Counters{
		XP:               u.XP,
		StreakDays:       u.CurrentStreak,
		CompletedModules: u.CompletedModules,
	}, u.Badges, s.now())

	for _, b := range earned {
		if err := s.AwardBadge(ctx, b); err != nil {
			return nil, err
		}
	}
	return earned, nil
}

// UpdateStreak records a login for streak purposes. It compares calendar
// days, so calling it repeatedly within one day never inflates the streak;
// callers should still invoke it once per session rather than per screen.
func (s *Service) UpdateStreak(ctx context.Context) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}

	state, outcome := streak.Apply(streak.State{
		Current:   u.CurrentStreak,
		Longest:   u.LongestStreak,
		LastLogin: u.LastLoginDate,
	}, s.now())

	u.CurrentStreak = state.Current
	u.LongestStreak = state.Longest
	u.LastLoginDate = state.LastLogin
	if err := s.users.Update(ctx, u); err != nil {
		return fmt.Errorf("persist streak: %w", err)
	}

	switch outcome {
	case streak.Extended:
		s.notifier.Notify("Streak extended!", fmt.Sprintf("%d days in a row", u.CurrentStreak))
	case streak.Reset:
		s.notifier.Notify("Streak reset", "Welcome back, today is day one")
	}

	if outcome == streak.Extended || outcome == streak.Started {
		if _, err := s.CheckAndAwardBadges(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RecordModuleCompletion applies the user-side effects of completing a
// module: the XP reward, the completed-modules counter, and a milestone
// re-check. The module state transition itself belongs to the progress
// service.
func (s *Service) RecordModuleCompletion(ctx context.Context, xpReward int, skillID, moduleID, moduleTitle string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}

	u.CompletedModules++
	if err := s.users.Update(ctx, u); err != nil {
		return fmt.Errorf("persist completion count: %w", err)
	}

	s.notifier.Notify("Module completed!", fmt.Sprintf("You've earned %d XP", xpReward))
	return s.addXP(ctx, xpReward, fmt.Sprintf("Completed %s", moduleTitle), &skillID, &moduleID)
}
