package store

import (
	"context"
	"fmt"

	"github.com/nishantk77/skillpath-ascend-together/ent"
	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
)

// seedCatalog loads the embedded skill catalog into an empty store. A
// store that already has skills is left untouched, preserving module
// statuses across restarts.
func (s *Store) seedCatalog(ctx context.Context) error {
	n, err := s.client.Skill.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count skills: %w", err)
	}
	if n > 0 {
		return nil
	}

	skills, err := catalog.Seed()
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := createSkills(ctx, tx, skills); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func createSkills(ctx context.Context, tx *ent.Tx, skills []catalog.Skill) error {
	for _, sk := range skills {
		created, err := tx.Skill.Create().
			SetID(sk.ID).
			SetName(sk.Name).
			SetDescription(sk.Description).
			SetCategory(sk.Category).
			SetDifficulty(string(sk.Difficulty)).
			SetEstimatedWeeks(sk.EstimatedWeeks).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed skill %s: %w", sk.ID, err)
		}

		for _, m := range sk.Modules {
			_, err := tx.Module.Create().
				SetID(m.ID).
				SetTitle(m.Title).
				SetDescription(m.Description).
				SetWeek(m.Week).
				SetStatus(string(m.Status)).
				SetResources(m.Resources).
				SetEstimatedHours(m.EstimatedHours).
				SetXpReward(m.XPReward).
				SetSkill(created).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed module %s: %w", m.ID, err)
			}
		}
	}
	return nil
}

// Reset wipes all learner data: users, badges, sessions, discussions, and
// audit events, and returns every module to not-started. The catalog
// itself survives.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	abort := func(step string, err error) error {
		_ = tx.Rollback()
		return fmt.Errorf("%s: %w", step, err)
	}

	if _, err := tx.Session.Delete().Exec(ctx); err != nil {
		return abort("clear sessions", err)
	}
	if _, err := tx.Reply.Delete().Exec(ctx); err != nil {
		return abort("clear replies", err)
	}
	if _, err := tx.Discussion.Delete().Exec(ctx); err != nil {
		return abort("clear discussions", err)
	}
	if _, err := tx.Badge.Delete().Exec(ctx); err != nil {
		return abort("clear badges", err)
	}
	if _, err := tx.XPEvent.Delete().Exec(ctx); err != nil {
		return abort("clear xp events", err)
	}
	if _, err := tx.BadgeEvent.Delete().Exec(ctx); err != nil {
		return abort("clear badge events", err)
	}
	if _, err := tx.User.Delete().Exec(ctx); err != nil {
		return abort("clear users", err)
	}
	if _, err := tx.Module.Update().SetStatus(string(catalog.StatusNotStarted)).Save(ctx); err != nil {
		return abort("reset module statuses", err)
	}

	return tx.Commit()
}
