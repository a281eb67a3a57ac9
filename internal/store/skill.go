package store

import (
	"context"
	"fmt"

	"github.com/nishantk77/skillpath-ascend-together/ent"
	entmodule "github.com/nishantk77/skillpath-ascend-together/ent/module"
	entskill "github.com/nishantk77/skillpath-ascend-together/ent/skill"
	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
)

// SkillRepo manages the persisted skill catalog. Module status is the only
// field user actions mutate; everything else is seed content.
type SkillRepo interface {
	// All returns every skill with its modules ordered by week.
	All(ctx context.Context) ([]catalog.Skill, error)

	// ByID returns one skill with modules. Returns ErrNotFound if absent.
	ByID(ctx context.Context, id string) (*catalog.Skill, error)

	// UpdateModuleStatus persists a module's new status. Returns
	// ErrNotFound when the module does not belong to the skill.
	UpdateModuleStatus(ctx context.Context, skillID, moduleID string, status catalog.Status) error
}

type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) All(ctx context.Context) ([]catalog.Skill, error) {
	rows, err := r.client.Skill.Query().
		Order(ent.Asc(entskill.FieldID)).
		WithModules(func(q *ent.ModuleQuery) {
			q.Order(ent.Asc(entmodule.FieldWeek))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}

	skills := make([]catalog.Skill, len(rows))
	for i, row := range rows {
		skills[i] = entSkillToSkill(row)
	}
	return skills, nil
}

func (r *skillRepo) ByID(ctx context.Context, id string) (*catalog.Skill, error) {
	row, err := r.client.Skill.Query().
		Where(entskill.ID(id)).
		WithModules(func(q *ent.ModuleQuery) {
			q.Order(ent.Asc(entmodule.FieldWeek))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("skill %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query skill: %w", err)
	}
	s := entSkillToSkill(row)
	return &s, nil
}

func (r *skillRepo) UpdateModuleStatus(ctx context.Context, skillID, moduleID string, status catalog.Status) error {
	n, err := r.client.Module.Update().
		Where(
			entmodule.ID(moduleID),
			entmodule.HasSkillWith(entskill.ID(skillID)),
		).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update module status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("module %s in skill %s: %w", moduleID, skillID, ErrNotFound)
	}
	return nil
}

// entSkillToSkill converts an ent Skill (with modules edge loaded) to the
// catalog type.
func entSkillToSkill(row *ent.Skill) catalog.Skill {
	s := catalog.Skill{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		Category:       row.Category,
		Difficulty:     catalog.Difficulty(row.Difficulty),
		EstimatedWeeks: row.EstimatedWeeks,
	}
	for _, m := range row.Edges.Modules {
		s.Modules = append(s.Modules, catalog.Module{
			ID:             m.ID,
			Title:          m.Title,
			Description:    m.Description,
			Week:           m.Week,
			Status:         catalog.Status(m.Status),
			Resources:      m.Resources,
			EstimatedHours: m.EstimatedHours,
			XPReward:       m.XpReward,
		})
	}
	return s
}
