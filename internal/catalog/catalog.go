// Package catalog defines the learning content: skills made of ordered
// modules, each carrying read-only resources. The seed catalog ships
// embedded in the binary and is loaded into the store on first run; module
// status is the only field user actions mutate afterwards.
package catalog

import (
	"sort"
	"time"
)

// Difficulty rates a skill for learners browsing the catalog.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ResourceType identifies the kind of learning resource.
type ResourceType string

const (
	ResourceVideo    ResourceType = "video"
	ResourceArticle  ResourceType = "article"
	ResourceQuiz     ResourceType = "quiz"
	ResourceExercise ResourceType = "exercise"
)

// Resource is read-only reference material attached to a module.
type Resource struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Type             ResourceType `json:"type"`
	URL              string       `json:"url"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
	Creator          string       `json:"creator"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// Module is the smallest unit of learning content. XPReward is granted
// exactly once, on the transition into StatusCompleted.
type Module struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Week           int        `json:"week"`
	Status         Status     `json:"status"`
	Resources      []Resource `json:"resources"`
	EstimatedHours int        `json:"estimatedHours"`
	XPReward       int        `json:"xpReward"`
}

// Skill groups an ordered run of modules under one learning track.
type Skill struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Difficulty     Difficulty `json:"difficulty"`
	Modules        []Module   `json:"modules"`
	EstimatedWeeks int        `json:"estimatedWeeks"`
}

// SortModules orders the skill's modules by week, ascending.
func (s *Skill) SortModules() {
	sort.SliceStable(s.Modules, func(i, j int) bool {
		return s.Modules[i].Week < s.Modules[j].Week
	})
}

// Module returns the module with the given ID, or nil.
func (s *Skill) Module(moduleID string) *Module {
	for i := range s.Modules {
		if s.Modules[i].ID == moduleID {
			return &s.Modules[i]
		}
	}
	return nil
}

// Completed reports whether every module of the skill is completed.
// A skill with no modules is never considered completed.
func (s *Skill) Completed() bool {
	if len(s.Modules) == 0 {
		return false
	}
	for _, m := range s.Modules {
		if m.Status != StatusCompleted {
			return false
		}
	}
	return true
}

// InProgress reports whether the learner has touched any module of the
// skill (started or completed).
func (s *Skill) InProgress() bool {
	for _, m := range s.Modules {
		if m.Status == StatusInProgress || m.Status == StatusCompleted {
			return true
		}
	}
	return false
}

// CompletionStats summarizes per-skill progress for display.
type CompletionStats struct {
	Completed  int
	InProgress int
	Total      int
	Percent    float64
}

// Stats computes the skill's completion statistics.
func (s *Skill) Stats() CompletionStats {
	st := CompletionStats{Total: len(s.Modules)}
	for _, m := range s.Modules {
		switch m.Status {
		case StatusCompleted:
			st.Completed++
		case StatusInProgress:
			st.InProgress++
		}
	}
	if st.Total > 0 {
		st.Percent = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}
