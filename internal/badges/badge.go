package badges

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Badge is a single earned achievement. Badges are immutable once created
// and are never revoked. Two badges held by the same learner must never
// share the same (Name, Type) pair.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        Type      `json:"type"`
	Tier        Tier      `json:"tier,omitempty"`
	DateEarned  time.Time `json:"dateEarned"`
}

// Key returns the dedup key for a badge. A learner holds at most one badge
// per key.
type Key struct {
	Name string
	Type Type
}

// Key returns the dedup key of b.
func (b Badge) Key() Key {
	return Key{Name: b.Name, Type: b.Type}
}

// Held reports whether the set already contains a badge with the same
// (name, type) pair as the candidate.
func Held(held []Badge, name string, t Type) bool {
	for _, b := range held {
		if b.Name == name && b.Type == t {
			return true
		}
	}
	return false
}

// SkillMastery builds the badge awarded when every module of a skill is
// completed.
func SkillMastery(skillName string, now time.Time) Badge {
	return Badge{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("%s Master", skillName),
		Description: fmt.Sprintf("Completed every module in %s", skillName),
		Type:        TypeMastery,
		Tier:        TierGold,
		DateEarned:  now,
	}
}
