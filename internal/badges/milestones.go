package badges

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Counters are the learner statistics the milestone families watch.
type Counters struct {
	XP               int
	StreakDays       int
	CompletedModules int
}

// milestone is one threshold within a family.
type milestone struct {
	threshold int
	tier      Tier
}

// The three milestone families. Thresholds are strictly increasing so a
// single pass can award every tier crossed at once (e.g. importing a
// learner with 600 XP awards both bronze and silver).
var (
	xpMilestones         = []milestone{{100, TierBronze}, {500, TierSilver}, {1000, TierGold}}
	streakMilestones     = []milestone{{3, TierBronze}, {7, TierSilver}, {30, TierGold}}
	completionMilestones = []milestone{{5, TierBronze}, {15, TierSilver}, {30, TierGold}}
)

// Evaluate returns the badges newly earned given the current counters and
// the badges already held. It is idempotent: calling it again with the same
// counters and the previously returned badges appended to held yields an
// empty slice. Badges are never removed, only added.
func Evaluate(c Counters, held []Badge, now time.Time) []Badge {
	var earned []Badge

	award := func(name, description string, t Type, tier Tier) {
		if Held(held, name, t) || Held(earned, name, t) {
			return
		}
		earned = append(earned, Badge{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
			Type:        t,
			Tier:        tier,
			DateEarned:  now,
		})
	}

	for _, m := range xpMilestones {
		if c.XP >= m.threshold {
			award(
				fmt.Sprintf("XP Master %s", m.tier),
				fmt.Sprintf("Earned %d XP", m.threshold),
				TypeMastery, m.tier,
			)
		}
	}

	for _, m := range streakMilestones {
		if c.StreakDays >= m.threshold {
			award(
				fmt.Sprintf("%d Day Streak %s", m.threshold, m.tier),
				fmt.Sprintf("Logged in %d days in a row", m.threshold),
				TypeStreak, m.tier,
			)
		}
	}

	for _, m := range completionMilestones {
		if c.CompletedModules >= m.threshold {
			award(
				fmt.Sprintf("Module Master %s", m.tier),
				fmt.Sprintf("Completed %d modules", m.threshold),
				TypeCompletion, m.tier,
			)
		}
	}

	return earned
}
