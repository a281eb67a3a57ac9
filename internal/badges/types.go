package badges

// Type identifies the category of achievement a badge records.
type Type string

const (
	TypeStreak     Type = "streak"
	TypeCompletion Type = "completion"
	TypeMastery    Type = "mastery"
	TypeSpecial    Type = "special"
)

// AllTypes returns all badge types in display order.
func AllTypes() []Type {
	return []Type{TypeStreak, TypeCompletion, TypeMastery, TypeSpecial}
}

// DisplayName returns a human-readable label for the badge type.
func (t Type) DisplayName() string {
	switch t {
	case TypeStreak:
		return "Streak"
	case TypeCompletion:
		return "Completion"
	case TypeMastery:
		return "Mastery"
	case TypeSpecial:
		return "Special"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t Type) Icon() string {
	switch t {
	case TypeStreak:
		return "🔥"
	case TypeCompletion:
		return "✅"
	case TypeMastery:
		return "🏆"
	case TypeSpecial:
		return "⭐"
	default:
		return "✦"
	}
}

// Tier grades a badge within its milestone family.
type Tier string

const (
	TierNone   Tier = ""
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	default:
		return ""
	}
}
