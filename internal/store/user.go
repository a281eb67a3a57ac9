package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nishantk77/skillpath-ascend-together/ent"
	entbadge "github.com/nishantk77/skillpath-ascend-together/ent/badge"
	entuser "github.com/nishantk77/skillpath-ascend-together/ent/user"
	"github.com/nishantk77/skillpath-ascend-together/internal/badges"
)

// Role is the user's permission class.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleLearner Role = "learner"
	RoleCurator Role = "curator"
)

// User is the learner record with profile fields and gamification
// counters. Badges are loaded alongside the user; PasswordHash is only
// populated by the repo and never leaves the auth layer.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Role             Role
	XP               int
	Interests        []string
	WeeklyTime       int
	Goals            []string
	Badges           []badges.Badge
	JoinDate         time.Time
	LastLoginDate    *time.Time
	CurrentStreak    int
	LongestStreak    int
	CompletedModules int
}

// HasBadge reports whether the user holds a badge with the given name and
// type.
func (u *User) HasBadge(name string, t badges.Type) bool {
	return badges.Held(u.Badges, name, t)
}

// UserRepo manages persisted user records.
type UserRepo interface {
	// Create stores a new user. The caller supplies the ID.
	Create(ctx context.Context, u *User) error

	// ByID loads a user and their badges. Returns ErrNotFound if absent.
	ByID(ctx context.Context, id string) (*User, error)

	// ByEmail loads a user by email. Returns ErrNotFound if absent.
	ByEmail(ctx context.Context, email string) (*User, error)

	// Update persists the user's mutable fields (profile and counters,
	// not badges or credentials).
	Update(ctx context.Context, u *User) error

	// AddBadge appends a badge to the user's collection. Appending a
	// badge the user already holds is a no-op.
	AddBadge(ctx context.Context, userID string, b badges.Badge) error
}

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u *User) error {
	_, err := r.client.User.Create().
		SetID(u.ID).
		SetName(u.Name).
		SetEmail(u.Email).
		SetPasswordHash(u.PasswordHash).
		SetRole(string(u.Role)).
		SetXp(u.XP).
		SetInterests(u.Interests).
		SetWeeklyTime(u.WeeklyTime).
		SetGoals(u.Goals).
		SetJoinDate(u.JoinDate).
		SetNillableLastLoginDate(u.LastLoginDate).
		SetCurrentStreak(u.CurrentStreak).
		SetLongestStreak(u.LongestStreak).
		SetCompletedModules(u.CompletedModules).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) ByID(ctx context.Context, id string) (*User, error) {
	u, err := r.client.User.Query().
		Where(entuser.ID(id)).
		WithBadges(func(q *ent.BadgeQuery) {
			q.Order(ent.Asc(entbadge.FieldDateEarned))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.client.User.Query().
		Where(entuser.Email(email)).
		WithBadges(func(q *ent.BadgeQuery) {
			q.Order(ent.Asc(entbadge.FieldDateEarned))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) Update(ctx context.Context, u *User) error {
	builder := r.client.User.UpdateOneID(u.ID).
		SetName(u.Name).
		SetEmail(u.Email).
		SetRole(string(u.Role)).
		SetXp(u.XP).
		SetInterests(u.Interests).
		SetWeeklyTime(u.WeeklyTime).
		SetGoals(u.Goals).
		SetCurrentStreak(u.CurrentStreak).
		SetLongestStreak(u.LongestStreak).
		SetCompletedModules(u.CompletedModules)

	if u.LastLoginDate != nil {
		builder = builder.SetLastLoginDate(*u.LastLoginDate)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepo) AddBadge(ctx context.Context, userID string, b badges.Badge) error {
	_, err := r.client.Badge.Create().
		SetID(b.ID).
		SetName(b.Name).
		SetDescription(b.Description).
		SetBadgeType(string(b.Type)).
		SetTier(string(b.Tier)).
		SetDateEarned(b.DateEarned).
		SetOwnerID(userID).
		Save(ctx)
	if err != nil {
		// The unique (owner, name, type) index is the backstop for the
		// no-duplicate-badges invariant; hitting it means the badge is
		// already held.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("add badge: %w", err)
	}
	return nil
}

// entUserToUser converts an ent User (with badges edge loaded) to the
// domain type.
func entUserToUser(u *ent.User) *User {
	out := &User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		Role:             Role(u.Role),
		XP:               u.Xp,
		Interests:        u.Interests,
		WeeklyTime:       u.WeeklyTime,
		Goals:            u.Goals,
		JoinDate:         u.JoinDate,
		LastLoginDate:    u.LastLoginDate,
		CurrentStreak:    u.CurrentStreak,
		LongestStreak:    u.LongestStreak,
		CompletedModules: u.CompletedModules,
	}
	for _, b := range u.Edges.Badges {
		out.Badges = append(out.Badges, badges.Badge{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Type:        badges.Type(b.BadgeType),
			Tier:        badges.Tier(b.Tier),
			DateEarned:  b.DateEarned,
		})
	}
	return out
}
