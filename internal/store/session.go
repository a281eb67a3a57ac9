package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nishantk77/skillpath-ascend-together/ent"
	entsession "github.com/nishantk77/skillpath-ascend-together/ent/session"
)

// SessionRepo persists the current-user reference so the session survives
// across CLI invocations. At most one session exists at a time.
type SessionRepo interface {
	// Set replaces the current session with one for the given user.
	Set(ctx context.Context, userID string) error

	// CurrentUserID returns the logged-in user's ID, or "" when nobody
	// is logged in.
	CurrentUserID(ctx context.Context) (string, error)

	// Clear removes the current session.
	Clear(ctx context.Context) error
}

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Set(ctx context.Context, userID string) error {
	if _, err := r.client.Session.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}
	_, err := r.client.Session.Create().
		SetUserID(userID).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) CurrentUserID(ctx context.Context) (string, error) {
	s, err := r.client.Session.Query().
		Order(ent.Desc(entsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query session: %w", err)
	}
	return s.UserID, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Session.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
