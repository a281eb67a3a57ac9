// Package app wires the store and the services together. Every command
// builds one App, uses the services it needs, and closes it on the way
// out.
package app

import (
	"context"
	"fmt"

	"github.com/nishantk77/skillpath-ascend-together/internal/discussions"
	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
	"github.com/nishantk77/skillpath-ascend-together/internal/progress"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
)

// App is the composition root: one open store plus the services built on
// it, sharing a single notifier.
type App struct {
	Store       *store.Store
	Profile     *profile.Service
	Progress    *progress.Service
	Discussions *discussions.Service
	Notifier    notify.Notifier
}

// Open builds the app against the database at path, restoring the
// persisted session so the current user is available immediately.
func Open(ctx context.Context, path string, n notify.Notifier) (*App, error) {
	if n == nil {
		n = notify.Discard
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	p := profile.NewService(st, n)
	if err := p.LoadSession(ctx); err != nil {
		st.Close()
		return nil, err
	}

	return &App{
		Store:       st,
		Profile:     p,
		Progress:    progress.NewService(st, p, n),
		Discussions: discussions.NewService(st, p, n),
		Notifier:    n,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}
