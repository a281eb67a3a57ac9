package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// XPEventData captures a single XP award for the audit trail.
type XPEventData struct {
	UserID   string
	Points   int
	Reason   string
	SkillID  *string
	ModuleID *string
}

// XPEventRecord is a stored XP award.
type XPEventRecord struct {
	UserID    string
	Points    int
	Reason    string
	SkillID   *string
	ModuleID  *string
	Sequence  int64
	Timestamp time.Time
}

// BadgeEventData captures a badge award for the audit trail.
type BadgeEventData struct {
	UserID    string
	BadgeName string
	BadgeType string
	Tier      string
}

// BadgeEventRecord is a stored badge award.
type BadgeEventRecord struct {
	UserID    string
	BadgeName string
	BadgeType string
	Tier      string
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the audit events. Events
// are append-only; nothing ever updates or deletes individual rows.
type EventRepo interface {
	// AppendXP records an XP award.
	AppendXP(ctx context.Context, data XPEventData) error

	// AppendBadge records a badge award.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// QueryXP returns XP awards, newest first.
	QueryXP(ctx context.Context, opts QueryOpts) ([]XPEventRecord, error)

	// QueryBadges returns badge awards, newest first.
	QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)
}

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Each event type lives in its own ent-managed
// table, so per-table auto-increment IDs can't establish cross-type
// ordering. This shared counter assigns a single increasing sequence to
// every event regardless of type (did the badge come before or after the
// XP award?).
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
