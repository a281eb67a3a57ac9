// Package streak implements consecutive-login-day tracking.
//
// All comparisons use calendar days, not elapsed time: logging in at 23:59
// and again at 00:01 the next day extends the streak, while two logins an
// hour apart on the same day leave it unchanged.
package streak

import "time"

// Outcome describes what a login did to the streak.
type Outcome int

const (
	// Unchanged means the learner already logged in today.
	Unchanged Outcome = iota
	// Started means this is the first recorded login.
	Started
	// Extended means the login was exactly one calendar day after the last.
	Extended
	// Reset means a gap of more than one day ended the previous streak.
	Reset
)

// State holds the streak counters alongside the last recorded login day.
type State struct {
	Current   int
	Longest   int
	LastLogin *time.Time
}

// Apply records a login at now and returns the updated state.
// The longest counter never decreases, and the invariant
// Longest >= Current holds on every path.
func Apply(s State, now time.Time) (State, Outcome) {
	out := State{Current: s.Current, Longest: s.Longest}
	login := now
	out.LastLogin = &login

	if s.LastLogin == nil {
		out.Current = 1
		out.Longest = max(s.Longest, 1)
		return out, Started
	}

	switch DaysBetween(*s.LastLogin, now) {
	case 0:
		return out, Unchanged
	case 1:
		out.Current = s.Current + 1
		out.Longest = max(s.Longest, out.Current)
		return out, Extended
	default:
		// Gap (or clock moved backward): today counts as day one.
		out.Current = 1
		out.Longest = max(s.Longest, 1)
		return out, Reset
	}
}

// DaysBetween returns the number of calendar days from a to b in a's
// location. Negative when b is before a's day. Both dates are rebuilt at
// midnight UTC before subtracting, so DST transitions (23- and 25-hour
// local days) cannot shift the count.
func DaysBetween(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.In(a.Location()).Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}
