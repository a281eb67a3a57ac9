package streak

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestApplyFirstLogin(t *testing.T) {
	now := day(2024, 3, 10, 9)
	got, out := Apply(State{}, now)

	if out != Started {
		t.Fatalf("outcome = %v, want Started", out)
	}
	if got.Current != 1 || got.Longest != 1 {
		t.Errorf("got current=%d longest=%d, want 1/1", got.Current, got.Longest)
	}
	if got.LastLogin == nil || !got.LastLogin.Equal(now) {
		t.Errorf("LastLogin = %v, want %v", got.LastLogin, now)
	}
}

func TestApplySameDay(t *testing.T) {
	last := day(2024, 3, 10, 8)
	got, out := Apply(State{Current: 4, Longest: 6, LastLogin: &last}, day(2024, 3, 10, 22))

	if out != Unchanged {
		t.Fatalf("outcome = %v, want Unchanged", out)
	}
	if got.Current != 4 || got.Longest != 6 {
		t.Errorf("got current=%d longest=%d, want 4/6", got.Current, got.Longest)
	}
}

func TestApplyNextDay(t *testing.T) {
	last := day(2024, 3, 10, 23)
	got, out := Apply(State{Current: 2, Longest: 2, LastLogin: &last}, day(2024, 3, 11, 0))

	if out != Extended {
		t.Fatalf("outcome = %v, want Extended", out)
	}
	if got.Current != 3 {
		t.Errorf("current = %d, want 3", got.Current)
	}
	if got.Longest != 3 {
		t.Errorf("longest = %d, want 3", got.Longest)
	}
}

func TestApplyNextDayKeepsLongerRecord(t *testing.T) {
	last := day(2024, 3, 10, 12)
	got, _ := Apply(State{Current: 2, Longest: 9, LastLogin: &last}, day(2024, 3, 11, 12))

	if got.Current != 3 || got.Longest != 9 {
		t.Errorf("got current=%d longest=%d, want 3/9", got.Current, got.Longest)
	}
}

func TestApplyGapResets(t *testing.T) {
	last := day(2024, 3, 5, 12)
	got, out := Apply(State{Current: 7, Longest: 7, LastLogin: &last}, day(2024, 3, 10, 12))

	if out != Reset {
		t.Fatalf("outcome = %v, want Reset", out)
	}
	if got.Current != 1 {
		t.Errorf("current = %d, want 1", got.Current)
	}
	if got.Longest != 7 {
		t.Errorf("longest = %d, want 7 (unchanged)", got.Longest)
	}
}

func TestLongestNeverBelowCurrent(t *testing.T) {
	// Walk a week of logins with a gap in the middle and check the
	// invariant after every step.
	s := State{}
	days := []int{1, 2, 3, 4, 8, 9, 9, 10}
	for _, d := range days {
		s, _ = Apply(s, day(2024, 4, d, 10))
		if s.Longest < s.Current {
			t.Fatalf("day %d: longest %d < current %d", d, s.Longest, s.Current)
		}
	}
	if s.Current != 3 {
		t.Errorf("final current = %d, want 3", s.Current)
	}
	if s.Longest != 4 {
		t.Errorf("final longest = %d, want 4", s.Longest)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b time.Time
		want int
	}{
		{day(2024, 1, 1, 0), day(2024, 1, 1, 23), 0},
		{day(2024, 1, 1, 23), day(2024, 1, 2, 0), 1},
		{day(2024, 1, 1, 0), day(2024, 1, 6, 12), 5},
		{day(2024, 1, 2, 0), day(2024, 1, 1, 0), -1},
		{day(2024, 2, 28, 12), day(2024, 3, 1, 12), 2}, // leap year
	}

	for _, tt := range tests {
		got := DaysBetween(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDaysBetweenAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			// Spring forward: the local day is only 23 hours long,
			// but it is still exactly one calendar day.
			"spring forward next day",
			time.Date(2025, 3, 9, 21, 0, 0, 0, loc),
			time.Date(2025, 3, 10, 8, 0, 0, 0, loc),
			1,
		},
		{
			"spring forward same day",
			time.Date(2025, 3, 9, 1, 0, 0, 0, loc),
			time.Date(2025, 3, 9, 23, 0, 0, 0, loc),
			0,
		},
		{
			// Fall back: 25-hour local day, still one calendar day.
			"fall back next day",
			time.Date(2025, 11, 1, 21, 0, 0, 0, loc),
			time.Date(2025, 11, 2, 8, 0, 0, 0, loc),
			1,
		},
		{
			"two days spanning spring forward",
			time.Date(2025, 3, 8, 12, 0, 0, 0, loc),
			time.Date(2025, 3, 10, 12, 0, 0, 0, loc),
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestApplyExtendsAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	last := time.Date(2025, 3, 9, 21, 0, 0, 0, loc)
	got, out := Apply(State{Current: 5, Longest: 5, LastLogin: &last},
		time.Date(2025, 3, 10, 8, 0, 0, 0, loc))

	if out != Extended {
		t.Fatalf("outcome = %v, want Extended", out)
	}
	if got.Current != 6 || got.Longest != 6 {
		t.Errorf("got current=%d longest=%d, want 6/6", got.Current, got.Longest)
	}
}

func TestSameDay(t *testing.T) {
	if !SameDay(day(2024, 5, 1, 0), day(2024, 5, 1, 23)) {
		t.Error("expected same day")
	}
	if SameDay(day(2024, 5, 1, 23), day(2024, 5, 2, 0)) {
		t.Error("expected different days")
	}
}
