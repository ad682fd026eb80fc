package datefmt_test

import (
	"testing"
	"time"

	"trak/internal/platform/datefmt"
)

func ts(year int, month time.Month, day, hour int) *time.Time {
	t := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestChecklistBucketsByUTCCalendarDay(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   *time.Time
		want string
	}{
		{"nil is never", nil, "Never"},
		{"same day", ts(2026, 3, 10, 0), "Today"},
		{"late previous evening", ts(2026, 3, 9, 23), "Yesterday"},
		{"two full days elapsed", ts(2026, 3, 7, 12), "2 days ago"},
		{"older than a week", ts(2026, 2, 14, 9), "Feb 14, 2026"},
	}
	for _, tc := range cases {
		if got := datefmt.Checklist(tc.in, now); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestChecklistUsesCalendarDaysNotElapsedHours(t *testing.T) {
	t.Parallel()
	// Ten minutes of elapsed time, but the calendar day rolled over.
	now := time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC)
	logged := ts(2026, 3, 9, 23)
	if got := datefmt.Checklist(logged, now); got != "Yesterday" {
		t.Fatalf("expected Yesterday across midnight, got %q", got)
	}
}

func TestActivityBuckets(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   *time.Time
		want string
	}{
		{"nil is unknown", nil, "Unknown"},
		{"same day", ts(2026, 3, 10, 1), "Today"},
		{"previous day", ts(2026, 3, 9, 18), "Yesterday"},
		{"older shows short date", ts(2026, 3, 1, 8), "Mar 1"},
	}
	for _, tc := range cases {
		if got := datefmt.Activity(tc.in, now); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
