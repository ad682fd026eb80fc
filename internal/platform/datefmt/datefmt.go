// Package datefmt buckets timestamps into the relative labels the dashboard
// renders. Comparisons use UTC calendar dates, not elapsed hours: a session
// logged at 23:50 UTC is still "Today" ten minutes later.
package datefmt

import (
	"strconv"
	"time"
)

// Checklist renders a course's last-studied timestamp. A nil timestamp means
// the course was never studied.
func Checklist(t *time.Time, now time.Time) string {
	if t == nil {
		return "Never"
	}
	if label, ok := relativeDay(*t, now); ok {
		return label
	}
	if days := floorDays(*t, now); days < 7 {
		return strconv.Itoa(days) + " days ago"
	}
	return t.UTC().Format("Jan 2, 2006")
}

// Activity renders an activity record's date. A nil timestamp means the
// source omitted it.
func Activity(t *time.Time, now time.Time) string {
	if t == nil {
		return "Unknown"
	}
	if label, ok := relativeDay(*t, now); ok {
		return label
	}
	return t.UTC().Format("Jan 2")
}

func relativeDay(t, now time.Time) (string, bool) {
	if sameUTCDay(t, now) {
		return "Today", true
	}
	if sameUTCDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday", true
	}
	return "", false
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func floorDays(t, now time.Time) int {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
