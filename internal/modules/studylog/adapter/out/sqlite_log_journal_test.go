package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	out "trak/internal/modules/studylog/adapter/out"
)

func TestJournalRoundTripNewestFirst(t *testing.T) {
	t.Parallel()
	journal, err := out.NewSQLiteLogJournal(filepath.Join(t.TempDir(), "state", "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if err := journal.Append(context.Background(), []string{"Math"}, base); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := journal.Append(context.Background(), []string{"Physics", "History"}, base.Add(time.Hour)); err != nil {
		t.Fatalf("append second: %v", err)
	}

	entries, err := journal.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(entries[0].CourseNames) != 2 || entries[0].CourseNames[0] != "Physics" {
		t.Fatalf("newest entry first, got %+v", entries[0])
	}
	if !entries[0].CommittedAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("timestamp round trip: got %s", entries[0].CommittedAt)
	}
	if entries[1].CourseNames[0] != "Math" {
		t.Fatalf("oldest entry last, got %+v", entries[1])
	}
}

func TestJournalRecentHonorsLimit(t *testing.T) {
	t.Parallel()
	journal, err := out.NewSQLiteLogJournal(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := journal.Append(context.Background(), []string{"Math"}, base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	entries, err := journal.Recent(context.Background(), 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestJournalEmptyDatabase(t *testing.T) {
	t.Parallel()
	journal, err := out.NewSQLiteLogJournal(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	entries, err := journal.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
