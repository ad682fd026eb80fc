package domain_test

import (
	"testing"

	"trak/internal/modules/courses/domain"
)

func TestParseNamesSplitsOnCommasAndNewlines(t *testing.T) {
	t.Parallel()
	names := domain.ParseNames("Math, Physics\n History ,,\n\n Chemistry ")
	want := []string{"Math", "Physics", "History", "Chemistry"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("name %d: got %q want %q", i, names[i], want[i])
		}
	}
}

func TestParseNamesEmptyInput(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "   ", ",,,", "\n\n"} {
		if names := domain.ParseNames(raw); len(names) != 0 {
			t.Fatalf("expected no names for %q, got %v", raw, names)
		}
	}
}

func TestParseNamesKeepsDuplicatesAndOrder(t *testing.T) {
	t.Parallel()
	names := domain.ParseNames("B,A,B")
	if len(names) != 3 || names[0] != "B" || names[1] != "A" || names[2] != "B" {
		t.Fatalf("expected order preserved with duplicates, got %v", names)
	}
}
