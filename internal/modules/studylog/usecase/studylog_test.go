package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"trak/internal/modules/studylog/domain"
	logdto "trak/internal/modules/studylog/dto"
	studylogin "trak/internal/modules/studylog/port/in"
	"trak/internal/modules/studylog/service"
	"trak/internal/modules/studylog/usecase"
	apperrors "trak/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type fakeLogAPI struct {
	saveErr error
	saved   [][]string
}

func (f *fakeLogAPI) Save(_ context.Context, names []string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, names)
	return nil
}

type fakeJournal struct {
	appendErr error
	entries   []domain.JournalEntry
}

func (f *fakeJournal) Append(_ context.Context, names []string, at time.Time) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, domain.JournalEntry{CourseNames: names, CommittedAt: at})
	return nil
}

func (f *fakeJournal) Recent(_ context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func newInteractor(api *fakeLogAPI, journal *fakeJournal) studylogin.Usecase {
	clk := fixedClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return usecase.NewInteractor(service.NewStudyLogService(api), journal, clk, zap.NewNop())
}

func TestToggleFlipsMembership(t *testing.T) {
	t.Parallel()
	uc := newInteractor(&fakeLogAPI{}, &fakeJournal{})

	first := uc.Toggle("Math")
	if !first.Selected || first.Count != 1 {
		t.Fatalf("first toggle: %+v", first)
	}
	second := uc.Toggle("Math")
	if second.Selected || second.Count != 0 {
		t.Fatalf("double toggle must be a no-op: %+v", second)
	}

	uc.Toggle("Physics")
	uc.Toggle("Math")
	selected := uc.Selected()
	if len(selected) != 2 || selected[0] != "Math" || selected[1] != "Physics" {
		t.Fatalf("expected sorted selection, got %v", selected)
	}
	if !uc.IsSelected("Math") || uc.IsSelected("History") {
		t.Fatalf("membership check wrong")
	}
}

func TestCommitEmptySelectionFailsWithoutNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeLogAPI{}
	uc := newInteractor(api, &fakeJournal{})

	if _, err := uc.Commit(context.Background()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(api.saved) != 0 {
		t.Fatalf("empty commit must not reach the API")
	}
	if uc.Epoch() != 0 {
		t.Fatalf("failed commit must not advance the epoch")
	}
}

func TestCommitClearsSelectionAndAdvancesEpochExactlyOnce(t *testing.T) {
	t.Parallel()
	api := &fakeLogAPI{}
	journal := &fakeJournal{}
	uc := newInteractor(api, journal)

	uc.Toggle("Physics")
	uc.Toggle("Math")

	out, err := uc.Commit(context.Background())
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if len(out.CourseNames) != 2 || out.CourseNames[0] != "Math" {
		t.Fatalf("committed names: %v", out.CourseNames)
	}
	if out.Epoch != 1 || uc.Epoch() != 1 {
		t.Fatalf("epoch must advance exactly once, got %d", uc.Epoch())
	}
	if len(uc.Selected()) != 0 {
		t.Fatalf("selection must clear on success, got %v", uc.Selected())
	}
	if len(api.saved) != 1 {
		t.Fatalf("expected one API write, got %d", len(api.saved))
	}
	if len(journal.entries) != 1 {
		t.Fatalf("expected one journal entry, got %d", len(journal.entries))
	}
}

func TestFailedCommitLeavesSelectionAndEpochUntouched(t *testing.T) {
	t.Parallel()
	api := &fakeLogAPI{saveErr: apperrors.ErrServer}
	uc := newInteractor(api, &fakeJournal{})

	uc.Toggle("Math")
	if _, err := uc.Commit(context.Background()); !errors.Is(err, apperrors.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
	if uc.Epoch() != 0 {
		t.Fatalf("epoch must not move on failure, got %d", uc.Epoch())
	}
	if selected := uc.Selected(); len(selected) != 1 || selected[0] != "Math" {
		t.Fatalf("selection must survive a failed commit, got %v", selected)
	}

	// Retrying after the backend recovers commits the same selection.
	api.saveErr = nil
	out, err := uc.Commit(context.Background())
	if err != nil {
		t.Fatalf("retry commit: %v", err)
	}
	if out.Epoch != 1 || len(out.CourseNames) != 1 {
		t.Fatalf("retry result: %+v", out)
	}
}

func TestJournalFailureDoesNotFailAcceptedCommit(t *testing.T) {
	t.Parallel()
	api := &fakeLogAPI{}
	journal := &fakeJournal{appendErr: errors.New("disk full")}
	uc := newInteractor(api, journal)

	uc.Toggle("Math")
	out, err := uc.Commit(context.Background())
	if err != nil {
		t.Fatalf("commit must succeed despite journal failure: %v", err)
	}
	if out.Epoch != 1 {
		t.Fatalf("epoch must still advance, got %d", out.Epoch)
	}
}

func TestLogCoursesBypassesSelection(t *testing.T) {
	t.Parallel()
	api := &fakeLogAPI{}
	uc := newInteractor(api, &fakeJournal{})

	uc.Toggle("Pending")
	out, err := uc.LogCourses(context.Background(), logdto.LogInput{CourseNames: []string{"Math"}})
	if err != nil {
		t.Fatalf("log courses: %v", err)
	}
	if out.Epoch != 1 {
		t.Fatalf("explicit log must advance the epoch, got %d", out.Epoch)
	}
	if selected := uc.Selected(); len(selected) != 1 || selected[0] != "Pending" {
		t.Fatalf("explicit log must not touch the pending selection, got %v", selected)
	}
}

func TestClearSelectionDiscardsWithoutCommit(t *testing.T) {
	t.Parallel()
	api := &fakeLogAPI{}
	uc := newInteractor(api, &fakeJournal{})

	uc.Toggle("Math")
	uc.ClearSelection()
	if len(uc.Selected()) != 0 {
		t.Fatalf("selection must be empty after clear")
	}
	if len(api.saved) != 0 || uc.Epoch() != 0 {
		t.Fatalf("clear must not commit")
	}
}
