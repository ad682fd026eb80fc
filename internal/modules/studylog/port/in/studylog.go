package in

import (
	"context"

	"trak/internal/modules/studylog/dto"
)

type Usecase interface {
	// Toggle flips a course in the pending selection. Purely local.
	Toggle(name string) dto.ToggleOutput
	// Selected returns the pending selection in sorted order.
	Selected() []string
	IsSelected(name string) bool
	// ClearSelection discards the pending selection without committing.
	ClearSelection()
	// Epoch increments exactly once per successful commit. Readers key their
	// refresh on it.
	Epoch() int
	// Commit sends the pending selection as one log entry. On success the
	// selection clears and the epoch advances; on failure both stay as they
	// were so the user can retry.
	Commit(ctx context.Context) (dto.CommitOutput, error)
	// LogCourses commits an explicit list, bypassing the pending selection.
	LogCourses(ctx context.Context, input dto.LogInput) (dto.CommitOutput, error)
	// History reads the local commit journal, newest first.
	History(ctx context.Context, limit int) ([]dto.JournalEntryOutput, error)
}
