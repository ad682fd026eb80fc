package out

import (
	"context"
	"time"

	"trak/internal/modules/studylog/domain"
)

// LogAPI is the write-side surface of the Trak API.
type LogAPI interface {
	Save(ctx context.Context, courseNames []string) error
}

// Journal is the local, best-effort record of committed logs. Append errors
// must not fail a commit that the API already accepted.
type Journal interface {
	Append(ctx context.Context, courseNames []string, committedAt time.Time) error
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}
