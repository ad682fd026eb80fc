package in

import (
	"context"

	"trak/internal/modules/dashboard/dto"
)

type Usecase interface {
	// Load runs all four reads for one epoch and range. The reads are
	// independent: each slice settles with its own data or error.
	Load(ctx context.Context, input dto.LoadInput) dto.SnapshotOutput
	// Per-slice reads for callers that schedule fetches themselves (the TUI
	// issues one command per slice).
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Checklist(ctx context.Context) ([]dto.ChecklistItemOutput, error)
	Activity(ctx context.Context) ([]dto.ActivityOutput, error)
	Series(ctx context.Context, rng string) ([]dto.SeriesPointOutput, error)
}
