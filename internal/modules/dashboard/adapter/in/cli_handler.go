package in

import (
	"context"

	dashdto "trak/internal/modules/dashboard/dto"
	dashin "trak/internal/modules/dashboard/port/in"
)

type CLIHandler struct {
	usecase dashin.Usecase
}

func NewCLIHandler(usecase dashin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context, input dashdto.LoadInput) dashdto.SnapshotOutput {
	return h.usecase.Load(ctx, input)
}

func (h CLIHandler) Summary(ctx context.Context) (dashdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Checklist(ctx context.Context) ([]dashdto.ChecklistItemOutput, error) {
	return h.usecase.Checklist(ctx)
}

func (h CLIHandler) Activity(ctx context.Context) ([]dashdto.ActivityOutput, error) {
	return h.usecase.Activity(ctx)
}

func (h CLIHandler) Series(ctx context.Context, rng string) ([]dashdto.SeriesPointOutput, error) {
	return h.usecase.Series(ctx, rng)
}
