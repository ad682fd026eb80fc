package usecase

import (
	"context"
	"sync"

	"trak/internal/modules/dashboard/domain"
	dashdto "trak/internal/modules/dashboard/dto"
	dashin "trak/internal/modules/dashboard/port/in"
	"trak/internal/modules/dashboard/service"
)

// Interactor is the dashboard aggregator. Identity resolution is a hard
// prerequisite and happens before any of these reads is issued; callers
// enforce that ordering (the TUI gate, the CLI command preamble).
//
// In-flight reads superseded by a newer epoch or range are not cancelled:
// slices are independent and results land per slice, so a late response can
// only overwrite its own slice (last write wins).
type Interactor struct {
	svc *service.DashboardService
}

func NewInteractor(svc *service.DashboardService) dashin.Usecase {
	return &Interactor{svc: svc}
}

// Load issues the four reads concurrently and waits for all of them. Each
// slice carries its own result; one failure neither blocks nor rolls back
// the others.
func (i *Interactor) Load(ctx context.Context, input dashdto.LoadInput) dashdto.SnapshotOutput {
	rng, err := domain.ParseRange(input.Range)
	if err != nil {
		rng = domain.DefaultRange
	}
	out := dashdto.SnapshotOutput{Epoch: input.Epoch, Range: string(rng)}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		summary, err := i.Summary(ctx)
		out.Summary = dashdto.SummarySlice{Data: summary, Err: err}
	}()
	go func() {
		defer wg.Done()
		items, err := i.Checklist(ctx)
		out.Checklist = dashdto.ChecklistSlice{Items: items, Err: err}
	}()
	go func() {
		defer wg.Done()
		items, err := i.Activity(ctx)
		out.Activity = dashdto.ActivitySlice{Items: items, Err: err}
	}()
	go func() {
		defer wg.Done()
		points, err := i.Series(ctx, string(rng))
		out.Series = dashdto.SeriesSlice{Points: points, Err: err}
	}()
	wg.Wait()
	return out
}

func (i *Interactor) Summary(ctx context.Context) (dashdto.SummaryOutput, error) {
	summary, err := i.svc.Summary(ctx)
	if err != nil {
		return dashdto.SummaryOutput{}, err
	}
	out := dashdto.SummaryOutput{
		TotalStudyDays: summary.TotalStudyDays,
		CurrentStreak:  summary.CurrentStreak,
	}
	if summary.MostStudied != nil {
		out.MostStudied = &dashdto.CourseDaysOutput{
			Name: summary.MostStudied.Name,
			Days: summary.MostStudied.Days,
		}
	}
	return out, nil
}

func (i *Interactor) Checklist(ctx context.Context) ([]dashdto.ChecklistItemOutput, error) {
	items, err := i.svc.Checklist(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dashdto.ChecklistItemOutput, len(items))
	for idx, item := range items {
		out[idx] = dashdto.ChecklistItemOutput{
			CourseName:    item.CourseName,
			LastStudiedAt: item.LastStudiedAt,
		}
	}
	return out, nil
}

func (i *Interactor) Activity(ctx context.Context) ([]dashdto.ActivityOutput, error) {
	items, err := i.svc.Activity(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dashdto.ActivityOutput, len(items))
	for idx, item := range items {
		out[idx] = dashdto.ActivityOutput{Date: item.Date, CourseName: item.CourseName}
	}
	return out, nil
}

func (i *Interactor) Series(ctx context.Context, rng string) ([]dashdto.SeriesPointOutput, error) {
	parsed, err := domain.ParseRange(rng)
	if err != nil {
		return nil, err
	}
	points, err := i.svc.Series(ctx, parsed)
	if err != nil {
		return nil, err
	}
	out := make([]dashdto.SeriesPointOutput, len(points))
	for idx, p := range points {
		out[idx] = dashdto.SeriesPointOutput{CourseName: p.CourseName, StudyDays: p.StudyDays}
	}
	return out, nil
}
