package service

import (
	"context"

	coursesin "trak/internal/modules/courses/port/in"
	"trak/internal/modules/dashboard/domain"
	dashout "trak/internal/modules/dashboard/port/out"
)

// DashboardService wraps the read endpoints with the client-side semantics
// the raw API does not provide: the enrollment join for the series and
// recency ordering for activity.
type DashboardService struct {
	api        dashout.DashboardAPI
	enrollment coursesin.Usecase
}

func NewDashboardService(api dashout.DashboardAPI, enrollment coursesin.Usecase) *DashboardService {
	return &DashboardService{api: api, enrollment: enrollment}
}

func (s *DashboardService) Summary(ctx context.Context) (domain.Summary, error) {
	return s.api.Summary(ctx)
}

func (s *DashboardService) Checklist(ctx context.Context) ([]domain.ChecklistItem, error) {
	return s.api.Checklist(ctx)
}

func (s *DashboardService) Activity(ctx context.Context) ([]domain.Activity, error) {
	items, err := s.api.RecentActivity(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortActivity(items), nil
}

// Series fetches the per-course study days for the range and left-joins them
// with the full enrollment list, so every enrolled course is represented
// even with zero study days in the window. Both reads feed a single slice:
// if either fails, the slice fails.
func (s *DashboardService) Series(ctx context.Context, rng domain.Range) ([]domain.SeriesPoint, error) {
	points, err := s.api.Analytics(ctx, rng)
	if err != nil {
		return nil, err
	}
	courses, err := s.enrollment.List(ctx)
	if err != nil {
		return nil, err
	}
	enrolled := make([]string, len(courses))
	for i, c := range courses {
		enrolled[i] = c.Name
	}
	return domain.JoinSeries(enrolled, points), nil
}
