package out

import (
	"context"

	"trak/internal/modules/dashboard/domain"
)

// DashboardAPI is the read-side surface of the Trak API. Each method maps to
// one endpoint; the aggregator decides scheduling and join semantics.
type DashboardAPI interface {
	Summary(ctx context.Context) (domain.Summary, error)
	Checklist(ctx context.Context) ([]domain.ChecklistItem, error)
	RecentActivity(ctx context.Context) ([]domain.Activity, error)
	Analytics(ctx context.Context, rng domain.Range) ([]domain.SeriesPoint, error)
}
