package out

import (
	"context"
	"time"

	"trak/internal/modules/dashboard/domain"
	dashout "trak/internal/modules/dashboard/port/out"
	"trak/internal/platform/httpapi"
)

type HTTPDashboardAPI struct {
	api *httpapi.Client
}

func NewHTTPDashboardAPI(api *httpapi.Client) dashout.DashboardAPI {
	return &HTTPDashboardAPI{api: api}
}

// ─── wire shapes ───

type summaryBody struct {
	TotalStudyDays int             `json:"total_study_days"`
	CurrentStreak  int             `json:"current_streak"`
	MostStudied    *courseDaysBody `json:"most_studied_course"`
}

type courseDaysBody struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

type checklistItemBody struct {
	CourseName    string  `json:"course_name"`
	LastStudiedAt *string `json:"last_studied_at"`
}

type activityBody struct {
	Date       *string `json:"date"`
	CourseName string  `json:"course_name"`
}

type analyticsBody struct {
	CourseStudyData []seriesPointBody `json:"course_study_data"`
}

type seriesPointBody struct {
	CourseName string `json:"course_name"`
	StudyDays  int    `json:"study_days"`
}

// ─── endpoint calls ───

func (a *HTTPDashboardAPI) Summary(ctx context.Context) (domain.Summary, error) {
	var body summaryBody
	if err := a.api.Get(ctx, "/dashboard/summary", &body); err != nil {
		return domain.Summary{}, err
	}
	summary := domain.Summary{
		TotalStudyDays: body.TotalStudyDays,
		CurrentStreak:  body.CurrentStreak,
	}
	if body.MostStudied != nil {
		summary.MostStudied = &domain.CourseDays{
			Name: body.MostStudied.Name,
			Days: body.MostStudied.Days,
		}
	}
	return summary, nil
}

func (a *HTTPDashboardAPI) Checklist(ctx context.Context) ([]domain.ChecklistItem, error) {
	var body []checklistItemBody
	if err := a.api.Get(ctx, "/dashboard/checklist", &body); err != nil {
		return nil, err
	}
	items := make([]domain.ChecklistItem, len(body))
	for i, item := range body {
		items[i] = domain.ChecklistItem{
			CourseName:    item.CourseName,
			LastStudiedAt: parseStamp(item.LastStudiedAt),
		}
	}
	return items, nil
}

func (a *HTTPDashboardAPI) RecentActivity(ctx context.Context) ([]domain.Activity, error) {
	var body []activityBody
	if err := a.api.Get(ctx, "/dashboard/recent/course", &body); err != nil {
		return nil, err
	}
	items := make([]domain.Activity, len(body))
	for i, item := range body {
		items[i] = domain.Activity{
			Date:       parseStamp(item.Date),
			CourseName: item.CourseName,
		}
	}
	return items, nil
}

func (a *HTTPDashboardAPI) Analytics(ctx context.Context, rng domain.Range) ([]domain.SeriesPoint, error) {
	var body analyticsBody
	if err := a.api.Get(ctx, "/analytics?range="+string(rng), &body); err != nil {
		return nil, err
	}
	points := make([]domain.SeriesPoint, len(body.CourseStudyData))
	for i, p := range body.CourseStudyData {
		points[i] = domain.SeriesPoint{CourseName: p.CourseName, StudyDays: p.StudyDays}
	}
	return points, nil
}

// parseStamp accepts RFC 3339 and the bare date form the API emits for
// day-granular fields. Unparseable stamps degrade to nil rather than failing
// the whole read.
func parseStamp(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
