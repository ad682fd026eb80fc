package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	out "trak/internal/modules/dashboard/adapter/out"
	"trak/internal/modules/dashboard/domain"
	dashout "trak/internal/modules/dashboard/port/out"
	"trak/internal/platform/httpapi"
)

type staticToken struct{}

func (staticToken) Token(context.Context) (string, error) { return "tok", nil }

func newDashboardAPI(t *testing.T, handler http.Handler) dashout.DashboardAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return out.NewHTTPDashboardAPI(httpapi.New(server.URL, 5*time.Second, staticToken{}, zap.NewNop()))
}

func TestSummaryDecodesOptionalMostStudied(t *testing.T) {
	t.Parallel()
	api := newDashboardAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/summary" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"total_study_days":12,"current_streak":3,"most_studied_course":{"name":"Math","days":7}}`))
	}))

	summary, err := api.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalStudyDays != 12 || summary.CurrentStreak != 3 {
		t.Fatalf("counters: %+v", summary)
	}
	if summary.MostStudied == nil || summary.MostStudied.Name != "Math" || summary.MostStudied.Days != 7 {
		t.Fatalf("most studied: %+v", summary.MostStudied)
	}
}

func TestSummaryWithoutMostStudied(t *testing.T) {
	t.Parallel()
	api := newDashboardAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total_study_days":0,"current_streak":0,"most_studied_course":null}`))
	}))

	summary, err := api.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.MostStudied != nil {
		t.Fatalf("expected nil most studied, got %+v", summary.MostStudied)
	}
}

func TestChecklistParsesTimestampVariants(t *testing.T) {
	t.Parallel()
	api := newDashboardAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/checklist" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"course_name":"Math","last_studied_at":"2026-03-10T09:30:00Z"},
			{"course_name":"Physics","last_studied_at":"2026-03-09"},
			{"course_name":"History","last_studied_at":null},
			{"course_name":"Art","last_studied_at":"not a date"}
		]`))
	}))

	items, err := api.Checklist(context.Background())
	if err != nil {
		t.Fatalf("checklist: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[0].LastStudiedAt == nil || !items[0].LastStudiedAt.Equal(time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("rfc3339 stamp: %+v", items[0].LastStudiedAt)
	}
	if items[1].LastStudiedAt == nil || !items[1].LastStudiedAt.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bare date stamp: %+v", items[1].LastStudiedAt)
	}
	if items[2].LastStudiedAt != nil {
		t.Fatalf("null stamp must stay nil")
	}
	if items[3].LastStudiedAt != nil {
		t.Fatalf("unparseable stamp must degrade to nil, not fail the read")
	}
}

func TestAnalyticsSendsRangeQuery(t *testing.T) {
	t.Parallel()
	api := newDashboardAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("range"); got != "90d" {
			t.Errorf("range query: got %q", got)
		}
		_, _ = w.Write([]byte(`{"course_study_data":[{"course_name":"Math","study_days":4}]}`))
	}))

	points, err := api.Analytics(context.Background(), domain.Range90d)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if len(points) != 1 || points[0].CourseName != "Math" || points[0].StudyDays != 4 {
		t.Fatalf("points: %+v", points)
	}
}

func TestRecentActivityKeepsServerOrder(t *testing.T) {
	t.Parallel()
	api := newDashboardAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/recent/course" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"date":"2026-03-08","course_name":"Math"},
			{"date":null,"course_name":"Physics"}
		]`))
	}))

	items, err := api.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(items) != 2 || items[0].CourseName != "Math" || items[1].Date != nil {
		t.Fatalf("items: %+v", items)
	}
}
