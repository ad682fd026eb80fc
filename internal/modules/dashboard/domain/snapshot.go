package domain

import (
	"fmt"
	"sort"
	"time"

	apperrors "trak/internal/platform/errors"
)

// Range is the analytics time window. It is client-local state: changing it
// re-issues only the series read.
type Range string

const (
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
)

// DefaultRange matches the web client's initial selection.
const DefaultRange = Range30d

var Ranges = []Range{Range7d, Range30d, Range90d}

func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case Range7d, Range30d, Range90d:
		return Range(s), nil
	}
	return "", fmt.Errorf("%w: range must be one of 7d, 30d, 90d", apperrors.ErrInvalidInput)
}

// SliceStatus is the per-read state machine: every slice enters loading on
// each epoch or range change and settles as loaded or failed. There is no
// idle state once a slice has been entered.
type SliceStatus int

const (
	SliceLoading SliceStatus = iota
	SliceLoaded
	SliceFailed
)

// Slice is one independently fetched piece of the dashboard snapshot. A
// failed slice carries no data: the prior value is discarded rather than
// silently kept stale.
type Slice[T any] struct {
	Status SliceStatus
	Data   T
	Err    error
}

func Loading[T any]() Slice[T] {
	return Slice[T]{Status: SliceLoading}
}

func Loaded[T any](data T) Slice[T] {
	return Slice[T]{Status: SliceLoaded, Data: data}
}

func Failed[T any](err error) Slice[T] {
	return Slice[T]{Status: SliceFailed, Err: err}
}

// Summary mirrors the server-computed header metrics. The client never
// derives or mutates these values.
type Summary struct {
	TotalStudyDays int
	CurrentStreak  int
	MostStudied    *CourseDays
}

type CourseDays struct {
	Name string
	Days int
}

// ChecklistItem is one enrolled course's study status. A nil LastStudiedAt
// means the course was never studied.
type ChecklistItem struct {
	CourseName    string
	LastStudiedAt *time.Time
}

// Activity is one logged study session.
type Activity struct {
	Date       *time.Time
	CourseName string
}

// SeriesPoint is one course's study-day count within the selected range.
type SeriesPoint struct {
	CourseName string
	StudyDays  int
}

// Snapshot is the read-side view for one refresh epoch. Each slice settles
// independently; a failure in one never blocks or rolls back the others.
type Snapshot struct {
	Epoch     int
	Range     Range
	Summary   Slice[Summary]
	Checklist Slice[[]ChecklistItem]
	Activity  Slice[[]Activity]
	Series    Slice[[]SeriesPoint]
}

// NewSnapshot returns a snapshot with every slice in loading state.
func NewSnapshot(epoch int, rng Range) Snapshot {
	return Snapshot{
		Epoch:     epoch,
		Range:     rng,
		Summary:   Loading[Summary](),
		Checklist: Loading[[]ChecklistItem](),
		Activity:  Loading[[]Activity](),
		Series:    Loading[[]SeriesPoint](),
	}
}

// JoinSeries left-joins the enrollment set with the per-course study days
// returned for the window. Every enrolled course appears exactly once, in
// enrollment order, defaulting to zero when the backend omitted it. Points
// for courses outside the enrollment set are dropped.
func JoinSeries(enrolled []string, points []SeriesPoint) []SeriesPoint {
	byName := make(map[string]int, len(points))
	for _, p := range points {
		byName[p.CourseName] = p.StudyDays
	}
	joined := make([]SeriesPoint, len(enrolled))
	for i, name := range enrolled {
		joined[i] = SeriesPoint{CourseName: name, StudyDays: byName[name]}
	}
	return joined
}

// SortActivity orders records newest first. The source does not guarantee
// ordering, so rendering always sorts. Records without a date sink to the
// end; ties keep their incoming order.
func SortActivity(items []Activity) []Activity {
	sorted := make([]Activity, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(a, b int) bool {
		switch {
		case sorted[a].Date == nil:
			return false
		case sorted[b].Date == nil:
			return true
		default:
			return sorted[a].Date.After(*sorted[b].Date)
		}
	})
	return sorted
}
