package dto

import "time"

type SummaryOutput struct {
	TotalStudyDays int
	CurrentStreak  int
	MostStudied    *CourseDaysOutput
}

type CourseDaysOutput struct {
	Name string
	Days int
}

type ChecklistItemOutput struct {
	CourseName    string
	LastStudiedAt *time.Time
}

type ActivityOutput struct {
	Date       *time.Time
	CourseName string
}

type SeriesPointOutput struct {
	CourseName string
	StudyDays  int
}

type LoadInput struct {
	Epoch int
	Range string
}

// SnapshotOutput carries one result per slice. A slice either has data or
// an error; loading is a UI-side state that exists only while a fetch is in
// flight.
type SnapshotOutput struct {
	Epoch     int
	Range     string
	Summary   SummarySlice
	Checklist ChecklistSlice
	Activity  ActivitySlice
	Series    SeriesSlice
}

type SummarySlice struct {
	Data SummaryOutput
	Err  error
}

type ChecklistSlice struct {
	Items []ChecklistItemOutput
	Err   error
}

type ActivitySlice struct {
	Items []ActivityOutput
	Err   error
}

type SeriesSlice struct {
	Points []SeriesPointOutput
	Err    error
}
