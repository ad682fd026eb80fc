package dto

import "time"

type ToggleOutput struct {
	Selected bool
	Count    int
}

type CommitOutput struct {
	CourseNames []string
	Epoch       int
}

type LogInput struct {
	CourseNames []string
}

type JournalEntryOutput struct {
	CourseNames []string
	CommittedAt time.Time
}
