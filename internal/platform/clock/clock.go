package clock

import "time"

// Clock abstracts time so usecases and formatting stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns wall-clock time in UTC. Study days are bucketed on UTC
// calendar dates, matching the server's aggregation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
