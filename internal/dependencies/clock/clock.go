package clock

import "time"

// Clock stamps play records with the time they were made
type Clock interface {
	Now() time.Time
}

// UTCClock reads the system clock, normalised to UTC so stored play
// times compare equal across hosts
type UTCClock struct{}

// New creates a UTCClock
func New() *UTCClock {
	return &UTCClock{}
}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
