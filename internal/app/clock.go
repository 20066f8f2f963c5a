package app

import "time"

// SystemClock implements ports.Clock using the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
