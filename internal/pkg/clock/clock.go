// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
	// After waits for the duration to elapse and then sends the current time
	After(d time.Duration) <-chan time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// After wraps time.After
func (c *Real) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
