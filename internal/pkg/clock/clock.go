// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock frozen at a single instant, used by tests and replays
type Fixed struct {
	At time.Time
}

// Now returns the frozen instant
func (c *Fixed) Now() time.Time {
	return c.At
}
