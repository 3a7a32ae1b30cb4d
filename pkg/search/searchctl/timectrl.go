// Package searchctl centralizes the single wall-clock deadline used by
// iterative deepening and the alpha-beta node loop: one timestamp taken at
// the start of search and polled at every node.
package searchctl

import "time"

// Clock tracks a single search deadline.
type Clock struct {
	deadline time.Time
}

// NewClock starts a clock that expires after budget has elapsed.
func NewClock(budget time.Duration) *Clock {
	return &Clock{deadline: time.Now().Add(budget)}
}

// Expired reports whether the budget has been exceeded.
func (c *Clock) Expired() bool {
	return !time.Now().Before(c.deadline)
}
