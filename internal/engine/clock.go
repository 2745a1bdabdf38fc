package engine

import "sync/atomic"

// Clock is a monotonic logical clock stamping accepted edits.
//
// Transcript rows are ordered by this counter, never by wall-clock time,
// so a recorded session reads back in exactly the order it was typed.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though the Session's single-owner design means one goroutine typically
// calls Next().
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0. The first Next() returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
