package engine

import "time"

// ManualClock is a deterministic FrameClock for tests
// Frames are due interval after scheduling and fire only through Fire or Advance
type ManualClock struct {
	time     *MockTimeProvider
	interval time.Duration

	pending   FrameCallback
	due       time.Time
	scheduled int
	cancelled int
}

// NewManualClock creates a manual clock starting at start
func NewManualClock(start time.Time, interval time.Duration) *ManualClock {
	return &ManualClock{
		time:     NewMockTimeProvider(start),
		interval: interval,
	}
}

func (c *ManualClock) ScheduleNext(cb FrameCallback) {
	c.pending = cb
	c.due = c.time.Now().Add(c.interval)
	c.scheduled++
}

func (c *ManualClock) Cancel() {
	if c.pending != nil {
		c.cancelled++
	}
	c.pending = nil
}

// Now returns the mocked current time
func (c *ManualClock) Now() time.Time {
	return c.time.Now()
}

// Pending reports whether a frame is armed
func (c *ManualClock) Pending() bool {
	return c.pending != nil
}

// Scheduled returns the number of ScheduleNext calls so far
func (c *ManualClock) Scheduled() int {
	return c.scheduled
}

// Cancelled returns the number of Cancel calls that dropped an armed frame
func (c *ManualClock) Cancelled() int {
	return c.cancelled
}

// Fire jumps to the pending frame's due time and runs it
func (c *ManualClock) Fire() bool {
	if c.pending == nil {
		return false
	}
	cb, due := c.pending, c.due
	c.pending = nil
	c.time.SetTime(due)
	cb(due)
	return true
}

// FireN fires up to n frames and returns how many ran
func (c *ManualClock) FireN(n int) int {
	fired := 0
	for fired < n && c.Fire() {
		fired++
	}
	return fired
}

// Advance moves time forward by d, firing every frame that falls due on the way
func (c *ManualClock) Advance(d time.Duration) int {
	target := c.time.Now().Add(d)
	fired := 0
	for c.pending != nil && !c.due.After(target) {
		c.Fire()
		fired++
	}
	c.time.SetTime(target)
	return fired
}
