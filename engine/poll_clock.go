package engine

import "time"

// PollClock is a FrameClock for hosts that own their frame loop
// The host calls Poll once per presented frame; at most one callback runs per poll
type PollClock struct {
	pending FrameCallback
}

func NewPollClock() *PollClock {
	return &PollClock{}
}

func (c *PollClock) ScheduleNext(cb FrameCallback) {
	c.pending = cb
}

func (c *PollClock) Cancel() {
	c.pending = nil
}

// Pending reports whether a frame is armed
func (c *PollClock) Pending() bool {
	return c.pending != nil
}

// Poll runs the armed callback with now, false when none was armed
func (c *PollClock) Poll(now time.Time) bool {
	cb := c.pending
	if cb == nil {
		return false
	}
	c.pending = nil
	cb(now)
	return true
}
