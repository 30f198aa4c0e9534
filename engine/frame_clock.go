package engine

import "time"

// FrameCallback receives the frame timestamp
type FrameCallback func(now time.Time)

// FrameClock is a one-shot animation frame primitive
// ScheduleNext replaces any pending callback; Cancel drops it
// Callbacks must run on the goroutine that owns the Loop
type FrameClock interface {
	ScheduleNext(cb FrameCallback)
	Cancel()
}
