package gui

import (
	"time"

	"github.com/lixenwraith/vi-snake/engine"
)

// FrameClock ties loop frames to raylib's presented frames
// The window loop calls Poll once between BeginDrawing cycles
type FrameClock struct {
	*engine.PollClock
}

func NewFrameClock() *FrameClock {
	return &FrameClock{PollClock: engine.NewPollClock()}
}

// Poll runs the armed frame, if any, at the current time
func (c *FrameClock) Poll() bool {
	return c.PollClock.Poll(time.Now())
}
