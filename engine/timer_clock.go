package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// TimerClock fires frame callbacks at a fixed interval using runtime timers
// Timers run on their own goroutines, so callbacks are handed to the owner through C()
// and only execute when the owner drains the channel
type TimerClock struct {
	mu       sync.Mutex
	interval time.Duration
	time     TimeProvider

	timer *time.Timer
	gen   uint64 // Bumped on every schedule or cancel, stale deliveries compare unequal

	dispatch chan func()
	done     chan struct{}
	closeOne sync.Once
}

// NewTimerClock creates a clock that fires interval after each ScheduleNext
func NewTimerClock(interval time.Duration, tp TimeProvider) *TimerClock {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &TimerClock{
		interval: interval,
		time:     tp,
		dispatch: make(chan func(), 1),
		done:     make(chan struct{}),
	}
}

// C delivers due callbacks, the receiver must invoke each one
func (c *TimerClock) C() <-chan func() {
	return c.dispatch
}

// Interval returns the frame interval
func (c *TimerClock) Interval() time.Duration {
	return c.interval
}

// ScheduleNext arms a single frame, replacing any pending one
func (c *TimerClock) ScheduleNext(cb FrameCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	gen := c.gen

	c.timer = time.AfterFunc(c.interval, func() {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()

		fire := func() {
			if !c.claim(gen) {
				return
			}
			cb(c.time.Now())
		}

		select {
		case c.dispatch <- fire:
		case <-c.done:
		}
	})
}

// Cancel drops the pending frame, a callback already queued on C() becomes a no-op
func (c *TimerClock) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Pending reports whether a frame is armed and not yet consumed
func (c *TimerClock) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Close cancels the pending frame and releases blocked timer goroutines
func (c *TimerClock) Close() {
	c.Cancel()
	c.closeOne.Do(func() {
		close(c.done)
	})
}

func (c *TimerClock) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// claim consumes the armed frame if gen is still current
func (c *TimerClock) claim(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.timer = nil
	c.gen++
	return true
}
