package core

import (
	"fmt"
	"time"
)

// DefaultMaxFrameDelta caps a single frame's contribution to the accumulator.
const DefaultMaxFrameDelta = 250 * time.Millisecond

// FixedClock converts variable frame deltas into a whole number of fixed
// simulation steps plus a leftover used for render interpolation.
type FixedClock struct {
	step        time.Duration
	maxFrame    time.Duration
	accumulated time.Duration
	ticks       uint64
}

// NewFixedClock creates a clock stepping tickRate times per second.
// A non-positive tick rate panics. A non-positive maxFrame disables the cap.
func NewFixedClock(tickRate int, maxFrame time.Duration) *FixedClock {
	if tickRate <= 0 {
		panic(fmt.Sprintf("core: invalid tick rate %d", tickRate))
	}
	return &FixedClock{
		step:     time.Second / time.Duration(tickRate),
		maxFrame: maxFrame,
	}
}

// Advance adds a frame delta and returns how many fixed steps are now due.
// The returned steps are consumed from the accumulator.
func (c *FixedClock) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	if c.maxFrame > 0 && frame > c.maxFrame {
		frame = c.maxFrame
	}

	c.accumulated += frame
	steps := 0
	for c.accumulated >= c.step {
		c.accumulated -= c.step
		steps++
	}
	c.ticks += uint64(steps)
	return steps
}

// Alpha is the fraction of a fixed step accumulated since the last one.
func (c *FixedClock) Alpha() float64 {
	return ClampF(float64(c.accumulated)/float64(c.step), 0, 1)
}

// Step returns the fixed step length.
func (c *FixedClock) Step() time.Duration {
	return c.step
}

// StepSeconds returns the fixed step length in seconds.
func (c *FixedClock) StepSeconds() float64 {
	return c.step.Seconds()
}

// Ticks returns the total number of fixed steps handed out.
func (c *FixedClock) Ticks() uint64 {
	return c.ticks
}

// Reset drops any accumulated time and the tick count.
func (c *FixedClock) Reset() {
	c.accumulated = 0
	c.ticks = 0
}
