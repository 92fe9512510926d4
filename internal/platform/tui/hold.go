package tui

import (
	"time"

	"github.com/vovakirdan/hari/internal/core"
)

// DefaultHoldWindow covers the gap between the first key press and the
// terminal's auto-repeat, which is the longest silence while a key is down.
const DefaultHoldWindow = 180 * time.Millisecond

// HoldTracker turns key presses into held movement.
// Terminals never report releases, so a direction counts as held while its
// presses keep arriving within the window. Pressing the opposite direction
// releases the other one immediately.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press of a movement action at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	default:
		return
	}
	h.last[a] = now
}

// Held reports whether a is still considered held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Apply marks every held movement action in the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Reset forgets every press.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
