package core

import (
	"math"
	"testing"
	"time"
)

func TestKinematicsIntegrate(t *testing.T) {
	k := NewKinematics(Vec3{X: 0, Y: 600, Z: 1}, Vec3{Y: -280})

	if k.PreviousPosition != k.Position {
		t.Fatalf("new kinematics should start with previous == current")
	}

	dt := 1.0 / 60.0
	for i := 1; i <= 90; i++ {
		prev := k.Position
		k.Integrate(dt)

		if k.PreviousPosition != prev {
			t.Fatalf("step %d: previous = %v, expected %v", i, k.PreviousPosition, prev)
		}
		expected := 600 - 280*float64(i)*dt
		if math.Abs(k.Position.Y-expected) > 1e-9 {
			t.Fatalf("step %d: y = %v, expected %v", i, k.Position.Y, expected)
		}
	}

	if k.Position.X != 0 || k.Position.Z != 1 {
		t.Errorf("x and z should be untouched, got %v", k.Position)
	}
}

func TestKinematicsInterpolated(t *testing.T) {
	k := &Kinematics{
		PreviousPosition: Vec3{X: 0, Y: 10},
		Position:         Vec3{X: 10, Y: 20},
	}

	tests := []struct {
		alpha    float64
		expected Vec3
	}{
		{0, Vec3{X: 0, Y: 10}},
		{0.5, Vec3{X: 5, Y: 15}},
		{1, Vec3{X: 10, Y: 20}},
		{-1, Vec3{X: 0, Y: 10}},  // clamped
		{2.5, Vec3{X: 10, Y: 20}}, // clamped
	}

	for _, tc := range tests {
		got := k.Interpolated(tc.alpha)
		if got != tc.expected {
			t.Errorf("Interpolated(%v) = %v, expected %v", tc.alpha, got, tc.expected)
		}
	}
}

func TestFixedClockAdvance(t *testing.T) {
	c := NewFixedClock(60, 0)
	step := c.Step()

	if got := c.Advance(step / 2); got != 0 {
		t.Errorf("half a step should not trigger a tick, got %d", got)
	}
	if a := c.Alpha(); math.Abs(a-0.5) > 1e-6 {
		t.Errorf("Alpha() = %v, expected 0.5", a)
	}

	if got := c.Advance(step); got != 1 {
		t.Errorf("expected 1 step, got %d", got)
	}
	if a := c.Alpha(); math.Abs(a-0.5) > 1e-6 {
		t.Errorf("leftover alpha = %v, expected 0.5", a)
	}

	if got := c.Advance(3 * step); got != 3 {
		t.Errorf("expected 3 steps, got %d", got)
	}
	if c.Ticks() != 4 {
		t.Errorf("Ticks() = %d, expected 4", c.Ticks())
	}
}

func TestFixedClockCapsLongFrames(t *testing.T) {
	c := NewFixedClock(60, 100*time.Millisecond)

	// A 5 second stall is treated as 100ms: 6 steps of 16.67ms.
	if got := c.Advance(5 * time.Second); got != 6 {
		t.Errorf("expected stall to be capped to 6 steps, got %d", got)
	}
}

func TestFixedClockNegativeFrame(t *testing.T) {
	c := NewFixedClock(60, 0)
	if got := c.Advance(-time.Second); got != 0 {
		t.Errorf("negative frame should not produce steps, got %d", got)
	}
	if c.Alpha() != 0 {
		t.Errorf("negative frame should not accumulate, alpha = %v", c.Alpha())
	}
}

func TestFixedClockInvalidRatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewFixedClock(0) should panic")
		}
	}()
	NewFixedClock(0, 0)
}

func TestFixedClockReset(t *testing.T) {
	c := NewFixedClock(30, 0)
	c.Advance(c.Step()*2 + c.Step()/3)
	c.Reset()

	if c.Ticks() != 0 || c.Alpha() != 0 {
		t.Errorf("Reset should clear ticks and accumulator, got ticks=%d alpha=%v", c.Ticks(), c.Alpha())
	}
}
