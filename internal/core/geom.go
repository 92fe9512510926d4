// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec2 is a point or direction in world space.
// World space has its origin at the playfield center with Y pointing up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Vec3 is a position or velocity in world space.
// Z only orders sprites; it never takes part in collision.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Lerp interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Rect is an axis-aligned rectangle stored as its four corners.
type Rect struct {
	TopLeft     Vec2
	TopRight    Vec2
	BottomRight Vec2
	BottomLeft  Vec2
}

// MakeRect returns the rectangle of the given size centered at center.
// A negative width or height is a programming error and panics.
func MakeRect(center Vec2, width, height float64) Rect {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("core: rect with negative size %vx%v", width, height))
	}

	hw := width / 2
	hh := height / 2

	return Rect{
		TopLeft:     Vec2{X: center.X - hw, Y: center.Y + hh},
		TopRight:    Vec2{X: center.X + hw, Y: center.Y + hh},
		BottomRight: Vec2{X: center.X + hw, Y: center.Y - hh},
		BottomLeft:  Vec2{X: center.X - hw, Y: center.Y - hh},
	}
}

// WithOffset translates every corner by offset.
// Colliders use it to move a hitbox away from the sprite anchor.
func (r Rect) WithOffset(offset Vec2) Rect {
	return Rect{
		TopLeft:     r.TopLeft.Add(offset),
		TopRight:    r.TopRight.Add(offset),
		BottomRight: r.BottomRight.Add(offset),
		BottomLeft:  r.BottomLeft.Add(offset),
	}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.TopLeft.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.TopRight.X }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.TopLeft.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.BottomLeft.Y }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right() - r.Left() }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Top() - r.Bottom() }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Left() + r.Right()) / 2, Y: (r.Top() + r.Bottom()) / 2}
}

// Overlaps reports whether the projections of a and b overlap on both axes.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() > b.Bottom() &&
		a.Bottom() < b.Top()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
