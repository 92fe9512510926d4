package core

// Color represents a foreground color for a screen cell.
// The frontend maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the playfield renderer.
const (
	ColorDefault Color = iota
	ColorWater
	ColorFoam
	ColorBoat
	ColorGull
	ColorHUD
	ColorMuted
)
