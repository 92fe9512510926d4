// Package config provides YAML-based game configuration loading and
// validation.
package config

import "time"

// GameConfig contains all tunables of the seagull game.
type GameConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Seagulls  SeagullConfig   `yaml:"seagulls"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// PlayfieldConfig defines the world-space size of the visible area.
// The origin sits at the center, Y points up.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the fixed simulation step.
type PhysicsConfig struct {
	TickRate        int `yaml:"tick_rate"`          // Fixed steps per second
	MaxFrameDeltaMS int `yaml:"max_frame_delta_ms"` // Longest frame fed to the accumulator
}

// PlayerConfig defines the boat.
type PlayerConfig struct {
	StartX           float64        `yaml:"start_x"`
	StartY           float64        `yaml:"start_y"`
	Speed            float64        `yaml:"speed"` // Units per second
	ClampToPlayfield bool           `yaml:"clamp_to_playfield"`
	Collider         ColliderConfig `yaml:"collider"`
}

// SeagullConfig defines falling seagulls and their spawner.
type SeagullConfig struct {
	MaxActive     int            `yaml:"max_active"`
	FallSpeed     float64        `yaml:"fall_speed"`     // Units per second, downward
	SpawnHeight   float64        `yaml:"spawn_height"`   // Y of freshly spawned seagulls
	DespawnMargin float64        `yaml:"despawn_margin"` // Despawn below -(height/2)+margin
	Reward        int            `yaml:"reward"`
	Collider      ColliderConfig `yaml:"collider"`
	SpawnInterval IntervalConfig `yaml:"spawn_interval"`
}

// ColliderConfig defines a rectangle hitbox relative to the entity position.
type ColliderConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// IntervalConfig defines the randomized spawn timer.
type IntervalConfig struct {
	MinMS     int `yaml:"min_ms"`
	MaxMS     int `yaml:"max_ms"`
	InitialMS int `yaml:"initial_ms"`
}

// AssetsConfig holds texture lookup keys. The game never opens them;
// frontends map them to whatever they can draw.
type AssetsConfig struct {
	Background string `yaml:"background"`
	Boat       string `yaml:"boat"`
	Seagull    string `yaml:"seagull"`
}

// Min returns the lower spawn interval bound.
func (c IntervalConfig) Min() time.Duration {
	return time.Duration(c.MinMS) * time.Millisecond
}

// Max returns the upper spawn interval bound.
func (c IntervalConfig) Max() time.Duration {
	return time.Duration(c.MaxMS) * time.Millisecond
}

// Initial returns the duration of the first spawn timer.
func (c IntervalConfig) Initial() time.Duration {
	return time.Duration(c.InitialMS) * time.Millisecond
}

// MaxFrameDelta returns the frame delta cap as a duration.
func (c PhysicsConfig) MaxFrameDelta() time.Duration {
	return time.Duration(c.MaxFrameDeltaMS) * time.Millisecond
}

// DespawnY returns the height below which seagulls are removed.
func (c GameConfig) DespawnY() float64 {
	return -(c.Playfield.Height / 2) + c.Seagulls.DespawnMargin
}
