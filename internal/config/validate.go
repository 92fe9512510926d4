package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PLAYFIELD",
			Message: fmt.Sprintf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height),
		}
	}

	if c.Physics.TickRate <= 0 {
		return ValidationError{
			Code:    "INVALID_TICK_RATE",
			Message: fmt.Sprintf("tick_rate must be positive, got %d", c.Physics.TickRate),
		}
	}
	if c.Physics.MaxFrameDeltaMS < 0 {
		return ValidationError{
			Code:    "INVALID_FRAME_CAP",
			Message: fmt.Sprintf("max_frame_delta_ms must not be negative, got %d", c.Physics.MaxFrameDeltaMS),
		}
	}

	if c.Player.Speed < 0 {
		return ValidationError{
			Code:    "INVALID_SPEED",
			Message: fmt.Sprintf("player speed must not be negative, got %v", c.Player.Speed),
		}
	}
	if err := validateCollider("player", c.Player.Collider); err != nil {
		return err
	}
	if err := validateCollider("seagull", c.Seagulls.Collider); err != nil {
		return err
	}

	if c.Seagulls.MaxActive < 0 {
		return ValidationError{
			Code:    "INVALID_MAX_ACTIVE",
			Message: fmt.Sprintf("max_active must not be negative, got %d", c.Seagulls.MaxActive),
		}
	}
	if c.Seagulls.Reward < 0 {
		return ValidationError{
			Code:    "INVALID_REWARD",
			Message: fmt.Sprintf("reward must not be negative, got %d", c.Seagulls.Reward),
		}
	}

	iv := c.Seagulls.SpawnInterval
	if iv.MinMS <= 0 || iv.MaxMS < iv.MinMS {
		return ValidationError{
			Code:    "INVALID_SPAWN_INTERVAL",
			Message: fmt.Sprintf("spawn interval must satisfy 0 < min_ms <= max_ms, got [%d, %d]", iv.MinMS, iv.MaxMS),
		}
	}
	if iv.InitialMS < 0 {
		return ValidationError{
			Code:    "INVALID_SPAWN_INTERVAL",
			Message: fmt.Sprintf("initial_ms must not be negative, got %d", iv.InitialMS),
		}
	}

	return nil
}

func validateCollider(owner string, c ColliderConfig) error {
	if c.Width <= 0 || c.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_COLLIDER",
			Message: fmt.Sprintf("%s collider must be positive, got %vx%v", owner, c.Width, c.Height),
		}
	}
	return nil
}
