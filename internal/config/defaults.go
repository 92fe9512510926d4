package config

import (
	_ "embed"
)

//go:embed defaults/seagull.yaml
var defaultSeagullYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Playfield: PlayfieldConfig{
			Width:  1920,
			Height: 1080,
		},
		Physics: PhysicsConfig{
			TickRate:        60,
			MaxFrameDeltaMS: 250,
		},
		Player: PlayerConfig{
			StartX:           0,
			StartY:           -60,
			Speed:            500,
			ClampToPlayfield: true,
			Collider: ColliderConfig{
				Width:   220,
				Height:  50,
				OffsetY: -120,
			},
		},
		Seagulls: SeagullConfig{
			MaxActive:     5,
			FallSpeed:     280,
			SpawnHeight:   600,
			DespawnMargin: 300,
			Reward:        4,
			Collider: ColliderConfig{
				Width:  64,
				Height: 50,
			},
			SpawnInterval: IntervalConfig{
				MinMS:     100,
				MaxMS:     1300,
				InitialMS: 100,
			},
		},
		Assets: AssetsConfig{
			Background: "1920x1080/background.png",
			Boat:       "1920x1080/boat.png",
			Seagull:    "1920x1080/gull_1_64x50.png",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSeagullYAML
}
