// hari is a terminal arcade game: steer a boat along the bottom of the
// screen and catch the seagulls falling from the sky.
//
// Usage:
//
//	hari play                - Play in the terminal
//	hari simulate            - Run the game headless and print a summary
//	hari config              - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>         - Render frames per second (default: 60)
//	--seed <value>       - RNG seed for reproducible rounds
//	--config <path>      - Custom game config YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hari/internal/config"
	"github.com/vovakirdan/hari/internal/core"
	"github.com/vovakirdan/hari/internal/games/seagull"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hari",
	Short: "Harbor Gulls - catch falling seagulls in your terminal",
	Long: `Harbor Gulls is a small real-time arcade game. Steer the boat left and
right and catch the seagulls before they fall into the sea. Every seagull
caught is worth 4 points.

Available commands:
  play      - Play in the terminal
  simulate  - Run the game headless with a synthetic input pattern
  config    - Print the effective game configuration

Examples:
  hari play
  hari play --seed 42 --log-file hari.log
  hari simulate --duration 2m --pattern sweep
  hari config --config ./my-gulls.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the host settings from the global flags.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.FrameFPS = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// newGame loads the game configuration and creates a seeded game.
func newGame(seed int64) (*seagull.Game, error) {
	gameCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return seagull.New(gameCfg, rand.New(rand.NewSource(seed))), nil
}
