package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hari/internal/platform/tui"
)

var (
	flagDuration time.Duration
	flagPattern  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print a summary",
	Long: `Run the simulation without a terminal, feeding a synthetic input
pattern at the --fps frame rate, then print what happened.

Patterns:
  none        - The boat stays put
  sweep       - Alternate left and right every 2 seconds
  hold-left   - Hold left the whole time
  hold-right  - Hold right the whole time

Examples:
  hari simulate
  hari simulate --duration 5m --pattern sweep --seed 7
  hari simulate --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	patterns := make([]string, 0, len(tui.Patterns()))
	for _, p := range tui.Patterns() {
		patterns = append(patterns, string(p))
	}

	simulateCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Game time to simulate")
	simulateCmd.Flags().StringVar(&flagPattern, "pattern", string(tui.PatternSweep),
		"Input pattern: "+strings.Join(patterns, ", "))
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagDuration <= 0 {
		return fmt.Errorf("invalid --duration %s: must be positive", flagDuration)
	}
	pattern, err := tui.ParsePattern(flagPattern)
	if err != nil {
		return err
	}

	cfg, err := runtimeConfig(0, 0)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := newGame(cfg.Seed)
	if err != nil {
		return err
	}

	summary := tui.NewRunner(game, cfg.FrameFPS, pattern, logger).Run(flagDuration)
	fmt.Fprintln(cmd.OutOrStdout(), tui.SummaryTable(summary))
	return nil
}
