package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hari/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round of Harbor Gulls.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  P          - Pause
  R          - Restart
  ?          - Show all keys
  Esc/Q      - Quit

The terminal owns the screen while playing, so logs are only written when
--log-file is given.

Examples:
  hari play
  hari play --fps 30
  hari play --seed 42 --log-file hari.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg, err := runtimeConfig(width, height)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := newGame(cfg.Seed)
	if err != nil {
		return err
	}

	return tui.Run(game, cfg, logger)
}
