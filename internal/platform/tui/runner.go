package tui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hari/internal/core"
	"github.com/vovakirdan/hari/internal/games/seagull"
)

// Pattern is a synthetic input sequence for headless runs.
type Pattern string

const (
	PatternNone      Pattern = "none"
	PatternSweep     Pattern = "sweep"
	PatternHoldLeft  Pattern = "hold-left"
	PatternHoldRight Pattern = "hold-right"
)

// sweepPeriod is how long the sweep pattern holds each direction.
const sweepPeriod = 2 * time.Second

// Patterns lists every supported pattern.
func Patterns() []Pattern {
	return []Pattern{PatternNone, PatternSweep, PatternHoldLeft, PatternHoldRight}
}

// ParsePattern validates a pattern name.
func ParsePattern(s string) (Pattern, error) {
	for _, p := range Patterns() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown input pattern %q", s)
}

// input returns the snapshot the pattern produces at elapsed time t.
func (p Pattern) input(t time.Duration) core.InputFrame {
	in := core.NewInputFrame()
	switch p {
	case PatternHoldLeft:
		in.Set(core.ActionLeft)
	case PatternHoldRight:
		in.Set(core.ActionRight)
	case PatternSweep:
		if (t/sweepPeriod)%2 == 0 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
	}
	return in
}

// Summary is the outcome of a headless run.
type Summary struct {
	Pattern  Pattern
	Duration time.Duration
	Frames   int
	Ticks    uint64
	Spawned  int
	Caught   int
	Missed   int
	Score    int
}

// Runner drives a game without a terminal at a fixed frame rate.
type Runner struct {
	game    *seagull.Game
	fps     int
	pattern Pattern
	logger  *log.Logger
}

// NewRunner creates a headless runner. A nil logger discards output.
func NewRunner(game *seagull.Game, fps int, pattern Pattern, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:    game,
		fps:     fps,
		pattern: pattern,
		logger:  logger,
	}
}

// Run simulates d of game time and returns a summary.
func (r *Runner) Run(d time.Duration) Summary {
	interval := frameInterval(r.fps)
	r.logger.Info("simulation started", "pattern", r.pattern, "duration", d, "fps", r.fps)

	frames := 0
	for elapsed := time.Duration(0); elapsed < d; elapsed += interval {
		res := r.game.Frame(r.pattern.input(elapsed), interval)
		logFrame(r.logger, res)
		frames++
	}

	stats := r.game.Stats()
	s := Summary{
		Pattern:  r.pattern,
		Duration: d,
		Frames:   frames,
		Ticks:    stats.Ticks,
		Spawned:  stats.Spawned,
		Caught:   stats.Caught,
		Missed:   stats.Missed,
		Score:    r.game.State().Score,
	}
	r.logger.Info("simulation finished", "score", s.Score, "caught", s.Caught, "missed", s.Missed)
	return s
}

// SummaryTable renders a summary as a two-column table.
func SummaryTable(s Summary) string {
	rows := []table.Row{
		{"Pattern", string(s.Pattern)},
		{"Duration", s.Duration.String()},
		{"Frames", strconv.Itoa(s.Frames)},
		{"Fixed steps", strconv.FormatUint(s.Ticks, 10)},
		{"Spawned", strconv.Itoa(s.Spawned)},
		{"Caught", strconv.Itoa(s.Caught)},
		{"Missed", strconv.Itoa(s.Missed)},
		{"Score", strconv.Itoa(s.Score)},
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Metric", Width: 12},
			{Title: "Value", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header and its border take two lines
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()
	t.SetStyles(st)

	return t.View()
}
