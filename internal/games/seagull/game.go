// Package seagull implements Harbor Gulls: a boat moves along the bottom of
// the playfield and catches seagulls that fall from the sky.
//
// The simulation runs on a fixed step; the host calls Frame once per
// displayed frame with the real elapsed time and draws the interpolated
// positions it returns.
package seagull

import (
	"time"

	"github.com/vovakirdan/hari/internal/config"
	"github.com/vovakirdan/hari/internal/core"
)

// Stats counts what happened since the last reset.
type Stats struct {
	Spawned int    // Seagulls created
	Caught  int    // Seagulls caught by the boat
	Missed  int    // Seagulls that fell off the playfield
	Ticks   uint64 // Fixed steps simulated
}

// StepResult is what a single fixed step produced.
type StepResult struct {
	Spawned bool
	Caught  []CaughtEvent
	Missed  int
}

// RenderItem is one entry of the render feed.
type RenderItem struct {
	Entity     EntityID
	Kind       Kind
	Position   core.Vec3 // Interpolated world position
	FacingLeft bool
	Sprite     string // Asset key
}

// FrameResult is returned by Frame for the presentation layer.
type FrameResult struct {
	Items        []RenderItem
	Score        int
	ScoreChanged bool
	Caught       int // Seagulls caught during this frame
	Missed       int // Seagulls lost during this frame
	Steps        int // Fixed steps run during this frame
	Alpha        float64
	Paused       bool
	Quit         bool
}

// Game owns the world and every piece of simulation state.
type Game struct {
	cfg     config.GameConfig
	world   *World
	player  EntityID
	spawner *SpawnController
	caught  CaughtQueue
	score   Score
	clock   *core.FixedClock
	paused  bool
	stats   Stats
	last    FrameResult
	sprites spriteSet
}

// New creates a game. The rng is the only source of nondeterminism.
func New(cfg config.GameConfig, rng Rand) *Game {
	g := &Game{
		cfg:     cfg,
		sprites: newSpriteSet(cfg.Assets.Boat, cfg.Assets.Seagull),
	}
	g.clock = core.NewFixedClock(cfg.Physics.TickRate, cfg.Physics.MaxFrameDelta())
	g.spawner = NewSpawnController(&g.cfg, rng)
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "seagull"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Harbor Gulls"
}

// Reset starts a fresh round: only the boat exists and the score is zero.
func (g *Game) Reset() {
	g.world = NewWorld()
	g.player = g.spawnPlayer()
	g.spawner.Reset()
	g.caught = CaughtQueue{}
	g.score = Score{}
	g.clock.Reset()
	g.paused = false
	g.stats = Stats{}
	g.last = g.frame(0)
}

func (g *Game) spawnPlayer() EntityID {
	p := g.cfg.Player
	kin := core.NewKinematics(core.Vec3{X: p.StartX, Y: p.StartY, Z: 1}, core.Vec3{})
	collider := &Collider{
		Enabled: true,
		Width:   p.Collider.Width,
		Height:  p.Collider.Height,
		Offset:  core.Vec2{X: p.Collider.OffsetX, Y: p.Collider.OffsetY},
	}
	return g.world.Spawn(KindPlayer, kin, collider, g.cfg.Assets.Boat)
}

// FixedStep advances the simulation by exactly one fixed step.
// Order: spawn, integrate, detect catches, apply catches, drop fallen seagulls.
func (g *Game) FixedStep() StepResult {
	var res StepResult

	if _, ok := g.spawner.Step(g.world, g.clock.Step()); ok {
		res.Spawned = true
		g.stats.Spawned++
	}

	g.world.Integrate(g.clock.StepSeconds())
	if g.cfg.Player.ClampToPlayfield {
		clampToPlayfield(g.world.Kinematics(g.player), g.cfg.Playfield.Width/2)
	}

	DetectCatches(g.world, g.player, &g.caught, g.cfg.Seagulls.Reward)
	res.Caught = ApplyCatches(g.world, &g.caught, g.spawner, &g.score)
	g.stats.Caught += len(res.Caught)

	res.Missed = DespawnFallen(g.world, g.spawner, g.cfg.DespawnY())
	g.stats.Missed += res.Missed

	g.stats.Ticks++
	return res
}

// Frame is the render-rate step. It applies the input snapshot, runs every
// fixed step that the elapsed time makes due and returns the render feed.
func (g *Game) Frame(in core.InputFrame, dt time.Duration) FrameResult {
	if in.Has(core.ActionQuit) {
		res := g.last
		res.Quit = true
		return res
	}
	if in.Has(core.ActionRestart) {
		g.Reset()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.last = g.frame(0)
		return g.last
	}

	ApplyInput(g.world, g.player, in, g.cfg.Player.Speed)

	before := g.score.Value()
	steps := g.clock.Advance(dt)
	var caught, missed int
	for i := 0; i < steps; i++ {
		res := g.FixedStep()
		caught += len(res.Caught)
		missed += res.Missed
	}

	res := g.frame(steps)
	res.Caught = caught
	res.Missed = missed
	res.ScoreChanged = res.Score != before
	g.last = res
	return res
}

// frame builds the render feed from the current state.
func (g *Game) frame(steps int) FrameResult {
	alpha := g.clock.Alpha()
	entities := g.world.Entities()
	items := make([]RenderItem, 0, len(entities))
	for _, id := range entities {
		items = append(items, RenderItem{
			Entity:     id,
			Kind:       g.world.Kind(id),
			Position:   g.world.Kinematics(id).Interpolated(alpha),
			FacingLeft: g.world.FacingLeft(id),
			Sprite:     g.world.Sprite(id),
		})
	}

	return FrameResult{
		Items:  items,
		Score:  g.score.Value(),
		Steps:  steps,
		Alpha:  alpha,
		Paused: g.paused,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score.Value(),
		Paused: g.paused,
	}
}

// Stats returns the counters since the last reset.
func (g *Game) Stats() Stats {
	return g.stats
}

// Spawner exposes the population gate for the HUD and tests.
func (g *Game) Spawner() *SpawnController {
	return g.spawner
}

// World exposes the entity arena.
func (g *Game) World() *World {
	return g.world
}

// Player returns the boat's entity ID.
func (g *Game) Player() EntityID {
	return g.player
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// LastFrame returns the most recent render feed.
func (g *Game) LastFrame() FrameResult {
	return g.last
}
