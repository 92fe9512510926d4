package seagull

import (
	"fmt"
	"time"

	"github.com/vovakirdan/hari/internal/config"
	"github.com/vovakirdan/hari/internal/core"
)

// Rand is the randomness the spawner consumes. *math/rand.Rand satisfies it;
// tests substitute fixed sequences.
type Rand interface {
	Float64() float64
	Int63n(n int64) int64
}

// SpawnState is the population gate and re-arming timer.
// Active stays within [0, MaxActive] of the owning controller.
type SpawnState struct {
	Active   int
	Elapsed  time.Duration
	Duration time.Duration
}

// SpawnController creates falling seagulls on a randomized timer while the
// population is below its cap.
type SpawnController struct {
	state     SpawnState
	maxActive int
	minWait   time.Duration
	maxWait   time.Duration
	cfg       *config.GameConfig
	rng       Rand
	spawned   int
}

// NewSpawnController creates a controller with an empty population.
func NewSpawnController(cfg *config.GameConfig, rng Rand) *SpawnController {
	sc := &SpawnController{
		maxActive: cfg.Seagulls.MaxActive,
		minWait:   cfg.Seagulls.SpawnInterval.Min(),
		maxWait:   cfg.Seagulls.SpawnInterval.Max(),
		cfg:       cfg,
		rng:       rng,
	}
	sc.Reset()
	return sc
}

// Reset empties the population and re-arms the first timer.
func (sc *SpawnController) Reset() {
	sc.state = SpawnState{Duration: sc.cfg.Seagulls.SpawnInterval.Initial()}
	sc.spawned = 0
}

// State returns a copy of the current spawn state.
func (sc *SpawnController) State() SpawnState {
	return sc.state
}

// MaxActive returns the population cap.
func (sc *SpawnController) MaxActive() int {
	return sc.maxActive
}

// Spawned returns how many seagulls were created since the last reset.
func (sc *SpawnController) Spawned() int {
	return sc.spawned
}

// Step advances the timer by one fixed step and spawns a seagull when it
// fires. While the population is full the timer does not advance.
func (sc *SpawnController) Step(w *World, dt time.Duration) (EntityID, bool) {
	if sc.state.Active >= sc.maxActive {
		return 0, false
	}

	sc.state.Elapsed += dt
	if sc.state.Elapsed < sc.state.Duration {
		return 0, false
	}

	id := sc.spawn(w)
	sc.state.Active++
	sc.state.Elapsed = 0
	sc.state.Duration = sc.nextDuration()
	sc.spawned++
	return id, true
}

// Release records that a seagull left the world.
func (sc *SpawnController) Release() {
	if sc.state.Active <= 0 {
		panic(fmt.Sprintf("seagull: release with %d active seagulls", sc.state.Active))
	}
	sc.state.Active--
}

// spawn creates a seagull above the visible area at a random x.
func (sc *SpawnController) spawn(w *World) EntityID {
	gulls := sc.cfg.Seagulls
	half := sc.cfg.Playfield.Width / 2
	x := -half + sc.rng.Float64()*sc.cfg.Playfield.Width

	kin := core.NewKinematics(
		core.Vec3{X: x, Y: gulls.SpawnHeight, Z: 1},
		core.Vec3{Y: -gulls.FallSpeed},
	)
	collider := &Collider{
		Enabled: true,
		Width:   gulls.Collider.Width,
		Height:  gulls.Collider.Height,
		Offset:  core.Vec2{X: gulls.Collider.OffsetX, Y: gulls.Collider.OffsetY},
	}
	return w.Spawn(KindSeagull, kin, collider, sc.cfg.Assets.Seagull)
}

// nextDuration samples the next timer uniformly from [minWait, maxWait].
func (sc *SpawnController) nextDuration() time.Duration {
	span := int64(sc.maxWait - sc.minWait)
	return sc.minWait + time.Duration(sc.rng.Int63n(span+1))
}

// DespawnFallen removes seagulls that dropped below despawnY and returns
// how many were removed.
func DespawnFallen(w *World, sc *SpawnController, despawnY float64) int {
	removed := 0
	for _, id := range w.Seagulls() {
		if w.Kinematics(id).Position.Y < despawnY {
			w.Destroy(id)
			sc.Release()
			removed++
		}
	}
	return removed
}
