package seagull

import (
	"testing"

	"github.com/vovakirdan/hari/internal/core"
)

// catchFixture is a boat at the default start with its collider offset,
// plus a spawner whose population tracks the seagulls added to the world.
type catchFixture struct {
	w      *World
	sc     *SpawnController
	player EntityID
	score  Score
	queue  CaughtQueue
}

func newCatchFixture(t *testing.T) *catchFixture {
	t.Helper()
	_, sc := newTestSpawner(t, &stubRand{})
	w := NewWorld()
	player := w.Spawn(KindPlayer,
		core.NewKinematics(core.Vec3{X: 0, Y: -60}, core.Vec3{}),
		&Collider{Enabled: true, Width: 220, Height: 50, Offset: core.Vec2{Y: -120}},
		"boat")
	return &catchFixture{w: w, sc: sc, player: player}
}

func (f *catchFixture) addSeagull(x, y float64) EntityID {
	id := f.w.Spawn(KindSeagull,
		core.NewKinematics(core.Vec3{X: x, Y: y}, core.Vec3{Y: -280}),
		&Collider{Enabled: true, Width: 64, Height: 50},
		"gull")
	f.sc.state.Active++
	return id
}

func TestCatchScenario(t *testing.T) {
	f := newCatchFixture(t)
	gull := f.addSeagull(0, -170)

	if n := DetectCatches(f.w, f.player, &f.queue, 4); n != 1 {
		t.Fatalf("DetectCatches = %d, want 1", n)
	}
	if f.w.Collider(gull).Enabled {
		t.Error("caught seagull collider should be disabled")
	}

	// A second detection before scoring must not emit again.
	if n := DetectCatches(f.w, f.player, &f.queue, 4); n != 0 {
		t.Errorf("second DetectCatches = %d, want 0", n)
	}
	if f.queue.Len() != 1 {
		t.Fatalf("queue length = %d, want 1", f.queue.Len())
	}

	applied := ApplyCatches(f.w, &f.queue, f.sc, &f.score)
	if len(applied) != 1 || applied[0].Entity != gull || applied[0].Reward != 4 {
		t.Errorf("applied = %+v, want one event for %d with reward 4", applied, gull)
	}
	if f.score.Value() != 4 {
		t.Errorf("score = %d, want 4", f.score.Value())
	}
	if f.w.Alive(gull) {
		t.Error("caught seagull still alive")
	}
	if got := f.sc.State().Active; got != 0 {
		t.Errorf("Active = %d, want 0", got)
	}
	if f.queue.Len() != 0 {
		t.Errorf("queue not drained: %d pending", f.queue.Len())
	}
}

func TestDetectCatchesGeometry(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside hitbox", 0, -180, true},
		{"overlapping left edge", -130, -180, true},
		{"touching top edge", 0, -130, false},
		{"touching bottom edge", 0, -230, false},
		{"touching right edge", 142, -180, false},
		{"above boat sprite", 0, -60, false},
		{"far away", 800, -180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatchFixture(t)
			f.addSeagull(tt.x, tt.y)
			got := DetectCatches(f.w, f.player, &f.queue, 4) == 1
			if got != tt.want {
				t.Errorf("caught = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatchesApplyInEmissionOrder(t *testing.T) {
	f := newCatchFixture(t)
	a := f.addSeagull(-50, -180)
	f.addSeagull(800, -180)
	b := f.addSeagull(50, -180)

	DetectCatches(f.w, f.player, &f.queue, 4)
	applied := ApplyCatches(f.w, &f.queue, f.sc, &f.score)

	if len(applied) != 2 || applied[0].Entity != a || applied[1].Entity != b {
		t.Fatalf("applied = %+v, want [%d %d]", applied, a, b)
	}
	if f.score.Value() != 8 {
		t.Errorf("score = %d, want 8", f.score.Value())
	}
	if got := f.sc.State().Active; got != 1 {
		t.Errorf("Active = %d, want 1", got)
	}
}

func TestApplyCatchOfDestroyedEntityPanics(t *testing.T) {
	f := newCatchFixture(t)
	gull := f.addSeagull(0, -180)
	DetectCatches(f.w, f.player, &f.queue, 4)
	f.w.Destroy(gull)

	expectPanic(t, "apply", func() {
		ApplyCatches(f.w, &f.queue, f.sc, &f.score)
	})
}

func TestScore(t *testing.T) {
	var s Score
	s.Add(4)
	s.Add(0)
	s.Add(4)
	if s.Value() != 8 {
		t.Errorf("Value = %d, want 8", s.Value())
	}
	expectPanic(t, "negative reward", func() { s.Add(-1) })
}
