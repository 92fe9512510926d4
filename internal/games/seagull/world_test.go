package seagull

import (
	"testing"

	"github.com/vovakirdan/hari/internal/core"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestWorldSpawnDestroy(t *testing.T) {
	w := NewWorld()

	a := w.Spawn(KindPlayer, core.NewKinematics(core.Vec3{}, core.Vec3{}), nil, "boat")
	b := w.Spawn(KindSeagull, core.NewKinematics(core.Vec3{Y: 600}, core.Vec3{Y: -280}), &Collider{Enabled: true, Width: 64, Height: 50}, "gull")

	if a == b {
		t.Fatalf("IDs must be unique, got %d twice", a)
	}
	if w.Len() != 2 {
		t.Fatalf("Len = %d, want 2", w.Len())
	}
	if w.Collider(a) != nil {
		t.Error("player spawned without a collider should report nil")
	}
	if got := w.Kind(b); got != KindSeagull {
		t.Errorf("Kind = %v, want seagull", got)
	}

	w.Destroy(b)
	if w.Alive(b) {
		t.Error("destroyed entity still alive")
	}

	c := w.Spawn(KindSeagull, core.NewKinematics(core.Vec3{}, core.Vec3{}), nil, "gull")
	if c == b {
		t.Errorf("ID %d was reused", c)
	}

	entities := w.Entities()
	if len(entities) != 2 || entities[0] != a || entities[1] != c {
		t.Errorf("Entities = %v, want [%d %d]", entities, a, c)
	}
}

func TestWorldDeadEntityAccessPanics(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(KindSeagull, core.NewKinematics(core.Vec3{}, core.Vec3{}), nil, "gull")
	w.Destroy(id)

	tests := []struct {
		name string
		fn   func()
	}{
		{"destroy", func() { w.Destroy(id) }},
		{"kind", func() { w.Kind(id) }},
		{"kinematics", func() { w.Kinematics(id) }},
		{"collider", func() { w.Collider(id) }},
		{"facing", func() { w.SetFacingLeft(id, true) }},
		{"sprite", func() { w.Sprite(id) }},
		{"never spawned", func() { w.Kind(999) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, tt.name, tt.fn)
		})
	}
}

func TestWorldSpawnWithoutKinematicsPanics(t *testing.T) {
	w := NewWorld()
	expectPanic(t, "spawn", func() {
		w.Spawn(KindSeagull, nil, nil, "gull")
	})
}

func TestWorldEntitiesIsCopy(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		w.Spawn(KindSeagull, core.NewKinematics(core.Vec3{}, core.Vec3{}), nil, "gull")
	}

	// Destroying while ranging over the snapshot must not skip entities.
	for _, id := range w.Entities() {
		w.Destroy(id)
	}
	if w.Len() != 0 {
		t.Errorf("Len = %d after destroying all, want 0", w.Len())
	}
}

func TestWorldIntegrate(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(KindSeagull, core.NewKinematics(core.Vec3{Y: 600}, core.Vec3{Y: -280}), nil, "gull")

	w.Integrate(0.5)

	kin := w.Kinematics(id)
	if kin.Position.Y != 460 {
		t.Errorf("Position.Y = %v, want 460", kin.Position.Y)
	}
	if kin.PreviousPosition.Y != 600 {
		t.Errorf("PreviousPosition.Y = %v, want 600", kin.PreviousPosition.Y)
	}
}

func TestColliderRectUsesOffset(t *testing.T) {
	c := &Collider{Enabled: true, Width: 220, Height: 50, Offset: core.Vec2{Y: -120}}
	r := c.Rect(core.Vec3{X: 0, Y: -60})

	if r.Left() != -110 || r.Right() != 110 {
		t.Errorf("x span = [%v, %v], want [-110, 110]", r.Left(), r.Right())
	}
	if r.Bottom() != -205 || r.Top() != -155 {
		t.Errorf("y span = [%v, %v], want [-205, -155]", r.Bottom(), r.Top())
	}
}
