package seagull

import (
	"fmt"

	"github.com/vovakirdan/hari/internal/core"
)

// EntityID identifies an entity in a World. IDs are never reused.
type EntityID uint32

// Kind distinguishes the two entity types of the game.
type Kind int

const (
	KindPlayer Kind = iota
	KindSeagull
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindSeagull:
		return "seagull"
	default:
		return "unknown"
	}
}

// Collider is an axis-aligned hitbox attached to an entity.
// Enabled=false marks a seagull that was already caught this life.
type Collider struct {
	Enabled bool
	Width   float64
	Height  float64
	Offset  core.Vec2
}

// Rect returns the collider's world rectangle for an entity at pos.
func (c *Collider) Rect(pos core.Vec3) core.Rect {
	return core.MakeRect(pos.XY(), c.Width, c.Height).WithOffset(c.Offset)
}

// World owns every entity and its components.
// Components live in maps keyed by EntityID; systems borrow them by ID.
// Touching a destroyed entity is a programming error and panics.
type World struct {
	next       EntityID
	order      []EntityID // Live entities in creation order
	kinds      map[EntityID]Kind
	kinematics map[EntityID]*core.Kinematics
	colliders  map[EntityID]*Collider
	facingLeft map[EntityID]bool
	sprites    map[EntityID]string
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		next:       1,
		kinds:      make(map[EntityID]Kind),
		kinematics: make(map[EntityID]*core.Kinematics),
		colliders:  make(map[EntityID]*Collider),
		facingLeft: make(map[EntityID]bool),
		sprites:    make(map[EntityID]string),
	}
}

// Spawn creates an entity. Collider may be nil.
func (w *World) Spawn(kind Kind, kin *core.Kinematics, collider *Collider, sprite string) EntityID {
	if kin == nil {
		panic("seagull: entity spawned without kinematics")
	}

	id := w.next
	w.next++

	w.order = append(w.order, id)
	w.kinds[id] = kind
	w.kinematics[id] = kin
	if collider != nil {
		w.colliders[id] = collider
	}
	w.sprites[id] = sprite
	return id
}

// Destroy removes an entity and all of its components.
func (w *World) Destroy(id EntityID) {
	w.mustBeAlive(id, "destroy")

	delete(w.kinds, id)
	delete(w.kinematics, id)
	delete(w.colliders, id)
	delete(w.facingLeft, id)
	delete(w.sprites, id)

	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Alive reports whether the entity exists.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.kinds[id]
	return ok
}

// Kind returns the entity's kind.
func (w *World) Kind(id EntityID) Kind {
	w.mustBeAlive(id, "read kind of")
	return w.kinds[id]
}

// Kinematics returns the entity's motion state.
func (w *World) Kinematics(id EntityID) *core.Kinematics {
	w.mustBeAlive(id, "read kinematics of")
	return w.kinematics[id]
}

// Collider returns the entity's collider, or nil if it has none.
func (w *World) Collider(id EntityID) *Collider {
	w.mustBeAlive(id, "read collider of")
	return w.colliders[id]
}

// SetFacingLeft mirrors the entity's sprite.
func (w *World) SetFacingLeft(id EntityID, left bool) {
	w.mustBeAlive(id, "turn")
	w.facingLeft[id] = left
}

// FacingLeft reports whether the entity's sprite is mirrored.
func (w *World) FacingLeft(id EntityID) bool {
	w.mustBeAlive(id, "read facing of")
	return w.facingLeft[id]
}

// Sprite returns the entity's asset key.
func (w *World) Sprite(id EntityID) string {
	w.mustBeAlive(id, "read sprite of")
	return w.sprites[id]
}

// Entities returns the live entities in creation order.
// The slice is a copy; destroying entities while ranging over it is safe.
func (w *World) Entities() []EntityID {
	out := make([]EntityID, len(w.order))
	copy(out, w.order)
	return out
}

// Seagulls returns the live seagulls in creation order.
func (w *World) Seagulls() []EntityID {
	out := make([]EntityID, 0, len(w.order))
	for _, id := range w.order {
		if w.kinds[id] == KindSeagull {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.order)
}

// Integrate advances every entity's motion by one fixed step.
func (w *World) Integrate(dt float64) {
	for _, id := range w.order {
		w.kinematics[id].Integrate(dt)
	}
}

func (w *World) mustBeAlive(id EntityID, op string) {
	if !w.Alive(id) {
		panic(fmt.Sprintf("seagull: %s destroyed entity %d", op, id))
	}
}
