package seagull

import (
	"fmt"

	"github.com/vovakirdan/hari/internal/core"
)

// CaughtEvent reports that the player caught a seagull during a fixed step.
type CaughtEvent struct {
	Entity EntityID
	Reward int
}

// CaughtQueue buffers caught events between detection and scoring.
// It is drained completely once per fixed step.
type CaughtQueue struct {
	events []CaughtEvent
}

// Push appends an event.
func (q *CaughtQueue) Push(ev CaughtEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *CaughtQueue) Len() int {
	return len(q.events)
}

// Drain hands every pending event to fn in emission order, then clears the queue.
func (q *CaughtQueue) Drain(fn func(CaughtEvent)) {
	for _, ev := range q.events {
		fn(ev)
	}
	q.events = q.events[:0]
}

// Score is the running total. It never decreases.
type Score struct {
	value int
}

// Add increases the score by reward.
func (s *Score) Add(reward int) {
	if reward < 0 {
		panic(fmt.Sprintf("seagull: negative reward %d", reward))
	}
	s.value += reward
}

// Value returns the current total.
func (s *Score) Value() int {
	return s.value
}

// DetectCatches tests the player's hitbox against every enabled seagull
// collider. Each overlap emits one event and disables that collider, so a
// seagull can be caught at most once. Returns the number of events emitted.
func DetectCatches(w *World, player EntityID, queue *CaughtQueue, reward int) int {
	pc := w.Collider(player)
	if pc == nil {
		return 0
	}
	playerRect := pc.Rect(w.Kinematics(player).Position)

	emitted := 0
	for _, id := range w.Seagulls() {
		c := w.Collider(id)
		if c == nil || !c.Enabled {
			continue
		}
		if !core.Overlaps(playerRect, c.Rect(w.Kinematics(id).Position)) {
			continue
		}

		queue.Push(CaughtEvent{Entity: id, Reward: reward})
		c.Enabled = false
		emitted++
	}
	return emitted
}

// ApplyCatches consumes every pending event: the seagull is destroyed, the
// population shrinks and the reward is added. An event naming an entity
// that no longer exists panics in World.Destroy. Returns the applied events.
func ApplyCatches(w *World, queue *CaughtQueue, sc *SpawnController, score *Score) []CaughtEvent {
	var applied []CaughtEvent
	queue.Drain(func(ev CaughtEvent) {
		w.Destroy(ev.Entity)
		sc.Release()
		score.Add(ev.Reward)
		applied = append(applied, ev)
	})
	return applied
}
