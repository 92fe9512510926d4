package seagull

import (
	"github.com/vovakirdan/hari/internal/core"
)

// ApplyInput sets the player's velocity from the held movement actions.
// The direction is normalized before scaling so the speed never exceeds
// the configured value. Both directions held cancel out and face right.
func ApplyInput(w *World, player EntityID, in core.InputFrame, speed float64) {
	kin := w.Kinematics(player)

	var dir core.Vec3
	if in.Has(core.ActionLeft) {
		dir.X -= 1
		w.SetFacingLeft(player, true)
	}
	if in.Has(core.ActionRight) {
		dir.X += 1
		w.SetFacingLeft(player, false)
	}

	kin.Velocity = dir.Normalize().Scale(speed)
}

// clampToPlayfield keeps the player's x inside [-halfWidth, halfWidth].
// PreviousPosition is clamped too so interpolation does not overshoot the wall.
func clampToPlayfield(kin *core.Kinematics, halfWidth float64) {
	kin.Position.X = core.ClampF(kin.Position.X, -halfWidth, halfWidth)
	kin.PreviousPosition.X = core.ClampF(kin.PreviousPosition.X, -halfWidth, halfWidth)
}
