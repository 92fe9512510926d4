package core

// Kinematics is the simulated motion state of an entity.
// Position and PreviousPosition only change inside Integrate; Velocity may be
// rewritten between fixed steps (the player's input does this every frame).
type Kinematics struct {
	Position         Vec3 // Position at the end of the last fixed step
	PreviousPosition Vec3 // Position at the end of the step before that
	Velocity         Vec3 // Units per second
}

// NewKinematics creates a motion state at rest history: the previous position
// equals the current one so the first interpolated frame does not jump.
func NewKinematics(position, velocity Vec3) *Kinematics {
	return &Kinematics{
		Position:         position,
		PreviousPosition: position,
		Velocity:         velocity,
	}
}

// Integrate advances the state by one fixed step of dt seconds.
func (k *Kinematics) Integrate(dt float64) {
	k.PreviousPosition = k.Position
	k.Position = k.Position.Add(k.Velocity.Scale(dt))
}

// Interpolated returns the render position between the last two fixed steps.
// Alpha is clamped to [0, 1].
func (k *Kinematics) Interpolated(alpha float64) Vec3 {
	return Lerp(k.PreviousPosition, k.Position, ClampF(alpha, 0, 1))
}
