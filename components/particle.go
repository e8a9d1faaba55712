// Package components defines the data carried by every flow particle.
package components

// Position is a particle's location in the simulated volume, in chord units.
type Position struct {
	X, Y, Z float32
}

// Character holds the attributes that define a particle's individual
// behavior for its whole lifetime. They are assigned once at field
// creation and survive every recycle untouched.
type Character struct {
	Lane      float32 // undisturbed vertical offset, restored on recycle
	SpeedBias float32 // small per-particle drift variance
	Phase     float32 // oscillation phase offset, radians
}

// Wake is the streamlines-mode sub-record. Swarm-mode particles are
// created without it; the component is only attached where it is
// meaningful.
type Wake struct {
	Spread float32 // accumulated plume width, 0 outside the wake
}
