package systems

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/aeroviz/slipstream/components"
)

// Jitter noise coordinates. Phase is stretched so adjacent particles
// sample decorrelated regions of the noise field, and the y and x
// channels sit at distinct z offsets so one seeded field yields two
// independent signals.
const (
	noisePhaseStretch = 2.39
	noiseChannelY     = 7.3
	noiseChannelX     = 19.1
)

// WakePerturb is the turbulence contribution for a swarm-mode particle.
type WakePerturb struct {
	DX, DY    float32
	Intensity float32
	InWake    bool
}

// Stalled reports whether the angle of attack is past the stall
// threshold. The switch is a hard discontinuity: stall is modeled as a
// binary regime change, not a blend.
func Stalled(t *Tuning, aoaDeg float32) bool {
	return absf(aoaDeg) > t.StallThresholdDeg
}

// SeparationX returns the x-offset where flow detaches from the body.
// Attached flow separates well behind the section; stalled flow
// separates almost immediately.
func SeparationX(t *Tuning, aoaDeg float32) float32 {
	if Stalled(t, aoaDeg) {
		return t.SepStalled
	}
	return t.SepAttached
}

// wakeEnvelope reports the distance behind the separation point and
// whether (x, y) falls inside the wake cone. The cone half-width grows
// linearly downstream.
func wakeEnvelope(t *Tuning, x, y float32, aero components.AeroInput) (behind float32, in bool) {
	behind = x - SeparationX(t, aero.AngleOfAttackDeg)
	half := ConeHalfWidth(t, behind, aero)
	if half <= 0 {
		return behind, false
	}
	return behind, absf(y) <= half
}

// ConeHalfWidth returns the wake cone half-width at the given distance
// behind the separation point. The cone widens downstream from the
// width the body disturbs; a zero-thickness section at zero incidence
// disturbs nothing, so there is no wake to grow and the width is 0.
func ConeHalfWidth(t *Tuning, behind float32, aero components.AeroInput) float32 {
	if behind <= 0 {
		return 0
	}
	baseWidth := aero.ThicknessPercent*0.01*t.ThicknessWidth +
		absf(aero.AngleOfAttackDeg)/t.AngleWidthNorm
	if baseWidth <= 0 {
		return 0
	}
	return baseWidth + behind*t.GrowthRate
}

// wakeIntensity is the local turbulence strength inside the wake,
// decaying downstream and scaling with angle of attack and the
// user-set turbulence multiplier.
func wakeIntensity(t *Tuning, behind float32, aero components.AeroInput, turbulence float32) float32 {
	base := minf(1, absf(aero.AngleOfAttackDeg)/t.AngleIntensityNorm+t.IntensityBase)
	return base * fastExp(-behind*t.DecayRate) * turbulence
}

// SwarmWake applies periodic vortex shedding plus chaotic jitter to a
// swarm-mode particle. The oscillation alternates sign across the
// centerline, approximating a vortex street. Jitter comes from seeded
// simplex noise keyed on the particle phase and the simulation clock,
// so a tick is reproducible given the same clock value.
//
// Attached flow damps the oscillation away from the centerline; stalled
// flow doubles both amplitudes and drags the particle back along x.
func SwarmWake(t *Tuning, noise opensimplex.Noise, clock, x, y, phase float32, aero components.AeroInput, turbulence float32) WakePerturb {
	behind, in := wakeEnvelope(t, x, y, aero)
	if !in {
		return WakePerturb{}
	}
	wi := wakeIntensity(t, behind, aero, turbulence)
	if wi <= 0 {
		return WakePerturb{InWake: true}
	}

	osc := fastSin(behind*t.SheddingFreq - clock*t.SheddingSpeed + phase)
	side := float32(1)
	if y < 0 {
		side = -1
	}

	amp := t.OscAmplitude
	jitAmp := t.JitterAmplitude
	jy := float32(noise.Eval3(float64(phase)*noisePhaseStretch, float64(clock*t.JitterScale), noiseChannelY))

	var dx float32
	if Stalled(t, aero.AngleOfAttackDeg) {
		amp *= 2
		jitAmp *= 2
		// Drag-like slowdown: x jitter is biased backwards
		jx := float32(noise.Eval3(float64(phase)*noisePhaseStretch, float64(clock*t.JitterScale), noiseChannelX))
		dx = -(jx*0.5 + 0.5) * jitAmp * wi
	} else {
		osc *= fastExp(-2 * absf(y))
	}

	perturb := WakePerturb{
		DX:     dx,
		DY:     side*osc*amp*wi + jy*jitAmp*wi,
		InWake: true,
	}
	if wi > t.IntensityFloor {
		perturb.Intensity = wi * t.WakeIntensityWeight
	}
	return perturb
}

// StreamWake advances a streamlines-mode particle's wake spread and
// returns its diffusion velocity. Spread accumulates monotonically
// inside the wake, capped at SpreadMax, and resets the moment the
// particle leaves it, giving an expanding plume instead of discrete
// shedding.
func StreamWake(t *Tuning, rng *rand.Rand, x, y float32, w *components.Wake, aero components.AeroInput, turbulence float32) (dy, intensity float32, inWake bool) {
	behind, in := wakeEnvelope(t, x, y, aero)
	if !in {
		w.Spread = 0
		return 0, 0, false
	}
	wi := wakeIntensity(t, behind, aero, turbulence)
	w.Spread = minf(w.Spread+t.SpreadAccumRate*wi*t.DT, t.SpreadMax)

	dy = (rng.Float32()*2 - 1) * w.Spread * t.SpreadDiffusion
	if wi > t.IntensityFloor {
		intensity = wi * t.WakeIntensityWeight
	}
	return dy, intensity, true
}
