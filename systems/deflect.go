package systems

import "github.com/aeroviz/slipstream/components"

// Deflection is the velocity perturbation the body induces at a point,
// plus the local acceleration scalar fed to the heatmap. Units are
// chord-lengths per second.
type Deflection struct {
	DX, DY    float32
	Intensity float32
}

// Deflect approximates potential flow around the cross-section with a
// single Gaussian source of influence at the reference point. Particles
// past the cutoff radius skip all trig work, which is what keeps the
// field pass cheap at tens of thousands of particles.
//
// Two additive terms:
//   - thickness pushes particles away from the centerline
//   - angle of attack produces upwash ahead of the reference point and
//     downwash behind it
//
// Both terms vanish multiplicatively when their input is zero, so zero
// thickness and zero angle yield exactly zero perturbation.
func Deflect(t *Tuning, x, y float32, aero components.AeroInput) Deflection {
	thickness := aero.ThicknessPercent * 0.01

	rx := x - t.RefX
	r2 := rx*rx + y*y
	cutoff := t.CutoffRadius + thickness*t.CutoffThicknessScale
	if r2 > cutoff*cutoff {
		return Deflection{}
	}

	infl := fastExp(-t.InfluenceK * r2)

	// Thickness displacement, directionally outward
	side := float32(1)
	if y < 0 {
		side = -1
	}
	dy := infl * thickness * t.ThicknessGain * side

	// Upwash upstream of the reference point, downwash downstream
	dir := float32(1)
	if rx > 0 {
		dir = -1
	}
	dy += infl * fastSin(aero.AngleOfAttackDeg*deg2rad) * t.AngleGain * dir

	return Deflection{
		DY:        dy,
		Intensity: infl * t.BodyIntensityWeight,
	}
}
