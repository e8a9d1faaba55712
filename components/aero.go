package components

// Input domains the engine is tuned for. Values outside are clamped at
// the boundary so the per-particle loop never sees them.
const (
	MinAngleOfAttackDeg = -50.0
	MaxAngleOfAttackDeg = 20.0
	MaxThicknessPercent = 40.0
)

// AeroInput carries the two scalars the engine consumes each tick.
// The geometry model derives them from either the parametric formula or
// a freeform outline; the engine does not care which.
type AeroInput struct {
	AngleOfAttackDeg float32
	ThicknessPercent float32
}

// Clamped returns the input restricted to the supported domain.
// Zero thickness and zero angle are valid and degrade to zero perturbation.
func (a AeroInput) Clamped() AeroInput {
	if a.AngleOfAttackDeg < MinAngleOfAttackDeg {
		a.AngleOfAttackDeg = MinAngleOfAttackDeg
	}
	if a.AngleOfAttackDeg > MaxAngleOfAttackDeg {
		a.AngleOfAttackDeg = MaxAngleOfAttackDeg
	}
	if a.ThicknessPercent < 0 {
		a.ThicknessPercent = 0
	}
	if a.ThicknessPercent > MaxThicknessPercent {
		a.ThicknessPercent = MaxThicknessPercent
	}
	return a
}
