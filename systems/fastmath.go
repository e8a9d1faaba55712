package systems

import "math"

// Fast math helpers for the per-particle loop. These avoid the
// float32->float64 round trips Go's math package requires.

const deg2rad = math.Pi / 180

// fastSin approximates sin(x) using a polynomial. Accurate to ~0.001 for all x.
func fastSin(x float32) float32 {
	x = normalizeAngle(x)
	const pi = math.Pi
	const pi2 = pi * pi
	ax := x
	if ax < 0 {
		ax = -ax
	}
	y := 4 * x * (pi - ax) / pi2
	// Correction: improves accuracy
	return 0.225*(y*absf(y)-y) + y
}

// fastExp approximates exp(x) for x in [-4, 4] with a Pade approximant.
func fastExp(x float32) float32 {
	if x > 4 {
		return 54.6 // exp(4)
	}
	if x < -4 {
		return 0
	}
	x2 := x * x
	return (12 + 6*x + x2) / (12 - 6*x + x2)
}

// normalizeAngle wraps angle to [-pi, pi]. The shedding phase grows
// with the simulation clock, so inputs can be arbitrarily large and
// reduction must be a single Mod, not a subtraction loop.
func normalizeAngle(a float32) float32 {
	if a >= -math.Pi && a <= math.Pi {
		return a
	}
	a = float32(math.Mod(float64(a), 2*math.Pi))
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
