package systems

import (
	"math"
	"testing"
)

// The shedding phase passed to fastSin is clock*SheddingSpeed plus a
// per-particle offset, so after hours of simulated time the argument
// reaches tens of thousands of radians. Reduction has to stay exact
// and O(1) out there.
func TestNormalizeAngleLargeInputs(t *testing.T) {
	inputs := []float32{
		0, 1.5, -1.5, math.Pi, -math.Pi,
		7.0, -7.0, 100.3, -100.3,
		1e3, -1e3, 39600.5, -39600.5, 2.5e5,
	}
	for _, a := range inputs {
		got := normalizeAngle(a)
		if got < -math.Pi || got > math.Pi {
			t.Errorf("normalizeAngle(%v) = %v, outside [-pi, pi]", a, got)
		}
		want := math.Mod(float64(a), 2*math.Pi)
		if want > math.Pi {
			want -= 2 * math.Pi
		} else if want < -math.Pi {
			want += 2 * math.Pi
		}
		if diff := math.Abs(float64(got) - want); diff > 1e-4 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", a, got, want)
		}
	}
}

func TestFastSinAccuracyAtLargePhase(t *testing.T) {
	// Approximation error of the parabola fit is about 1e-3; large
	// arguments must not degrade it further.
	for _, base := range []float32{0, 40, 7200 * 5.5} {
		for frac := float32(0); frac < TwoPi; frac += 0.1 {
			a := base + frac
			got := float64(fastSin(a))
			want := math.Sin(float64(a))
			if math.Abs(got-want) > 2e-3 {
				t.Fatalf("fastSin(%v) = %v, want %v within 2e-3", a, got, want)
			}
		}
	}
}
