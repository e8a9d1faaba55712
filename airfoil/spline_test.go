package airfoil

import (
	"math"
	"testing"
)

// lensPoints builds control points for a simple lens-shaped section of
// known maximum thickness.
func lensPoints(maxHalf float64) (upper, lower []Point) {
	xs := []float64{-0.5, -0.25, 0, 0.25, 0.5}
	for _, x := range xs {
		y := maxHalf * (1 - 4*x*x) // parabolic arc, peak at x=0
		upper = append(upper, Point{X: x, Y: y})
		lower = append(lower, Point{X: x, Y: -y})
	}
	return upper, lower
}

func TestFreeformThicknessExtraction(t *testing.T) {
	upper, lower := lensPoints(0.08)
	f, err := NewFreeform(upper, lower)
	if err != nil {
		t.Fatal(err)
	}

	// Peak thickness 0.16 over unit chord => 16%
	if got := f.ThicknessPercent(); math.Abs(got-16) > 0.5 {
		t.Errorf("thickness = %v%%, want ~16%%", got)
	}
}

func TestFreeformRejectsTooFewPoints(t *testing.T) {
	upper, lower := lensPoints(0.05)
	if _, err := NewFreeform(upper[:3], lower); err == nil {
		t.Error("3 control points accepted, want error")
	}
}

func TestFreeformRejectsDuplicateX(t *testing.T) {
	upper, lower := lensPoints(0.05)
	upper[2].X = upper[1].X
	if _, err := NewFreeform(upper, lower); err == nil {
		t.Error("duplicate x control points accepted, want error")
	}
}

func TestFreeformOutlinePassesThroughControlPoints(t *testing.T) {
	upper, lower := lensPoints(0.08)
	f, err := NewFreeform(upper, lower)
	if err != nil {
		t.Fatal(err)
	}

	out := f.Outline(200)
	// The interpolant passes through its knots; the sampled outline
	// must come close to each control point.
	for _, cp := range upper {
		best := math.Inf(1)
		for _, pt := range out {
			d := math.Hypot(pt.X-cp.X, pt.Y-cp.Y)
			best = math.Min(best, d)
		}
		if best > 0.02 {
			t.Errorf("outline misses control point %+v by %v", cp, best)
		}
	}
}

func TestFreeformUnsortedInputHandled(t *testing.T) {
	upper, lower := lensPoints(0.06)
	// Shuffle: control-point editors hand points in drag order
	upper[0], upper[3] = upper[3], upper[0]

	f, err := NewFreeform(upper, lower)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.ThicknessPercent(); math.Abs(got-12) > 0.5 {
		t.Errorf("thickness = %v%%, want ~12%%", got)
	}
}
