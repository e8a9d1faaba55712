package airfoil

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// thicknessSamples is the resolution used to extract max thickness from
// a freeform outline.
const thicknessSamples = 200

// Freeform is a section described by editable control points on its
// upper and lower surfaces, interpolated with Akima splines. It lets
// users sketch spoiler shapes the parametric family cannot express.
type Freeform struct {
	upper, lower interp.AkimaSpline
	xMin, xMax   float64
	maxThickness float64
}

// NewFreeform fits splines through the control points of each surface.
// Points are sorted by x; each surface needs at least five points with
// distinct x values for the Akima fit to behave, and the two surfaces
// must cover the same chordwise range.
func NewFreeform(upper, lower []Point) (*Freeform, error) {
	if len(upper) < 5 || len(lower) < 5 {
		return nil, fmt.Errorf("freeform section needs >= 5 control points per surface, got %d/%d", len(upper), len(lower))
	}

	ux, uy, err := surfaceCoords(upper)
	if err != nil {
		return nil, fmt.Errorf("upper surface: %w", err)
	}
	lx, ly, err := surfaceCoords(lower)
	if err != nil {
		return nil, fmt.Errorf("lower surface: %w", err)
	}

	f := &Freeform{
		xMin: math.Max(ux[0], lx[0]),
		xMax: math.Min(ux[len(ux)-1], lx[len(lx)-1]),
	}
	if f.xMax <= f.xMin {
		return nil, fmt.Errorf("surfaces do not overlap in x")
	}
	if err := f.upper.Fit(ux, uy); err != nil {
		return nil, fmt.Errorf("fitting upper spline: %w", err)
	}
	if err := f.lower.Fit(lx, ly); err != nil {
		return nil, fmt.Errorf("fitting lower spline: %w", err)
	}

	// Max thickness by sampling; the chord is the x extent, so the
	// result is already percent-of-chord scaled below.
	chord := f.xMax - f.xMin
	for i := 0; i <= thicknessSamples; i++ {
		x := f.xMin + chord*float64(i)/thicknessSamples
		if th := f.upper.Predict(x) - f.lower.Predict(x); th > f.maxThickness {
			f.maxThickness = th
		}
	}
	f.maxThickness = f.maxThickness / chord * 100

	return f, nil
}

// surfaceCoords sorts control points by x and rejects duplicates.
func surfaceCoords(pts []Point) (xs, ys []float64, err error) {
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	xs = make([]float64, len(sorted))
	ys = make([]float64, len(sorted))
	for i, p := range sorted {
		if i > 0 && p.X <= xs[i-1] {
			return nil, nil, fmt.Errorf("duplicate control point x=%g", p.X)
		}
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys, nil
}

// ThicknessPercent returns the sampled maximum thickness.
func (f *Freeform) ThicknessPercent() float64 {
	return f.maxThickness
}

// Outline samples the fitted surfaces into a closed polyline.
func (f *Freeform) Outline(samples int) []Point {
	if samples < 8 {
		samples = 8
	}
	half := samples / 2
	out := make([]Point, 0, half*2)
	chord := f.xMax - f.xMin

	for i := 0; i <= half; i++ {
		x := f.xMin + chord*float64(i)/float64(half)
		out = append(out, Point{X: x, Y: f.upper.Predict(x)})
	}
	for i := half - 1; i > 0; i-- {
		x := f.xMin + chord*float64(i)/float64(half)
		out = append(out, Point{X: x, Y: f.lower.Predict(x)})
	}
	return out
}
