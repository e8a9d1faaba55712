// Package airfoil derives the two scalars the flow engine consumes,
// maximum thickness and angle of attack, from either a parametric
// 4-digit-style section or a freeform spline outline, and produces the
// outline polyline the renderer extrudes.
package airfoil

import (
	"math"

	"github.com/aeroviz/slipstream/components"
)

// Point is a 2D outline point in chord units, x in [-0.5, 0.5].
type Point struct {
	X, Y float64
}

// Section is any cross-section shape the engine can fly.
type Section interface {
	// ThicknessPercent is the maximum thickness as percent of chord.
	ThicknessPercent() float64
	// Outline samples a closed polyline around the section.
	Outline(samples int) []Point
}

// Parametric is a 4-digit-style section: max thickness and camber as
// percent of chord, camber position in tenths of chord.
type Parametric struct {
	Thickness float64
	Camber    float64
	CamberPos float64
}

// HalfThickness evaluates the standard 4-digit half-thickness
// distribution at chordwise position x in [0, 1].
func (p Parametric) HalfThickness(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	t := p.Thickness / 100
	return 5 * t * (0.2969*math.Sqrt(x) -
		0.1260*x -
		0.3516*x*x +
		0.2843*x*x*x -
		0.1015*x*x*x*x)
}

// camberLine returns the camber offset at x in [0, 1].
func (p Parametric) camberLine(x float64) float64 {
	m := p.Camber / 100
	pp := p.CamberPos / 10
	if m == 0 || pp <= 0 || pp >= 1 {
		return 0
	}
	if x < pp {
		return m / (pp * pp) * (2*pp*x - x*x)
	}
	return m / ((1 - pp) * (1 - pp)) * ((1 - 2*pp) + 2*pp*x - x*x)
}

// ThicknessPercent returns the section's maximum thickness.
func (p Parametric) ThicknessPercent() float64 {
	return p.Thickness
}

// Outline samples the upper surface nose to tail, then the lower
// surface back, producing a closed polyline centered on the origin.
// Chordwise samples are cosine-spaced so the curved nose gets the
// resolution and the trailing edge stays sharp.
func (p Parametric) Outline(samples int) []Point {
	if samples < 8 {
		samples = 8
	}
	half := samples / 2
	out := make([]Point, 0, half*2)

	for i := 0; i <= half; i++ {
		x := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(half)))
		out = append(out, Point{X: x - 0.5, Y: p.camberLine(x) + p.HalfThickness(x)})
	}
	for i := half - 1; i > 0; i-- {
		x := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(half)))
		out = append(out, Point{X: x - 0.5, Y: p.camberLine(x) - p.HalfThickness(x)})
	}
	return out
}

// InputFrom assembles the engine input for a section at the given angle
// of attack, clamped to the supported domain.
func InputFrom(s Section, aoaDeg float64) components.AeroInput {
	return components.AeroInput{
		AngleOfAttackDeg: float32(aoaDeg),
		ThicknessPercent: float32(s.ThicknessPercent()),
	}.Clamped()
}
