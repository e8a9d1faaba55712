package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/aeroviz/slipstream/airfoil"
	"github.com/aeroviz/slipstream/camera"
)

const outlineSamples = 48

// BodyRenderer draws the section silhouette pitched to the current
// angle of attack.
type BodyRenderer struct {
	cam     *camera.Camera
	fill    rl.Color
	outline rl.Color
	points  []rl.Vector2
}

// NewBodyRenderer creates a new body renderer.
func NewBodyRenderer(cam *camera.Camera) *BodyRenderer {
	return &BodyRenderer{
		cam:     cam,
		fill:    rl.Color{R: 28, G: 34, B: 44, A: 255},
		outline: rl.Color{R: 120, G: 140, B: 165, A: 255},
	}
}

// Draw renders the filled section at the volume center, rotated nose-up
// for positive angle of attack.
func (r *BodyRenderer) Draw(section airfoil.Section, aoaDeg float64) {
	if section == nil {
		return
	}

	outline := section.Outline(outlineSamples)
	rad := -aoaDeg * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	r.points = r.points[:0]
	for _, p := range outline {
		wx := float32(p.X*cos - p.Y*sin)
		wy := float32(p.X*sin + p.Y*cos)
		sx, sy := r.cam.WorldToScreen(wx, wy)
		r.points = append(r.points, rl.Vector2{X: sx, Y: sy})
	}

	if len(r.points) < 3 {
		return
	}

	// Fan from the outline centroid keeps the fill intact for thin
	// sections at high pitch.
	var cx, cy float32
	for _, p := range r.points {
		cx += p.X
		cy += p.Y
	}
	n := float32(len(r.points))
	center := rl.Vector2{X: cx / n, Y: cy / n}

	for i := 0; i < len(r.points); i++ {
		j := (i + 1) % len(r.points)
		rl.DrawTriangle(center, r.points[j], r.points[i], r.fill)
	}
	for i := 0; i < len(r.points); i++ {
		j := (i + 1) % len(r.points)
		rl.DrawLineEx(r.points[i], r.points[j], 1.5, r.outline)
	}
}
