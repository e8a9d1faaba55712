// Package renderer draws the particle field and the body outline.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/aeroviz/slipstream/camera"
	"github.com/aeroviz/slipstream/systems"
)

// ParticleRenderer draws one frame of particle instances.
type ParticleRenderer struct {
	cam *camera.Camera
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer(cam *camera.Camera) *ParticleRenderer {
	return &ParticleRenderer{cam: cam}
}

// Draw renders all instances with additive blending. Swarm instances
// are streaks oriented along the local flow; billboard instances are
// soft discs.
func (r *ParticleRenderer) Draw(instances []systems.Instance) {
	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range instances {
		inst := &instances[i]

		if inst.Scale <= 0 || inst.Color.A == 0 {
			continue
		}

		sx, sy := r.cam.WorldToScreen(inst.X, inst.Y)
		size := r.cam.ScaleToPixels(inst.Scale)
		if !r.cam.IsVisible(inst.X, inst.Y, inst.Scale) {
			continue
		}

		color := rl.Color{R: inst.Color.R, G: inst.Color.G, B: inst.Color.B, A: inst.Color.A}

		if inst.Billboard {
			rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, size, color)
			continue
		}

		// Streak: a short line segment centered on the particle.
		// Screen y is flipped, so the rotation flips with it.
		half := size * 0.5
		cos := float32(math.Cos(float64(inst.Rotation)))
		sin := float32(math.Sin(float64(inst.Rotation)))
		rl.DrawLineEx(
			rl.Vector2{X: sx - cos*half, Y: sy + sin*half},
			rl.Vector2{X: sx + cos*half, Y: sy - sin*half},
			streakThickness(size),
			color,
		)
	}

	rl.EndBlendMode()
}

func streakThickness(size float32) float32 {
	t := size * 0.25
	if t < 1 {
		t = 1
	}
	return t
}
