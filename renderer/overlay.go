package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/aeroviz/slipstream/camera"
	"github.com/aeroviz/slipstream/components"
	"github.com/aeroviz/slipstream/systems"
)

const coneSegments = 24

// WakeOverlay draws the wake cone envelope as a debug aid: the
// separation point and the two widening edges, colored by flow regime.
type WakeOverlay struct {
	cam *camera.Camera
}

// NewWakeOverlay creates a new wake cone overlay.
func NewWakeOverlay(cam *camera.Camera) *WakeOverlay {
	return &WakeOverlay{cam: cam}
}

// Draw renders the cone edges from the separation point to the
// downstream volume bound.
func (o *WakeOverlay) Draw(t *systems.Tuning, aero components.AeroInput) {
	sepX := systems.SeparationX(t, aero.AngleOfAttackDeg)

	color := rl.Color{R: 110, G: 190, B: 160, A: 140}
	if systems.Stalled(t, aero.AngleOfAttackDeg) {
		color = rl.Color{R: 230, G: 120, B: 90, A: 160}
	}

	span := t.XMax - sepX
	if span <= 0 {
		return
	}

	var prevUp, prevDown rl.Vector2
	havePrev := false
	for i := 0; i <= coneSegments; i++ {
		behind := span * float32(i) / coneSegments
		half := systems.ConeHalfWidth(t, behind, aero)
		if half <= 0 && behind > 0 {
			return
		}

		ux, uy := o.cam.WorldToScreen(sepX+behind, half)
		dx, dy := o.cam.WorldToScreen(sepX+behind, -half)
		up := rl.Vector2{X: ux, Y: uy}
		down := rl.Vector2{X: dx, Y: dy}

		if havePrev {
			rl.DrawLineEx(prevUp, up, 1, color)
			rl.DrawLineEx(prevDown, down, 1, color)
		}
		prevUp, prevDown = up, down
		havePrev = true
	}

	sx, sy := o.cam.WorldToScreen(sepX, 0)
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, 3, color)
}
