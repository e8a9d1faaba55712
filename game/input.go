package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/aeroviz/slipstream/components"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.state.Paused = !g.state.Paused
	}
	if rl.IsKeyPressed(rl.KeyM) {
		if g.state.Mode == components.ModeSwarm {
			g.state.Mode = components.ModeStreamlines
		} else {
			g.state.Mode = components.ModeSwarm
		}
	}
	if rl.IsKeyPressed(rl.KeyW) {
		g.state.WakeEnabled = !g.state.WakeEnabled
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.state.HeatmapEnabled = !g.state.HeatmapEnabled
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.showWakeCone = !g.showWakeCone
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.state.ResetCamera = true
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.speed > 1 {
		g.speed--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.speed < 10 {
		g.speed++
	}

	g.handleCameraInput()
}

// handleCameraInput applies pan and zoom, skipping drags that start on
// the control panel.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()
	overPanel := g.controls.Contains(mouse.X, mouse.Y)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		// Zoom toward the cursor so the point under it stays put.
		wx, wy := g.cam.ScreenToWorld(mouse.X, mouse.Y)
		factor := float32(1.1)
		if wheel < 0 {
			factor = 1 / 1.1
		}
		g.cam.ZoomBy(factor)
		nx, ny := g.cam.ScreenToWorld(mouse.X, mouse.Y)
		g.cam.X += wx - nx
		g.cam.Y += wy - ny
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) && !overPanel {
		delta := rl.GetMouseDelta()
		g.cam.Pan(-delta.X, -delta.Y)
	}
}
