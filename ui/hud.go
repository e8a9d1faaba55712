package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title            string
	Tick             int32
	FPS              int32
	Speed            int
	Population       int
	Mode             string
	AngleOfAttackDeg float32
	ThicknessPercent float32
	Stalled          bool
	InWakeFrac       float64
	Paused           bool
	ScreenHeight     int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Particles: %d | Mode: %s | AoA: %.1f deg | Thickness: %.1f%%",
			data.Population, data.Mode, data.AngleOfAttackDeg, data.ThicknessPercent),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | In wake: %.0f%%",
			data.Tick, data.Speed, data.FPS, data.InWakeFrac*100),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Attached flow"
	statusColor := rl.Color{R: 120, G: 200, B: 140, A: 255}
	if data.Stalled {
		statusText = "STALLED"
		statusColor = rl.Color{R: 230, G: 110, B: 90, A: 255}
	}
	if data.Paused {
		statusText = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(statusText, 10, 75, 16, statusColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
