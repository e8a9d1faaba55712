package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/aeroviz/slipstream/components"
)

// ControlState is the set of user-adjustable parameters the panel edits.
type ControlState struct {
	AngleOfAttackDeg float32
	ThicknessPercent float32
	Turbulence       float32
	BaseSpeed        float32
	Population       int

	Mode           components.RenderMode
	WakeEnabled    bool
	HeatmapEnabled bool
	Paused         bool

	ResetCamera bool
}

// ControlsPanel renders the right-side parameter panel.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Contains reports whether a screen point lies inside the panel, so
// camera drag can ignore clicks on the controls.
func (c *ControlsPanel) Contains(sx, sy float32) bool {
	if !c.visible {
		return false
	}
	return sx >= float32(c.x) && sx <= float32(c.x+c.width) &&
		sy >= float32(c.y) && sy <= float32(c.y+panelHeight)
}

const panelHeight = 330

// Draw renders the panel and writes any edits back into state.
func (c *ControlsPanel) Draw(state *ControlState) {
	if !c.visible {
		return
	}

	r := c.renderer
	padding := r.Theme.Padding

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := c.x + padding
	y := c.y + padding
	sliderW := float32(c.width - padding*2 - 50)

	rl.DrawText("Flow Controls", x, y, 16, rl.White)
	y += 26

	state.AngleOfAttackDeg = c.slider(x, &y, sliderW,
		"Angle of attack (deg)", "%.1f",
		state.AngleOfAttackDeg,
		components.MinAngleOfAttackDeg, components.MaxAngleOfAttackDeg)

	state.ThicknessPercent = c.slider(x, &y, sliderW,
		"Thickness (% chord)", "%.1f",
		state.ThicknessPercent, 1, components.MaxThicknessPercent)

	state.Turbulence = c.slider(x, &y, sliderW,
		"Turbulence", "%.2f",
		state.Turbulence, 0, 3)

	state.BaseSpeed = c.slider(x, &y, sliderW,
		"Base speed", "%.2f",
		state.BaseSpeed, 0.2, 4)

	pop := c.slider(x, &y, sliderW,
		"Population", "%.0f",
		float32(state.Population), 500, 20000)
	state.Population = int(pop)

	// Toggle buttons, two per row.
	btnW := float32(c.width-padding*3) / 2
	bx := float32(x)
	by := float32(y)

	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: btnW, Height: 24},
		modeLabel(state.Mode)) {
		if state.Mode == components.ModeSwarm {
			state.Mode = components.ModeStreamlines
		} else {
			state.Mode = components.ModeSwarm
		}
	}
	if gui.Button(rl.Rectangle{X: bx + btnW + float32(padding), Y: by, Width: btnW, Height: 24},
		onOffLabel("Wake", state.WakeEnabled)) {
		state.WakeEnabled = !state.WakeEnabled
	}
	by += 30

	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: btnW, Height: 24},
		onOffLabel("Heatmap", state.HeatmapEnabled)) {
		state.HeatmapEnabled = !state.HeatmapEnabled
	}
	if gui.Button(rl.Rectangle{X: bx + btnW + float32(padding), Y: by, Width: btnW, Height: 24},
		pauseLabel(state.Paused)) {
		state.Paused = !state.Paused
	}
	by += 30

	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: btnW, Height: 24}, "Reset View") {
		state.ResetCamera = true
	}
}

// slider draws a labeled SliderBar row and advances the y cursor.
func (c *ControlsPanel) slider(x int32, y *int32, width float32, label, format string, value, min, max float32) float32 {
	r := c.renderer

	rl.DrawText(label, x, *y, r.Theme.FontSize, r.Theme.LabelColor)
	*y += 14

	newValue := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(*y), Width: width, Height: 16},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, newValue), x+int32(width)+6, *y+2, r.Theme.FontSize, r.Theme.ValueColor)
	*y += 24

	return newValue
}

func modeLabel(m components.RenderMode) string {
	if m == components.ModeSwarm {
		return "Mode: Swarm"
	}
	return "Mode: Streams"
}

func onOffLabel(name string, on bool) string {
	if on {
		return name + ": On"
	}
	return name + ": Off"
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
