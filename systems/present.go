package systems

import (
	"math"

	"github.com/aeroviz/slipstream/components"
)

// Color is an 8-bit RGBA color. The renderer converts it to its own
// color type; the engine stays free of rendering imports.
type Color struct {
	R, G, B, A uint8
}

// Instance is one renderable particle: exactly one per live particle,
// in stable population order, ready for a batched draw.
type Instance struct {
	X, Y, Z   float32
	Scale     float32
	Rotation  float32 // flow orientation, radians; ignored when billboarded
	Billboard bool
	Color     Color
}

// Fade is the visibility multiplier near the volume bounds: a smooth
// fade-in just past xMin times a fade-out approaching xMax. Applied as
// a scale factor, so recycling never pops.
func Fade(t *Tuning, x float32) float32 {
	fadeIn := smoothstep(t.XMin, t.XMin+t.FadeDistance, x)
	fadeOut := smoothstep(t.XMax-t.FadeDistance, t.XMax, x)
	return fadeIn * (1 - fadeOut)
}

func smoothstep(edge0, edge1, x float32) float32 {
	u := clampf((x-edge0)/(edge1-edge0), 0, 1)
	return u * u * (3 - 2*u)
}

// PresentSwarm maps a swarm-mode particle to its instance: an oriented
// streak whose length grows with the particle's effective speed.
func PresentSwarm(t *Tuning, pos components.Position, vx, vy, intensity float32, heatmap bool) Instance {
	speed := float32(math.Sqrt(float64(vx*vx + vy*vy)))
	scale := (t.StreakBase + speed*t.StreakSpeedScale) * Fade(t, pos.X)

	color := t.SwarmColor
	if heatmap {
		color = HeatColor(t, intensity)
	}

	return Instance{
		X: pos.X, Y: pos.Y, Z: pos.Z,
		Scale:    scale,
		Rotation: float32(math.Atan2(float64(vy), float64(vx))),
		Color:    color,
	}
}

// PresentStream maps a streamlines-mode particle to its instance: a
// billboarded disc growing with accumulated wake spread.
func PresentStream(t *Tuning, pos components.Position, spread, intensity float32, heatmap bool) Instance {
	scale := (t.DiscBase + spread*t.DiscSpreadScale) * Fade(t, pos.X)

	color := t.StreamlineColor
	if heatmap {
		color = HeatColor(t, intensity)
	}

	return Instance{
		X: pos.X, Y: pos.Y, Z: pos.Z,
		Scale:     scale,
		Billboard: true,
		Color:     color,
	}
}

// HeatColor maps accumulated local intensity through the cool-to-hot
// hue ramp. Saturation and lightness both rise with intensity, so
// hotter regions read brighter as well as redder.
func HeatColor(t *Tuning, intensity float32) Color {
	frac := clampf(intensity/t.IntensityClamp, 0, 1)
	hue := t.CoolHueDeg + (t.HotHueDeg-t.CoolHueDeg)*frac
	sat := 0.45 + 0.55*frac
	light := 0.35 + 0.3*frac
	return hslToRGB(hue, sat, light)
}

// HeatHue exposes the ramp position for a given intensity; the renderer
// legend and tests use it.
func HeatHue(t *Tuning, intensity float32) float32 {
	frac := clampf(intensity/t.IntensityClamp, 0, 1)
	return t.CoolHueDeg + (t.HotHueDeg-t.CoolHueDeg)*frac
}

// hslToRGB converts hue in degrees, saturation and lightness in [0,1].
func hslToRGB(h, s, l float32) Color {
	h = float32(math.Mod(float64(h)+360, 360))
	c := (1 - absf(2*l-1)) * s
	hp := h / 60
	x := c * (1 - absf(float32(math.Mod(float64(hp), 2))-1))

	var r, g, b float32
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return Color{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}
