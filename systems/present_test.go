package systems

import (
	"math"
	"testing"

	"github.com/aeroviz/slipstream/components"
)

func TestFadeAtBounds(t *testing.T) {
	tun := testTuning()

	if f := Fade(&tun, tun.XMin); f != 0 {
		t.Errorf("fade at xMin = %v, want 0", f)
	}
	if f := Fade(&tun, tun.XMin-0.5); f != 0 {
		t.Errorf("fade upstream of xMin = %v, want 0", f)
	}
	if f := Fade(&tun, tun.XMax); f != 0 {
		t.Errorf("fade at xMax = %v, want 0", f)
	}
	if f := Fade(&tun, 0); math.Abs(float64(f)-1) > 1e-5 {
		t.Errorf("fade mid-volume = %v, want 1", f)
	}

	// Monotone ramp inside the fade band
	a := Fade(&tun, tun.XMin+tun.FadeDistance*0.25)
	b := Fade(&tun, tun.XMin+tun.FadeDistance*0.75)
	if a >= b {
		t.Errorf("fade-in not increasing: %v then %v", a, b)
	}
}

func TestHeatHueMonotonicity(t *testing.T) {
	tun := testTuning()

	// Hue must move strictly toward the hot end as intensity grows,
	// up to the clamp.
	prev := HeatHue(&tun, 0)
	for _, intensity := range []float32{0.1, 0.3, 0.6, 0.9, 1.2} {
		h := HeatHue(&tun, intensity)
		if h >= prev {
			t.Fatalf("hue %v at intensity %v not closer to hot end than %v", h, intensity, prev)
		}
		prev = h
	}

	// Clamped region saturates
	if HeatHue(&tun, tun.IntensityClamp) != HeatHue(&tun, tun.IntensityClamp*2) {
		t.Error("hue should saturate past the intensity clamp")
	}
}

func TestHeatColorBrightensWithIntensity(t *testing.T) {
	tun := testTuning()

	cold := HeatColor(&tun, 0)
	hot := HeatColor(&tun, tun.IntensityClamp)

	coldLum := int(cold.R) + int(cold.G) + int(cold.B)
	hotLum := int(hot.R) + int(hot.G) + int(hot.B)
	if hotLum <= coldLum {
		t.Errorf("hot color %+v not brighter than cold %+v", hot, cold)
	}
	if hot.R <= hot.B {
		t.Errorf("hot color %+v should be red-dominant", hot)
	}
	if cold.B <= cold.R {
		t.Errorf("cold color %+v should be blue-dominant", cold)
	}
}

func TestPresentSwarmStreakGrowsWithSpeed(t *testing.T) {
	tun := testTuning()
	pos := components.Position{X: 0, Y: 0.5}

	slow := PresentSwarm(&tun, pos, 1.0, 0, 0, false)
	fast := PresentSwarm(&tun, pos, 3.0, 0, 0, false)

	if fast.Scale <= slow.Scale {
		t.Errorf("streak scale %v at speed 3 not above %v at speed 1", fast.Scale, slow.Scale)
	}
	if slow.Billboard {
		t.Error("swarm instances must not be billboarded")
	}
}

func TestPresentSwarmOrientation(t *testing.T) {
	tun := testTuning()
	pos := components.Position{X: 0, Y: 0}

	inst := PresentSwarm(&tun, pos, 1.0, 1.0, 0, false)
	want := math.Pi / 4
	if math.Abs(float64(inst.Rotation)-want) > 1e-5 {
		t.Errorf("rotation = %v, want %v for equal vx/vy", inst.Rotation, want)
	}
}

func TestPresentStreamDiscGrowsWithSpread(t *testing.T) {
	tun := testTuning()
	pos := components.Position{X: 0, Y: 0}

	tight := PresentStream(&tun, pos, 0, 0, false)
	wide := PresentStream(&tun, pos, tun.SpreadMax, 0, false)

	if wide.Scale <= tight.Scale {
		t.Errorf("disc scale %v at full spread not above %v at zero", wide.Scale, tight.Scale)
	}
	if !wide.Billboard {
		t.Error("streamlines instances must be billboarded")
	}
}

func TestPresentFadeZeroesScaleAtBounds(t *testing.T) {
	tun := testTuning()

	inst := PresentSwarm(&tun, components.Position{X: tun.XMax}, 2.0, 0, 0, false)
	if inst.Scale != 0 {
		t.Errorf("scale at xMax = %v, want 0 (invisible without discarding)", inst.Scale)
	}
}

func TestModeBaseColorsWhenHeatmapOff(t *testing.T) {
	tun := testTuning()
	pos := components.Position{X: 0, Y: 0}

	swarm := PresentSwarm(&tun, pos, 1, 0, 5.0, false)
	if swarm.Color != tun.SwarmColor {
		t.Errorf("heatmap off: swarm color %+v, want base %+v", swarm.Color, tun.SwarmColor)
	}
	stream := PresentStream(&tun, pos, 0, 5.0, false)
	if stream.Color != tun.StreamlineColor {
		t.Errorf("heatmap off: streamline color %+v, want base %+v", stream.Color, tun.StreamlineColor)
	}
}
