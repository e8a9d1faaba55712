package systems

import (
	"testing"

	"github.com/aeroviz/slipstream/components"
	"github.com/aeroviz/slipstream/config"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

func testTuning() Tuning {
	return TuningFromConfig(config.Cfg())
}

func TestDeflectZeroInputStability(t *testing.T) {
	tun := testTuning()
	aero := components.AeroInput{AngleOfAttackDeg: 0, ThicknessPercent: 0}

	points := []struct{ x, y float32 }{
		{0, 0.001},
		{-0.5, 0.3},
		{0.5, -0.3},
		{tun.RefX, 0.1},
		{1.5, 1.0},
	}
	for _, p := range points {
		d := Deflect(&tun, p.x, p.y, aero)
		if d.DX != 0 || d.DY != 0 {
			t.Errorf("Deflect(%v, %v) with zero inputs = (%v, %v), want zero perturbation", p.x, p.y, d.DX, d.DY)
		}
	}
}

func TestDeflectThicknessPushesOutward(t *testing.T) {
	tun := testTuning()
	aero := components.AeroInput{AngleOfAttackDeg: 0, ThicknessPercent: 14}

	above := Deflect(&tun, tun.RefX, 0.2, aero)
	below := Deflect(&tun, tun.RefX, -0.2, aero)

	if above.DY <= 0 {
		t.Errorf("particle above centerline got dy=%v, want > 0", above.DY)
	}
	if below.DY >= 0 {
		t.Errorf("particle below centerline got dy=%v, want < 0", below.DY)
	}
}

func TestDeflectUpwashDownwash(t *testing.T) {
	tun := testTuning()
	// Positive angle: upwash ahead of the reference point, downwash behind
	aero := components.AeroInput{AngleOfAttackDeg: 10, ThicknessPercent: 0}

	upstream := Deflect(&tun, tun.RefX-0.4, 0, aero)
	downstream := Deflect(&tun, tun.RefX+0.4, 0, aero)

	if upstream.DY <= 0 {
		t.Errorf("upstream dy = %v, want upwash (> 0)", upstream.DY)
	}
	if downstream.DY >= 0 {
		t.Errorf("downstream dy = %v, want downwash (< 0)", downstream.DY)
	}
	// Negative angle flips both
	aero.AngleOfAttackDeg = -10
	if d := Deflect(&tun, tun.RefX-0.4, 0, aero); d.DY >= 0 {
		t.Errorf("negative angle upstream dy = %v, want < 0", d.DY)
	}
}

func TestDeflectCutoff(t *testing.T) {
	tun := testTuning()
	aero := components.AeroInput{AngleOfAttackDeg: 15, ThicknessPercent: 20}

	far := Deflect(&tun, tun.XMax, tun.YSpan, aero)
	if far.DX != 0 || far.DY != 0 || far.Intensity != 0 {
		t.Errorf("far particle got perturbation (%v, %v, %v), want all zero past cutoff", far.DX, far.DY, far.Intensity)
	}

	near := Deflect(&tun, tun.RefX+0.1, 0.1, aero)
	if near.Intensity <= 0 {
		t.Errorf("near particle intensity = %v, want > 0", near.Intensity)
	}
}

func TestDeflectIntensityFallsWithDistance(t *testing.T) {
	tun := testTuning()
	aero := components.AeroInput{AngleOfAttackDeg: 5, ThicknessPercent: 12}

	close := Deflect(&tun, tun.RefX+0.05, 0.05, aero)
	farther := Deflect(&tun, tun.RefX+0.8, 0.4, aero)

	if close.Intensity <= farther.Intensity {
		t.Errorf("intensity close=%v farther=%v, want monotone falloff", close.Intensity, farther.Intensity)
	}
}
