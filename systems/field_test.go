package systems

import (
	"testing"

	"github.com/aeroviz/slipstream/components"
)

func testSimConfig(mode components.RenderMode, pop int) SimConfig {
	return SimConfig{
		Population:  pop,
		Mode:        mode,
		BaseSpeed:   1.4,
		Turbulence:  1.0,
		WakeEnabled: true,
	}
}

func testAero() components.AeroInput {
	return components.AeroInput{AngleOfAttackDeg: -12, ThicknessPercent: 12}
}

func TestNewFieldRejectsEmptyPopulation(t *testing.T) {
	for _, pop := range []int{0, -5} {
		if _, err := NewField(testSimConfig(components.ModeSwarm, pop), testTuning(), 1); err == nil {
			t.Errorf("population %d accepted, want error", pop)
		}
	}
}

func TestTickBoundedness(t *testing.T) {
	tun := testTuning()
	cfg := testSimConfig(components.ModeSwarm, 300)
	f, err := NewField(cfg, tun, 42)
	if err != nil {
		t.Fatal(err)
	}

	lo := tun.XMin - tun.ReentryJitter
	clock := 0.0
	for i := 0; i < 600; i++ {
		f.Tick(clock, cfg, testAero())
		clock += float64(tun.DT)
	}
	for i, p := range f.Snapshot() {
		if p.Pos.X < lo || p.Pos.X > tun.XMax {
			t.Fatalf("particle %d at x=%v outside [%v, %v]", i, p.Pos.X, lo, tun.XMax)
		}
	}
}

func TestRecyclePreservesIdentity(t *testing.T) {
	tun := testTuning()
	cfg := testSimConfig(components.ModeStreamlines, 120)
	f, err := NewField(cfg, tun, 7)
	if err != nil {
		t.Fatal(err)
	}

	before := f.Snapshot()

	// Long enough for every particle to recycle several times.
	clock := 0.0
	recycles := 0
	for i := 0; i < 2000; i++ {
		f.Tick(clock, cfg, testAero())
		recycles += f.Stats().Recycled
		clock += float64(tun.DT)
	}
	if recycles == 0 {
		t.Fatal("no recycle events in 2000 ticks")
	}

	after := f.Snapshot()
	if len(after) != len(before) {
		t.Fatalf("population changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i].Char != before[i].Char {
			t.Fatalf("particle %d identity changed across recycles: %+v -> %+v", i, before[i].Char, after[i].Char)
		}
	}
}

func TestPausedInvariance(t *testing.T) {
	tun := testTuning()
	cfg := testSimConfig(components.ModeSwarm, 50)
	f, err := NewField(cfg, tun, 3)
	if err != nil {
		t.Fatal(err)
	}

	f.Tick(0, cfg, testAero())
	frozen := f.Snapshot()

	paused := cfg
	paused.Paused = true
	for i := 0; i < 25; i++ {
		if out := f.Tick(float64(i), paused, testAero()); out != nil {
			t.Fatal("paused tick produced output")
		}
	}

	resumed := f.Snapshot()
	for i := range frozen {
		if frozen[i] != resumed[i] {
			t.Fatalf("particle %d moved while paused: %+v -> %+v", i, frozen[i], resumed[i])
		}
	}
}

func TestTickDeterminismGivenClock(t *testing.T) {
	tun := testTuning()
	cfg := testSimConfig(components.ModeSwarm, 200)

	a, err := NewField(cfg, tun, 1234)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewField(cfg, tun, 1234)
	if err != nil {
		t.Fatal(err)
	}

	clock := 0.0
	for i := 0; i < 120; i++ {
		outA := a.Tick(clock, cfg, testAero())
		outB := b.Tick(clock, cfg, testAero())
		if len(outA) != len(outB) {
			t.Fatalf("output lengths diverged at tick %d: %d vs %d", i, len(outA), len(outB))
		}
		for j := range outA {
			if outA[j] != outB[j] {
				t.Fatalf("instance %d diverged at tick %d: %+v vs %+v", j, i, outA[j], outB[j])
			}
		}
		clock += float64(tun.DT)
	}
}

func TestOutputSizedToPopulation(t *testing.T) {
	tun := testTuning()
	for _, mode := range []components.RenderMode{components.ModeSwarm, components.ModeStreamlines} {
		cfg := testSimConfig(mode, 77)
		f, err := NewField(cfg, tun, 5)
		if err != nil {
			t.Fatal(err)
		}
		out := f.Tick(0, cfg, testAero())
		if len(out) != cfg.Population {
			t.Errorf("mode %v: %d instances for %d particles", mode, len(out), cfg.Population)
		}
	}
}

func TestDownstreamWrapResetsToLane(t *testing.T) {
	tun := testTuning()
	cfg := testSimConfig(components.ModeSwarm, 1)
	cfg.BaseSpeed = 1.0
	cfg.WakeEnabled = false
	f, err := NewField(cfg, tun, 11)
	if err != nil {
		t.Fatal(err)
	}

	lane := f.Snapshot()[0].Char.Lane

	// Drift downstream until the particle crosses xMax; the wrap must
	// land it upstream with y back on its lane, exactly once per crossing.
	clock := 0.0
	prevX := f.Snapshot()[0].Pos.X
	wrapped := false
	for i := 0; i < 2000; i++ {
		f.Tick(clock, cfg, testAero())
		clock += float64(tun.DT)
		p := f.Snapshot()[0]
		if p.Pos.X < prevX {
			wrapped = true
			if f.Stats().Recycled != 1 {
				t.Fatalf("wrap tick recycled %d times, want exactly 1", f.Stats().Recycled)
			}
			if p.Pos.X > tun.XMin || p.Pos.X < tun.XMin-tun.ReentryJitter {
				t.Fatalf("wrapped to x=%v, want within [%v, %v]", p.Pos.X, tun.XMin-tun.ReentryJitter, tun.XMin)
			}
			if p.Pos.Y != lane {
				t.Fatalf("wrapped to y=%v, want lane %v", p.Pos.Y, lane)
			}
			break
		}
		prevX = p.Pos.X
	}
	if !wrapped {
		t.Fatal("particle never wrapped")
	}
}

func TestStreamlinesLaneGrouping(t *testing.T) {
	tun := testTuning()
	cfg := testSimConfig(components.ModeStreamlines, 500)
	f, err := NewField(cfg, tun, 21)
	if err != nil {
		t.Fatal(err)
	}

	spacing := 2 * tun.YSpan / float32(tun.StreamLanes)
	maxOffset := tun.LaneJitter*spacing + 1e-4

	for i, p := range f.Snapshot() {
		// Distance from the nearest lane center
		rel := (p.Char.Lane + tun.YSpan) / spacing
		frac := rel - float32(int(rel)) - 0.5
		if absf(frac)*spacing > maxOffset {
			t.Fatalf("particle %d lane %v is %v from its lane center, allowed %v",
				i, p.Char.Lane, absf(frac)*spacing, maxOffset)
		}
	}
}

func TestNeedsRebuild(t *testing.T) {
	tun := testTuning()
	cfg := testSimConfig(components.ModeSwarm, 100)
	f, err := NewField(cfg, tun, 1)
	if err != nil {
		t.Fatal(err)
	}

	if f.NeedsRebuild(cfg) {
		t.Error("unchanged config should not rebuild")
	}

	changedSpeed := cfg
	changedSpeed.BaseSpeed = 3.0
	if f.NeedsRebuild(changedSpeed) {
		t.Error("base speed change should not rebuild the field")
	}

	changedPop := cfg
	changedPop.Population = 101
	if !f.NeedsRebuild(changedPop) {
		t.Error("population change must rebuild")
	}

	changedMode := cfg
	changedMode.Mode = components.ModeStreamlines
	if !f.NeedsRebuild(changedMode) {
		t.Error("mode change must rebuild")
	}
}
