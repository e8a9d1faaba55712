package telemetry

import (
	"github.com/aeroviz/slipstream/components"
	"github.com/aeroviz/slipstream/systems"
)

// Collector accumulates per-tick engine counters and emits WindowStats
// every windowTicks ticks.
type Collector struct {
	windowTicks int
	tick        int32

	ticksInWindow  int
	recycles       int
	inWakeFracSum  float64
	stalledTicks   int
	intensityMeans []float64
}

// NewCollector creates a collector that closes a window every
// windowSec seconds of simulated time.
func NewCollector(windowSec, dt float64) *Collector {
	ticks := int(windowSec / dt)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowTicks:    ticks,
		intensityMeans: make([]float64, 0, ticks),
	}
}

// RecordTick folds one tick's counters into the current window.
func (c *Collector) RecordTick(ts systems.TickStats, population int) {
	c.tick++
	c.ticksInWindow++
	c.recycles += ts.Recycled
	if population > 0 {
		c.inWakeFracSum += float64(ts.InWake) / float64(population)
	}
	if ts.Stalled {
		c.stalledTicks++
	}
	if ts.Samples > 0 {
		c.intensityMeans = append(c.intensityMeans, ts.IntensitySum/float64(ts.Samples))
	}
}

// WindowReady reports whether a full window has accumulated.
func (c *Collector) WindowReady() bool {
	return c.ticksInWindow >= c.windowTicks
}

// Flush closes the window and returns its stats.
func (c *Collector) Flush(simTime float64, cfg systems.SimConfig, aero components.AeroInput) WindowStats {
	mean, std, p50, p90 := ComputeIntensityStats(c.intensityMeans)

	w := WindowStats{
		WindowEndTick:    c.tick,
		SimTimeSec:       simTime,
		Population:       cfg.Population,
		Mode:             cfg.Mode.String(),
		AngleOfAttackDeg: float64(aero.AngleOfAttackDeg),
		ThicknessPercent: float64(aero.ThicknessPercent),
		Turbulence:       float64(cfg.Turbulence),
		Recycles:         c.recycles,
		IntensityMean:    mean,
		IntensityStd:     std,
		IntensityP50:     p50,
		IntensityP90:     p90,
	}
	if c.ticksInWindow > 0 {
		w.InWakeFrac = c.inWakeFracSum / float64(c.ticksInWindow)
		w.StalledFrac = float64(c.stalledTicks) / float64(c.ticksInWindow)
	}

	c.ticksInWindow = 0
	c.recycles = 0
	c.inWakeFracSum = 0
	c.stalledTicks = 0
	c.intensityMeans = c.intensityMeans[:0]

	return w
}
