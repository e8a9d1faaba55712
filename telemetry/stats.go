// Package telemetry aggregates per-tick engine counters into windowed
// statistics, timing data, and CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated flow statistics for a time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Configuration at window end
	Population       int     `csv:"population"`
	Mode             string  `csv:"mode"`
	AngleOfAttackDeg float64 `csv:"angle_of_attack"`
	ThicknessPercent float64 `csv:"thickness"`
	Turbulence       float64 `csv:"turbulence"`

	// Flow behavior during the window
	Recycles      int     `csv:"recycles"`
	InWakeFrac    float64 `csv:"in_wake_frac"`
	StalledFrac   float64 `csv:"stalled_frac"`
	IntensityMean float64 `csv:"intensity_mean"`
	IntensityStd  float64 `csv:"intensity_std"`
	IntensityP50  float64 `csv:"intensity_p50"`
	IntensityP90  float64 `csv:"intensity_p90"`
}

// ComputeIntensityStats calculates mean, spread, and percentiles from
// per-tick mean-intensity samples.
func ComputeIntensityStats(values []float64) (mean, std, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

// Log writes the window to slog as a single structured record.
func (w WindowStats) Log() {
	slog.Info("flow stats",
		"tick", w.WindowEndTick,
		"sim_time", w.SimTimeSec,
		"mode", w.Mode,
		"angle", w.AngleOfAttackDeg,
		"thickness", w.ThicknessPercent,
		"recycles", w.Recycles,
		"in_wake_frac", w.InWakeFrac,
		"stalled_frac", w.StalledFrac,
		"intensity_mean", w.IntensityMean,
		"intensity_p90", w.IntensityP90,
	)
}
