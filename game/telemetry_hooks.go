package game

import "log/slog"

// flushTelemetry closes the stats window when it fills and routes the
// results to slog and CSV output.
func (g *Game) flushTelemetry() {
	if !g.collector.WindowReady() {
		return
	}

	stats := g.collector.Flush(g.clock, g.simCfg, g.aero)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.Log()
		perfStats.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
