package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseField)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}

	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseField]; !ok {
		t.Error("expected field phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseDraw]; !ok {
		t.Error("expected draw phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseField)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)
	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero average before any ticks")
	}
	if stats.PhaseAvg == nil {
		t.Error("expected non-nil phase map even with no samples")
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 500 * time.Microsecond,
		MinTickDuration: 100 * time.Microsecond,
		MaxTickDuration: 900 * time.Microsecond,
		PhaseAvg: map[string]time.Duration{
			PhaseField: 300 * time.Microsecond,
			PhaseDraw:  150 * time.Microsecond,
		},
		TicksPerSecond: 2000,
	}

	row := stats.ToCSV(120)

	if row.WindowEnd != 120 {
		t.Errorf("window end = %d, want 120", row.WindowEnd)
	}
	if row.AvgTickUs != 500 {
		t.Errorf("avg tick = %d, want 500", row.AvgTickUs)
	}
	if row.FieldUs != 300 {
		t.Errorf("field phase = %d, want 300", row.FieldUs)
	}
	if row.DrawUs != 150 {
		t.Errorf("draw phase = %d, want 150", row.DrawUs)
	}
	// Phases absent from the map read as zero
	if row.UIUs != 0 || row.TelemetryUs != 0 {
		t.Error("absent phases should export as zero")
	}
}
