// Package game wires the particle field, renderers, UI, and telemetry
// into the interactive engine loop.
package game

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/aeroviz/slipstream/airfoil"
	"github.com/aeroviz/slipstream/camera"
	"github.com/aeroviz/slipstream/components"
	"github.com/aeroviz/slipstream/config"
	"github.com/aeroviz/slipstream/renderer"
	"github.com/aeroviz/slipstream/systems"
	"github.com/aeroviz/slipstream/telemetry"
	"github.com/aeroviz/slipstream/ui"
)

// Options configures engine startup.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete engine state.
type Game struct {
	tun    systems.Tuning
	field  *systems.Field
	simCfg systems.SimConfig

	section airfoil.Parametric
	aero    components.AeroInput
	state   ui.ControlState

	cam       *camera.Camera
	particles *renderer.ParticleRenderer
	body      *renderer.BodyRenderer
	overlay   *renderer.WakeOverlay
	controls  *ui.ControlsPanel
	hud       *ui.HUD

	showWakeCone bool
	speed        int

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	seed           int64
	clock          float64
	tick           int32
	logStats       bool
	stepsPerUpdate int

	instances []systems.Instance
}

// NewGameWithOptions creates the engine from the loaded configuration.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	tun := systems.TuningFromConfig(cfg)

	simCfg, err := systems.SimConfigFromFlow(cfg.Flow)
	if err != nil {
		return nil, fmt.Errorf("flow config: %w", err)
	}

	field, err := systems.NewField(simCfg, tun, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating field: %w", err)
	}
	field.SetSampleStride(cfg.Telemetry.IntensitySampleStride)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	section := airfoil.Parametric{
		Thickness: cfg.Airfoil.ThicknessPercent,
		Camber:    cfg.Airfoil.CamberPercent,
		CamberPos: cfg.Airfoil.CamberPosition,
	}
	aero := airfoil.InputFrom(section, cfg.Airfoil.AngleOfAttackDeg)

	g := &Game{
		tun:     tun,
		field:   field,
		simCfg:  simCfg,
		section: section,
		aero:    aero,
		state: ui.ControlState{
			AngleOfAttackDeg: aero.AngleOfAttackDeg,
			ThicknessPercent: aero.ThicknessPercent,
			Turbulence:       simCfg.Turbulence,
			BaseSpeed:        simCfg.BaseSpeed,
			Population:       simCfg.Population,
			Mode:             simCfg.Mode,
			WakeEnabled:      simCfg.WakeEnabled,
			HeatmapEnabled:   simCfg.HeatmapEnabled,
		},
		collector:      telemetry.NewCollector(statsWindow, cfg.Physics.DT),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:         output,
		seed:           opts.Seed,
		logStats:       opts.LogStats,
		stepsPerUpdate: stepsPerUpdate,
		speed:          1,
	}

	if !opts.Headless {
		volumeW := tun.XMax - tun.XMin
		g.cam = camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, volumeW)
		g.particles = renderer.NewParticleRenderer(g.cam)
		g.body = renderer.NewBodyRenderer(g.cam)
		g.overlay = renderer.NewWakeOverlay(g.cam)
		g.controls = ui.NewControlsPanel(int32(cfg.Screen.Width)-270, 10, 260)
		g.hud = ui.NewHUD()
	}

	slog.Info("engine ready",
		"population", simCfg.Population,
		"mode", simCfg.Mode.String(),
		"seed", opts.Seed,
		"headless", opts.Headless,
	)

	return g, nil
}

// Update advances the engine by one frame: input, control edits, then
// simulation.
func (g *Game) Update() {
	g.handleInput()
	g.applyControls()

	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseField)
	for i := 0; i < g.speed; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless advances the simulation without any rendering.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseField)
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
	g.perf.EndTick()
}

// simulationStep runs a single tick of the simulation.
func (g *Game) simulationStep() {
	if g.simCfg.Paused {
		return
	}

	g.instances = g.field.Tick(g.clock, g.simCfg, g.aero)
	g.clock += float64(g.tun.DT)
	g.tick++

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(g.field.Stats(), g.field.Population())
	g.flushTelemetry()
}

// applyControls folds panel edits back into the running simulation and
// rebuilds the field when population or mode changed.
func (g *Game) applyControls() {
	s := &g.state

	g.section.Thickness = float64(s.ThicknessPercent)
	g.aero = airfoil.InputFrom(g.section, float64(s.AngleOfAttackDeg))

	g.simCfg.Turbulence = s.Turbulence
	g.simCfg.BaseSpeed = s.BaseSpeed
	g.simCfg.WakeEnabled = s.WakeEnabled
	g.simCfg.HeatmapEnabled = s.HeatmapEnabled
	g.simCfg.Paused = s.Paused

	next := g.simCfg
	next.Population = s.Population
	next.Mode = s.Mode

	if g.field.NeedsRebuild(next) {
		field, err := systems.NewField(next, g.tun, g.seed)
		if err != nil {
			slog.Error("field rebuild failed", "error", err)
			s.Population = g.simCfg.Population
			s.Mode = g.simCfg.Mode
			return
		}
		field.SetSampleStride(config.Cfg().Telemetry.IntensitySampleStride)
		g.field = field
		g.simCfg = next
		slog.Info("field rebuilt",
			"population", next.Population,
			"mode", next.Mode.String(),
		)
	}

	if s.ResetCamera && g.cam != nil {
		g.cam.Reset(g.tun.XMax - g.tun.XMin)
		s.ResetCamera = false
	}
}

// Draw renders the frame.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 10, B: 14, A: 255})

	g.particles.Draw(g.instances)
	g.body.Draw(g.section, float64(g.aero.AngleOfAttackDeg))
	if g.showWakeCone {
		g.overlay.Draw(&g.tun, g.aero)
	}

	g.perf.StartPhase(telemetry.PhaseUI)

	stats := g.field.Stats()
	inWakeFrac := 0.0
	if pop := g.field.Population(); pop > 0 {
		inWakeFrac = float64(stats.InWake) / float64(pop)
	}
	g.hud.Draw(ui.HUDData{
		Title:            "Slipstream",
		Tick:             g.tick,
		FPS:              rl.GetFPS(),
		Speed:            g.speed,
		Population:       g.field.Population(),
		Mode:             g.field.Mode().String(),
		AngleOfAttackDeg: g.aero.AngleOfAttackDeg,
		ThicknessPercent: g.aero.ThicknessPercent,
		Stalled:          stats.Stalled,
		InWakeFrac:       inWakeFrac,
		Paused:           g.simCfg.Paused,
		ScreenHeight:     int32(config.Cfg().Screen.Height),
	})
	g.hud.DrawControls(int32(config.Cfg().Screen.Height),
		"[Space] pause  [M] mode  [W] wake  [H] heatmap  [C] cone  [</>] speed  [Tab] panel  [R] reset view  [drag] pan  [wheel] zoom")

	g.controls.Draw(&g.state)

	rl.EndDrawing()

	g.perf.EndTick()
}

// Unload flushes telemetry output and releases resources.
func (g *Game) Unload() {
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Clock returns elapsed simulated seconds.
func (g *Game) Clock() time.Duration {
	return time.Duration(g.clock * float64(time.Second))
}
