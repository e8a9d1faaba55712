// Package systems implements the real-time flow-field engine: the
// particle population, the near-body deflection model, the wake and
// vortex-shedding model, boundary recycling, and the mapping from
// particle state to renderable instances.
package systems

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/aeroviz/slipstream/components"
	"github.com/aeroviz/slipstream/config"
)

// SimConfig is the runtime flow configuration. It is replaced wholesale
// on change; Field.NeedsRebuild reports when a change invalidates the
// current population.
type SimConfig struct {
	Population     int
	Mode           components.RenderMode
	BaseSpeed      float32
	Turbulence     float32
	WakeEnabled    bool
	HeatmapEnabled bool
	Paused         bool
}

// SimConfigFromFlow builds the runtime config from the loaded YAML flow section.
func SimConfigFromFlow(fc config.FlowConfig) (SimConfig, error) {
	mode, err := components.ParseRenderMode(fc.Mode)
	if err != nil {
		return SimConfig{}, err
	}
	return SimConfig{
		Population:     fc.Population,
		Mode:           mode,
		BaseSpeed:      float32(fc.BaseSpeed),
		Turbulence:     float32(fc.Turbulence),
		WakeEnabled:    fc.WakeEnabled,
		HeatmapEnabled: fc.HeatmapEnabled,
	}, nil
}

// TickStats are per-tick counters the telemetry collector reads after
// each pass.
type TickStats struct {
	Recycled     int
	InWake       int
	IntensitySum float64
	Samples      int
	Stalled      bool
}

// ParticleState is a copy of one particle's record, for tests.
type ParticleState struct {
	Pos    components.Position
	Char   components.Character
	Spread float32
}

// Field owns the particle population and drives one simulation tick per
// frame. The population lives in an ECS world the field exclusively
// controls; mode and population size are fixed for the field's lifetime
// and a change rebuilds the whole thing.
type Field struct {
	world *ecs.World
	mode  components.RenderMode
	pop   int
	tun   Tuning
	rng   *rand.Rand
	noise opensimplex.Noise

	swarmMapper  *ecs.Map2[components.Position, components.Character]
	swarmFilter  *ecs.Filter2[components.Position, components.Character]
	streamMapper *ecs.Map3[components.Position, components.Character, components.Wake]
	streamFilter *ecs.Filter3[components.Position, components.Character, components.Wake]

	// Reused output buffer; handed to the renderer as a read-only
	// snapshot each tick.
	instances []Instance

	stats        TickStats
	sampleStride int
}

// NewField creates the population for the given configuration. Particles
// start uniformly distributed through the volume. In streamlines mode
// they are grouped into evenly spaced horizontal lanes with slight
// per-particle jitter, so they form coherent streaks instead of fog.
func NewField(cfg SimConfig, tun Tuning, seed int64) (*Field, error) {
	if cfg.Population <= 0 {
		return nil, fmt.Errorf("field population must be > 0, got %d", cfg.Population)
	}

	world := ecs.NewWorld()
	f := &Field{
		world:        world,
		mode:         cfg.Mode,
		pop:          cfg.Population,
		tun:          tun,
		rng:          rand.New(rand.NewSource(seed)),
		noise:        opensimplex.New(seed),
		swarmMapper:  ecs.NewMap2[components.Position, components.Character](world),
		swarmFilter:  ecs.NewFilter2[components.Position, components.Character](world),
		streamMapper: ecs.NewMap3[components.Position, components.Character, components.Wake](world),
		streamFilter: ecs.NewFilter3[components.Position, components.Character, components.Wake](world),
		instances:    make([]Instance, 0, cfg.Population),
		sampleStride: 1,
	}

	laneCount := tun.StreamLanes
	if laneCount < 1 {
		laneCount = 1
	}
	laneSpacing := 2 * tun.YSpan / float32(laneCount)

	for i := 0; i < cfg.Population; i++ {
		var lane float32
		if cfg.Mode == components.ModeStreamlines {
			center := -tun.YSpan + (float32(i%laneCount)+0.5)*laneSpacing
			lane = center + (f.rng.Float32()*2-1)*tun.LaneJitter*laneSpacing
		} else {
			lane = (f.rng.Float32()*2 - 1) * tun.YSpan
		}

		pos := components.Position{
			X: tun.XMin + f.rng.Float32()*(tun.XMax-tun.XMin),
			Y: lane,
			Z: (f.rng.Float32()*2 - 1) * tun.ZSpan,
		}
		char := components.Character{
			Lane:      lane,
			SpeedBias: f.rng.Float32() * tun.SpeedBiasMax,
			Phase:     f.rng.Float32() * TwoPi,
		}

		if cfg.Mode == components.ModeStreamlines {
			wake := components.Wake{}
			f.streamMapper.NewEntity(&pos, &char, &wake)
		} else {
			f.swarmMapper.NewEntity(&pos, &char)
		}
	}

	return f, nil
}

// SetSampleStride sets how sparsely the tick samples intensity for
// telemetry (1 = every particle).
func (f *Field) SetSampleStride(n int) {
	if n < 1 {
		n = 1
	}
	f.sampleStride = n
}

// Population returns the fixed particle count.
func (f *Field) Population() int { return f.pop }

// Mode returns the field's render mode.
func (f *Field) Mode() components.RenderMode { return f.mode }

// NeedsRebuild reports whether the configuration invalidates this
// field. There is no partial resize: either size or mode changing tears
// the population down.
func (f *Field) NeedsRebuild(cfg SimConfig) bool {
	return cfg.Population != f.pop || cfg.Mode != f.mode
}

// Stats returns the counters from the most recent tick.
func (f *Field) Stats() TickStats { return f.stats }

// Tick advances every particle by one step and returns the instance
// buffer for this frame. When paused no state changes and nil is
// returned; the caller suppresses the draw. The buffer is reused across
// ticks and must be consumed before the next call.
func (f *Field) Tick(clock float64, cfg SimConfig, aero components.AeroInput) []Instance {
	if cfg.Paused {
		return nil
	}
	aero = aero.Clamped()

	t := &f.tun
	dt := t.DT
	clockF := float32(clock)

	f.instances = f.instances[:0]
	f.stats = TickStats{Stalled: Stalled(t, aero.AngleOfAttackDeg)}

	sample := 0
	switch f.mode {
	case components.ModeStreamlines:
		query := f.streamFilter.Query()
		for query.Next() {
			pos, char, wake := query.Get()

			vx := cfg.BaseSpeed + char.SpeedBias
			pos.X += vx * dt

			var intensity float32
			if pos.X > t.XMax {
				Recycle(f.rng, t, pos, char, wake)
				f.stats.Recycled++
			} else {
				d := Deflect(t, pos.X, pos.Y, aero)
				dy := d.DY
				intensity = d.Intensity

				if cfg.WakeEnabled {
					wdy, wIntensity, in := StreamWake(t, f.rng, pos.X, pos.Y, wake, aero, cfg.Turbulence)
					dy += wdy
					intensity += wIntensity
					if in {
						f.stats.InWake++
					}
				} else {
					wake.Spread = 0
				}

				pos.Y += dy * dt
			}

			if sample%f.sampleStride == 0 {
				f.stats.IntensitySum += float64(intensity)
				f.stats.Samples++
			}
			sample++

			f.instances = append(f.instances, PresentStream(t, *pos, wake.Spread, intensity, cfg.HeatmapEnabled))
		}

	default: // swarm
		query := f.swarmFilter.Query()
		for query.Next() {
			pos, char := query.Get()

			vx := cfg.BaseSpeed + char.SpeedBias
			pos.X += vx * dt

			var dy, intensity float32
			if pos.X > t.XMax {
				Recycle(f.rng, t, pos, char, nil)
				f.stats.Recycled++
			} else {
				d := Deflect(t, pos.X, pos.Y, aero)
				dy = d.DY
				intensity = d.Intensity

				if cfg.WakeEnabled {
					w := SwarmWake(t, f.noise, clockF, pos.X, pos.Y, char.Phase, aero, cfg.Turbulence)
					vx += w.DX
					dy += w.DY
					intensity += w.Intensity
					if w.InWake {
						f.stats.InWake++
					}
					pos.X += w.DX * dt
				}

				pos.Y += dy * dt
			}

			if sample%f.sampleStride == 0 {
				f.stats.IntensitySum += float64(intensity)
				f.stats.Samples++
			}
			sample++

			f.instances = append(f.instances, PresentSwarm(t, *pos, vx, dy, intensity, cfg.HeatmapEnabled))
		}
	}

	return f.instances
}

// Snapshot copies every particle's state in population order.
func (f *Field) Snapshot() []ParticleState {
	out := make([]ParticleState, 0, f.pop)
	if f.mode == components.ModeStreamlines {
		query := f.streamFilter.Query()
		for query.Next() {
			pos, char, wake := query.Get()
			out = append(out, ParticleState{Pos: *pos, Char: *char, Spread: wake.Spread})
		}
		return out
	}
	query := f.swarmFilter.Query()
	for query.Next() {
		pos, char := query.Get()
		out = append(out, ParticleState{Pos: *pos, Char: *char})
	}
	return out
}
