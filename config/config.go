// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Flow      FlowConfig      `yaml:"flow"`
	Volume    VolumeConfig    `yaml:"volume"`
	Body      BodyConfig      `yaml:"body"`
	Wake      WakeConfig      `yaml:"wake"`
	Render    RenderConfig    `yaml:"render"`
	Airfoil   AirfoilConfig   `yaml:"airfoil"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds simulation timing parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// FlowConfig holds the flow-field settings the UI can change at runtime.
// Changing population or mode tears down and rebuilds the whole field.
type FlowConfig struct {
	Population     int     `yaml:"population"`     // particle count
	BaseSpeed      float64 `yaml:"base_speed"`     // downstream drift, units/sec
	SpeedBiasMax   float64 `yaml:"speed_bias_max"` // per-particle speed variance ceiling
	Turbulence     float64 `yaml:"turbulence"`     // wake chaos multiplier
	Mode           string  `yaml:"mode"`           // "swarm" or "streamlines"
	WakeEnabled    bool    `yaml:"wake_enabled"`
	HeatmapEnabled bool    `yaml:"heatmap_enabled"`
	StreamLanes    int     `yaml:"stream_lanes"` // streak count in streamlines mode
	LaneJitter     float64 `yaml:"lane_jitter"`  // fraction of lane spacing
}

// VolumeConfig holds the simulated volume bounds and recycling parameters.
type VolumeConfig struct {
	XMin          float64 `yaml:"x_min"`
	XMax          float64 `yaml:"x_max"`
	YSpan         float64 `yaml:"y_span"` // half-height
	ZSpan         float64 `yaml:"z_span"` // half-depth, visual only
	ReentryJitter float64 `yaml:"reentry_jitter"`
	FadeDistance  float64 `yaml:"fade_distance"` // smoothstep width at both x bounds
}

// BodyConfig holds the near-body deflection model parameters.
// These are tuned for visual plausibility, not derived from a physical model.
type BodyConfig struct {
	RefX                 float64 `yaml:"ref_x"`                  // influence center, near the leading region
	InfluenceK           float64 `yaml:"influence_k"`            // Gaussian falloff rate
	CutoffRadius         float64 `yaml:"cutoff_radius"`          // base negligible-influence radius
	CutoffThicknessScale float64 `yaml:"cutoff_thickness_scale"` // cutoff growth per unit thickness
	ThicknessGain        float64 `yaml:"thickness_gain"`         // outward push per unit thickness
	AngleGain            float64 `yaml:"angle_gain"`             // upwash/downwash strength
	IntensityWeight      float64 `yaml:"intensity_weight"`       // influence contribution to heatmap intensity
}

// WakeConfig holds the wake and vortex-shedding model parameters.
type WakeConfig struct {
	StallThresholdDeg  float64 `yaml:"stall_threshold_deg"`
	SepAttached        float64 `yaml:"sep_attached"`      // separation x-offset, attached flow
	SepStalled         float64 `yaml:"sep_stalled"`       // separation x-offset, stalled flow
	ThicknessWidth     float64 `yaml:"thickness_width"`   // half-width per unit thickness
	AngleWidthNorm     float64 `yaml:"angle_width_norm"`  // degrees mapped to one width unit
	GrowthRate         float64 `yaml:"growth_rate"`       // cone widening per unit downstream
	AngleIntensityNorm float64 `yaml:"angle_intensity_norm"`
	IntensityBase      float64 `yaml:"intensity_base"` // wake intensity floor before decay
	IntensityFloor     float64 `yaml:"intensity_floor"` // min intensity that contributes to heatmap
	DecayRate          float64 `yaml:"decay_rate"`      // downstream intensity falloff
	SheddingFreq       float64 `yaml:"shedding_freq"`
	SheddingSpeed      float64 `yaml:"shedding_speed"`
	OscAmplitude       float64 `yaml:"osc_amplitude"`
	JitterAmplitude    float64 `yaml:"jitter_amplitude"`
	JitterScale        float64 `yaml:"jitter_scale"` // noise frequency along the clock axis
	SpreadAccumRate    float64 `yaml:"spread_accum_rate"`
	SpreadMax          float64 `yaml:"spread_max"`
	SpreadDiffusion    float64 `yaml:"spread_diffusion"`
	IntensityWeight    float64 `yaml:"intensity_weight"`
}

// RenderConfig holds presentation-mapping parameters.
type RenderConfig struct {
	StreakBase       float64 `yaml:"streak_base"`        // swarm streak length at zero speed
	StreakSpeedScale float64 `yaml:"streak_speed_scale"` // streak growth per unit speed
	DiscBase         float64 `yaml:"disc_base"`          // streamlines disc radius at zero spread
	DiscSpreadScale  float64 `yaml:"disc_spread_scale"`  // disc growth per unit spread
	IntensityClamp   float64 `yaml:"intensity_clamp"`    // heatmap input ceiling
	CoolHueDeg       float64 `yaml:"cool_hue_deg"`
	HotHueDeg        float64 `yaml:"hot_hue_deg"`
	SwarmColor       string  `yaml:"swarm_color"`      // hex RGB, used when heatmap is off
	StreamlineColor  string  `yaml:"streamline_color"` // hex RGB, used when heatmap is off
}

// AirfoilConfig holds geometry-model defaults.
type AirfoilConfig struct {
	ThicknessPercent float64 `yaml:"thickness_percent"` // NACA-style max thickness
	CamberPercent    float64 `yaml:"camber_percent"`
	CamberPosition   float64 `yaml:"camber_position"` // tenths of chord
	AngleOfAttackDeg float64 `yaml:"angle_of_attack_deg"`
	OutlineSamples   int     `yaml:"outline_samples"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow           float64 `yaml:"stats_window"` // seconds per stats window
	PerfCollectorWindow   int     `yaml:"perf_collector_window"`
	IntensitySampleStride int     `yaml:"intensity_sample_stride"` // sample every Nth particle
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the engine cannot run with.
// The per-particle loop assumes validated inputs, so everything is checked here
// rather than inside the hot path.
func (c *Config) validate() error {
	if c.Flow.Population <= 0 {
		return fmt.Errorf("flow.population must be > 0, got %d", c.Flow.Population)
	}
	if c.Flow.BaseSpeed <= 0 {
		return fmt.Errorf("flow.base_speed must be > 0, got %g", c.Flow.BaseSpeed)
	}
	if c.Flow.Turbulence < 0 {
		return fmt.Errorf("flow.turbulence must be >= 0, got %g", c.Flow.Turbulence)
	}
	if c.Flow.Mode != "swarm" && c.Flow.Mode != "streamlines" {
		return fmt.Errorf("flow.mode must be %q or %q, got %q", "swarm", "streamlines", c.Flow.Mode)
	}
	if c.Volume.XMax <= c.Volume.XMin {
		return fmt.Errorf("volume.x_max (%g) must exceed volume.x_min (%g)", c.Volume.XMax, c.Volume.XMin)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be > 0, got %g", c.Physics.DT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
