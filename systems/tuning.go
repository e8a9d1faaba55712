package systems

import (
	"math"

	"github.com/aeroviz/slipstream/config"
)

// Tuning holds every constant the flow models read, converted to float32
// once at field creation so the per-particle loop never touches the
// config package. Values come from the body/wake/volume/render sections
// of the configuration; they are tuned for visual plausibility.
type Tuning struct {
	DT float32

	// Volume and recycling
	XMin, XMax    float32
	YSpan, ZSpan  float32
	ReentryJitter float32
	FadeDistance  float32

	// Population character
	SpeedBiasMax float32
	StreamLanes  int
	LaneJitter   float32

	// Near-body deflection
	RefX                 float32
	InfluenceK           float32
	CutoffRadius         float32
	CutoffThicknessScale float32
	ThicknessGain        float32
	AngleGain            float32
	BodyIntensityWeight  float32

	// Wake and shedding
	StallThresholdDeg   float32
	SepAttached         float32
	SepStalled          float32
	ThicknessWidth      float32
	AngleWidthNorm      float32
	GrowthRate          float32
	AngleIntensityNorm  float32
	IntensityBase       float32
	IntensityFloor      float32
	DecayRate           float32
	SheddingFreq        float32
	SheddingSpeed       float32
	OscAmplitude        float32
	JitterAmplitude     float32
	JitterScale         float32
	SpreadAccumRate     float32
	SpreadMax           float32
	SpreadDiffusion     float32
	WakeIntensityWeight float32

	// Presentation
	StreakBase       float32
	StreakSpeedScale float32
	DiscBase         float32
	DiscSpreadScale  float32
	IntensityClamp   float32
	CoolHueDeg       float32
	HotHueDeg        float32
	SwarmColor       Color
	StreamlineColor  Color
}

// TuningFromConfig flattens the loaded configuration into a Tuning.
func TuningFromConfig(c *config.Config) Tuning {
	return Tuning{
		DT: float32(c.Physics.DT),

		XMin:          float32(c.Volume.XMin),
		XMax:          float32(c.Volume.XMax),
		YSpan:         float32(c.Volume.YSpan),
		ZSpan:         float32(c.Volume.ZSpan),
		ReentryJitter: float32(c.Volume.ReentryJitter),
		FadeDistance:  float32(c.Volume.FadeDistance),

		SpeedBiasMax: float32(c.Flow.SpeedBiasMax),
		StreamLanes:  c.Flow.StreamLanes,
		LaneJitter:   float32(c.Flow.LaneJitter),

		RefX:                 float32(c.Body.RefX),
		InfluenceK:           float32(c.Body.InfluenceK),
		CutoffRadius:         float32(c.Body.CutoffRadius),
		CutoffThicknessScale: float32(c.Body.CutoffThicknessScale),
		ThicknessGain:        float32(c.Body.ThicknessGain),
		AngleGain:            float32(c.Body.AngleGain),
		BodyIntensityWeight:  float32(c.Body.IntensityWeight),

		StallThresholdDeg:   float32(c.Wake.StallThresholdDeg),
		SepAttached:         float32(c.Wake.SepAttached),
		SepStalled:          float32(c.Wake.SepStalled),
		ThicknessWidth:      float32(c.Wake.ThicknessWidth),
		AngleWidthNorm:      float32(c.Wake.AngleWidthNorm),
		GrowthRate:          float32(c.Wake.GrowthRate),
		AngleIntensityNorm:  float32(c.Wake.AngleIntensityNorm),
		IntensityBase:       float32(c.Wake.IntensityBase),
		IntensityFloor:      float32(c.Wake.IntensityFloor),
		DecayRate:           float32(c.Wake.DecayRate),
		SheddingFreq:        float32(c.Wake.SheddingFreq),
		SheddingSpeed:       float32(c.Wake.SheddingSpeed),
		OscAmplitude:        float32(c.Wake.OscAmplitude),
		JitterAmplitude:     float32(c.Wake.JitterAmplitude),
		JitterScale:         float32(c.Wake.JitterScale),
		SpreadAccumRate:     float32(c.Wake.SpreadAccumRate),
		SpreadMax:           float32(c.Wake.SpreadMax),
		SpreadDiffusion:     float32(c.Wake.SpreadDiffusion),
		WakeIntensityWeight: float32(c.Wake.IntensityWeight),

		StreakBase:       float32(c.Render.StreakBase),
		StreakSpeedScale: float32(c.Render.StreakSpeedScale),
		DiscBase:         float32(c.Render.DiscBase),
		DiscSpreadScale:  float32(c.Render.DiscSpreadScale),
		IntensityClamp:   float32(c.Render.IntensityClamp),
		CoolHueDeg:       float32(c.Render.CoolHueDeg),
		HotHueDeg:        float32(c.Render.HotHueDeg),
		SwarmColor:       parseHexColor(c.Render.SwarmColor),
		StreamlineColor:  parseHexColor(c.Render.StreamlineColor),
	}
}

// parseHexColor converts "rrggbb" to a Color. Malformed strings come
// out grey.
func parseHexColor(s string) Color {
	if len(s) != 6 {
		return Color{R: 128, G: 128, B: 128, A: 255}
	}
	var v uint32
	for i := 0; i < 6; i++ {
		d := hexDigit(s[i])
		if d < 0 {
			return Color{R: 128, G: 128, B: 128, A: 255}
		}
		v = v<<4 | uint32(d)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// TwoPi is handy for phase generation.
const TwoPi = 2 * math.Pi
