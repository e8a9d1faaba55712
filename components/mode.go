package components

import "fmt"

// RenderMode selects the particle behavior and lifecycle.
type RenderMode uint8

const (
	// ModeSwarm renders oriented streaks with discrete vortex shedding.
	ModeSwarm RenderMode = iota
	// ModeStreamlines renders billboarded discs that diffuse into plumes.
	ModeStreamlines
)

// String returns the config-file spelling of the mode.
func (m RenderMode) String() string {
	switch m {
	case ModeSwarm:
		return "swarm"
	case ModeStreamlines:
		return "streamlines"
	}
	return fmt.Sprintf("RenderMode(%d)", uint8(m))
}

// ParseRenderMode converts a config-file mode string.
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "swarm":
		return ModeSwarm, nil
	case "streamlines":
		return ModeStreamlines, nil
	}
	return ModeSwarm, fmt.Errorf("unknown render mode %q", s)
}
