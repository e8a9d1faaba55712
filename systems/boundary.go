package systems

import (
	"math/rand"

	"github.com/aeroviz/slipstream/components"
)

// Recycle reseeds a particle that drifted past the downstream bound.
// The particle re-enters upstream with a random setback so arrivals
// never form a visible wall, y returns to the particle's home lane, and
// any accumulated wake spread is cleared. Lane, speed bias and phase are
// untouched: identity survives every recycle.
func Recycle(rng *rand.Rand, t *Tuning, pos *components.Position, char *components.Character, w *components.Wake) {
	pos.X = t.XMin - rng.Float32()*t.ReentryJitter
	pos.Y = char.Lane
	if w != nil {
		w.Spread = 0
	}
}
