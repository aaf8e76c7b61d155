package effect

import "fmt"

const (
	// DefaultIntensity is used when an effect is created without an
	// explicit intensity.
	DefaultIntensity = 3

	minIntensity = 1
	maxIntensity = 10
)

// Effect is one applied status-effect instance. Its lifecycle is a two-state
// machine: Active while Duration > 0, Expired (and removed from the owning
// Set) once Duration reaches 0. Persistence for the external save/load layer
// lives in Marshal/Unmarshal.
type Effect struct {
	Type      Type
	Duration  int
	Intensity int
}

// New creates an effect of the given type with DefaultIntensity.
//
// Postcondition: Intensity == DefaultIntensity; negative durations clamp to 0.
func New(t Type, duration int) Effect {
	return WithIntensity(t, duration, DefaultIntensity)
}

// WithIntensity creates an effect with an explicit intensity.
// Intensity is clamped to [1, 10] and duration floors at 0; malformed inputs
// are corrected rather than rejected.
//
// Postcondition: 1 <= Intensity <= 10; Duration >= 0.
func WithIntensity(t Type, duration, intensity int) Effect {
	if duration < 0 {
		duration = 0
	}
	if intensity < minIntensity {
		intensity = minIntensity
	}
	if intensity > maxIntensity {
		intensity = maxIntensity
	}
	return Effect{Type: t, Duration: duration, Intensity: intensity}
}

// Active reports whether the effect still has turns remaining.
func (e Effect) Active() bool {
	return e.Duration > 0
}

// Damage returns the periodic damage this effect deals per status tick:
// the intensity for damage-over-time types, 0 for everything else.
//
// Postcondition: Returns >= 0.
func (e Effect) Damage() int {
	if !e.Type.DealsDamage() {
		return 0
	}
	return e.Intensity
}

// Tick consumes one turn of the effect's duration and reports whether it is
// still active afterwards.
//
// Postcondition: Duration decremented by 1, flooring at 0; returns Active().
func (e *Effect) Tick() bool {
	if e.Duration > 0 {
		e.Duration--
	}
	return e.Active()
}

// Description returns the human-readable label used in status log lines.
func (e Effect) Description() string {
	if e.Type.DealsDamage() {
		return fmt.Sprintf("%s (-%d HP per turn)", e.Type, e.Damage())
	}
	return e.Type.String()
}
