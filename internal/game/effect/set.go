package effect

import "fmt"

// Target is the subset of combat.Combatant the status tick needs.
// Using a local interface avoids a circular import.
type Target interface {
	Name() string
	TakeDamage(amount int) bool
}

// Set owns the active effects of exactly one combatant. It is created with
// the combatant, lives as long as the combatant does, and is never shared.
// Effects are kept in a small linear-scan slice; at single-digit effect
// counts per combatant that beats any index structure.
//
// Invariant: at most one instance per non-stackable Type.
type Set struct {
	effects []Effect
}

// NewSet creates an empty effect Set.
//
// Postcondition: Returns a non-nil Set with no active effects.
func NewSet() *Set {
	return &Set{}
}

// Add applies e to the owning combatant. Stackable types append a fresh
// independent instance; non-stackable types replace any existing instance of
// the same type in place, resetting its duration and intensity.
//
// Postcondition: Has(e.Type) is true.
func (s *Set) Add(e Effect) {
	if e.Type.Stackable() {
		s.effects = append(s.effects, e)
		return
	}
	for i := range s.effects {
		if s.effects[i].Type == e.Type {
			s.effects[i] = e
			return
		}
	}
	s.effects = append(s.effects, e)
}

// Remove drops every instance of the given type.
//
// Postcondition: Has(t) is false.
func (s *Set) Remove(t Type) {
	kept := s.effects[:0]
	for _, e := range s.effects {
		if e.Type != t {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}

// Has reports whether at least one effect of the given type is active.
func (s *Set) Has(t Type) bool {
	for _, e := range s.effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// ByType returns copies of all active effects of the given type.
func (s *Set) ByType(t Type) []Effect {
	var out []Effect
	for _, e := range s.effects {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of active effect instances.
func (s *Set) Len() int {
	return len(s.effects)
}

// All returns a copy of the active effect list, for display or persistence.
func (s *Set) All() []Effect {
	out := make([]Effect, len(s.effects))
	copy(out, s.effects)
	return out
}

// Update advances one status tick for c and returns the log lines produced.
// It runs two separate passes: first every damage-dealing effect applies its
// periodic damage, then every effect's duration is ticked down and expired
// effects are dropped. Damage must see the pre-tick effect list, never a
// partially-expired one, which is why the passes are not merged.
//
// Precondition: c must be non-nil.
// Postcondition: Every expired effect is removed and produced one log line;
// every damage-dealing effect produced one log line.
func (s *Set) Update(c Target) []string {
	var logs []string

	for _, e := range s.effects {
		dmg := e.Damage()
		if dmg > 0 {
			c.TakeDamage(dmg)
			logs = append(logs, fmt.Sprintf("%s takes %d damage from %s", c.Name(), dmg, e.Description()))
		}
	}

	kept := s.effects[:0]
	for i := range s.effects {
		if s.effects[i].Tick() {
			kept = append(kept, s.effects[i])
		} else {
			logs = append(logs, fmt.Sprintf("%s's %s has expired", c.Name(), s.effects[i].Description()))
		}
	}
	s.effects = kept

	return logs
}

// Resistance returns the owning combatant's resistance chance against newly
// incoming effects of the given type. Informational: nothing applies it to
// already-active effects.
func (s *Set) Resistance(t Type) float64 {
	return t.Resistance()
}
