// Package effect implements status effects for combatants: a closed set of
// effect kinds, the per-instance duration state machine, and the Set that
// owns and advances one combatant's active effects between turns.
package effect

// Type identifies one kind of status effect.
type Type int

const (
	Burning Type = iota
	Poison
	Paralysis
	Bleeding
	Invisibility
	Levitation
	Slow
	Haste
	MindVision
	AntiMagic
	Barkskin
	Combo
	Fury
	Ooze
	Frost
	Light
	Darkness
	Rooted
)

// String returns the lowercase effect name used in combat log lines.
func (t Type) String() string {
	switch t {
	case Burning:
		return "burning"
	case Poison:
		return "poison"
	case Paralysis:
		return "paralysis"
	case Bleeding:
		return "bleeding"
	case Invisibility:
		return "invisibility"
	case Levitation:
		return "levitation"
	case Slow:
		return "slow"
	case Haste:
		return "haste"
	case MindVision:
		return "mind vision"
	case AntiMagic:
		return "anti-magic"
	case Barkskin:
		return "barkskin"
	case Combo:
		return "combo"
	case Fury:
		return "fury"
	case Ooze:
		return "ooze"
	case Frost:
		return "frost"
	case Light:
		return "light"
	case Darkness:
		return "darkness"
	case Rooted:
		return "rooted"
	default:
		return "unknown"
	}
}

// Stackable reports whether repeated applications of this type accumulate as
// independent instances. Non-stackable types are replaced in place instead.
func (t Type) Stackable() bool {
	switch t {
	case Burning, Poison, Bleeding:
		return true
	default:
		return false
	}
}

// DealsDamage reports whether this type applies periodic damage on each
// status tick.
func (t Type) DealsDamage() bool {
	switch t {
	case Burning, Poison, Bleeding:
		return true
	default:
		return false
	}
}

// Resistance returns the baseline resistance chance against newly incoming
// effects of this type. Informational for now: callers may scale their
// apply-effect rolls with it, but nothing in the engine consumes it yet.
func (t Type) Resistance() float64 {
	switch t {
	case Paralysis:
		return 0.2
	case Frost:
		return 0.1
	case Burning:
		return 0.15
	default:
		return 0
	}
}
