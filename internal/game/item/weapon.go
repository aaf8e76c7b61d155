// Package item holds the equipment surface the combat engine reads.
// Equipment management itself lives outside the combat core; combat only
// ever inspects a combatant's currently wielded weapon.
package item

// Weapon modifies the wielder's combat numbers. A nil *Weapon means unarmed:
// no bonuses and melee reach.
type Weapon struct {
	Name          string
	DamageBonus   int
	AccuracyBonus int
	// Range is the maximum attack distance in tiles. Values > 1 make the
	// wielder a ranged combatant.
	Range int
}

// EffectiveRange returns the weapon's reach, flooring at melee range 1.
//
// Postcondition: Returns >= 1.
func (w *Weapon) EffectiveRange() int {
	if w == nil || w.Range < 1 {
		return 1
	}
	return w.Range
}
