// Package combat implements the attack-resolution engine for Mirefall:
// hit, critical, and damage formulas, single-attack resolution, and the
// round orchestration strategies built on top of them.
package combat

import "github.com/mirefall/mirefall/internal/game/item"

// Combatant is the capability any entity must expose to take part in combat.
// Heroes, monsters, and test doubles all satisfy it; the engine never
// constructs or destroys combatants, it only reads stats and applies damage.
//
// Invariant: implementations keep HP() <= MaxHP() and HP() >= 0; TakeDamage
// and Heal saturate rather than wrap.
type Combatant interface {
	// HP returns current hit points.
	HP() int
	// MaxHP returns the hit point ceiling.
	MaxHP() int
	// AttackPower returns the effective attack stat, weapon included.
	AttackPower() int
	// Defense returns the damage mitigation stat.
	Defense() int
	// Accuracy returns the to-hit stat, weapon included.
	Accuracy() int
	// Evasion returns the dodge stat.
	Evasion() int
	// CritBonus returns the additive critical-hit probability on top of
	// the base critical chance.
	CritBonus() float64
	// Weapon returns the wielded weapon, or nil when unarmed.
	Weapon() *item.Weapon
	// IsAlive reports HP() > 0.
	IsAlive() bool
	// Name returns the display name used in combat log lines.
	Name() string
	// AttackDistance returns the maximum attack range in tiles.
	AttackDistance() int

	// TakeDamage reduces HP by amount (flooring at 0) and reports whether
	// the combatant is still alive afterwards.
	TakeDamage(amount int) bool
	// Heal restores HP by amount, capping at MaxHP.
	Heal(amount int)
}

// ExperienceProvider is the optional reward surface of a Combatant. Entities
// that do not implement it grant no experience on death.
type ExperienceProvider interface {
	// ExperienceValue returns the experience awarded to whoever lands the
	// killing blow.
	ExperienceValue() int
}

// IsRanged reports whether c attacks at more than melee reach.
//
// Postcondition: Returns true iff c.AttackDistance() > 1.
func IsRanged(c Combatant) bool {
	return c.AttackDistance() > 1
}

// experienceValue returns the reward for defeating c, or 0 when c grants none.
func experienceValue(c Combatant) int {
	if p, ok := c.(ExperienceProvider); ok {
		if xp := p.ExperienceValue(); xp > 0 {
			return xp
		}
	}
	return 0
}
