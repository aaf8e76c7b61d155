package combat

import (
	"github.com/mirefall/mirefall/internal/game/roll"
)

// Combat tuning constants. These values define the numeric contract of the
// engine; changing any of them changes every fight in the game.
const (
	// BaseHitChance is the to-hit probability before accuracy and evasion.
	BaseHitChance = 0.8
	// MinHitChance floors the hit probability: no attack is hopeless.
	MinHitChance = 0.05
	// MaxHitChance caps the hit probability: no attack is a certainty.
	MaxHitChance = 0.95
	// BaseCritChance is the critical probability before CritBonus.
	BaseCritChance = 0.10
	// CritMultiplier scales pre-mitigation damage on a critical hit.
	CritMultiplier = 1.5
	// DefenseCap bounds mitigation: defense never removes more than 80%.
	DefenseCap = 0.8
	// MinDamage is the floor for any landed hit.
	MinDamage = 1
	// SurpriseAttackModifier scales pre-mitigation damage on an ambush.
	SurpriseAttackModifier = 2.0
	// AmbushDistance is the reach, in tiles, of an ambush strike.
	AmbushDistance = 1
)

// Damage variance band: every hit rolls between 80% and 120% of attack power.
const (
	varianceLow  = 0.8
	varianceHigh = 1.2
)

// HitChance returns the probability that attacker lands a hit on defender:
// base chance shifted by the accuracy/evasion gap, clamped to the engine's
// floor and ceiling.
//
// Postcondition: MinHitChance <= result <= MaxHitChance.
func HitChance(attacker, defender Combatant) float64 {
	chance := BaseHitChance + float64(attacker.Accuracy()-defender.Evasion())/20.0
	if chance < MinHitChance {
		return MinHitChance
	}
	if chance > MaxHitChance {
		return MaxHitChance
	}
	return chance
}

// AttackHits draws one Bernoulli sample at HitChance(attacker, defender).
//
// Precondition: src must be non-nil.
func AttackHits(attacker, defender Combatant, src roll.Source) bool {
	return roll.Chance(src, HitChance(attacker, defender))
}

// IsCritical draws one Bernoulli sample at BaseCritChance plus the
// attacker's crit bonus. The sum is not clamped here; callers own keeping
// crit bonuses sane.
//
// Precondition: src must be non-nil.
func IsCritical(attacker Combatant, src roll.Source) bool {
	return roll.Chance(src, BaseCritChance+attacker.CritBonus())
}

// Damage computes the damage of one landed hit. The pipeline order is part
// of the numeric contract and must not be reordered:
//
//	variance → crit → ambush → mitigation → floor
//
// Raw damage is attack power with ±20% variance, multiplied by 1.5 on a
// crit and 2.0 on an ambush. The defender then mitigates by
// min(def/(def+5), DefenseCap), and the result floors at MinDamage before
// truncating to an int.
//
// Precondition: src must be non-nil.
// Postcondition: Returns >= MinDamage.
func Damage(attacker, defender Combatant, isCrit, isAmbush bool, src roll.Source) int {
	raw := float64(attacker.AttackPower()) * roll.Between(src, varianceLow, varianceHigh)
	if isCrit {
		raw *= CritMultiplier
	}
	if isAmbush {
		raw *= SurpriseAttackModifier
	}

	defense := float64(defender.Defense())
	factor := defense / (defense + 5.0)
	if factor > DefenseCap {
		factor = DefenseCap
	}
	mitigated := raw * (1.0 - factor)

	if mitigated < MinDamage {
		return MinDamage
	}
	return int(mitigated)
}

// ResolveAttack resolves a single strike from attacker against defender.
// On a hit it rolls the critical once, computes damage, applies it, and logs
// a line tagged critical, ambush, or normal; if the defender dies it adds a
// defeat line, sets Defeated, and collects the experience reward. On a miss
// it logs a miss line only.
//
// Precondition: attacker, defender, and src must be non-nil.
// Postcondition: Returns a CombatResult with at least one log line.
func ResolveAttack(attacker, defender Combatant, isAmbush bool, src roll.Source) CombatResult {
	var result CombatResult

	if !AttackHits(attacker, defender, src) {
		result.Logf("%s misses %s!", attacker.Name(), defender.Name())
		return result
	}

	isCrit := IsCritical(attacker, src)
	damage := Damage(attacker, defender, isCrit, isAmbush, src)
	defender.TakeDamage(damage)

	switch {
	case isAmbush:
		result.Logf("Ambush! %s strikes %s for %d damage (2x damage bonus)!", attacker.Name(), defender.Name(), damage)
	case isCrit:
		result.Logf("Critical hit! %s deals %d damage!", attacker.Name(), damage)
	default:
		result.Logf("%s hits for %d damage!", attacker.Name(), damage)
	}

	if !defender.IsAlive() {
		result.Logf("%s defeated %s!", attacker.Name(), defender.Name())
		result.Defeated = true
		result.Experience = experienceValue(defender)
	}

	return result
}

// Engage resolves a full exchange: the attacker always strikes first, with
// the ambush flag applying only to that first strike. If the defender
// survives, it counter-attacks without ambush, since the defender now knows
// the attacker is there. Both results are combined in strike order.
//
// Precondition: attacker, defender, and src must be non-nil.
func Engage(attacker, defender Combatant, isAmbush bool, src roll.Source) CombatResult {
	result := ResolveAttack(attacker, defender, isAmbush, src)
	if defender.IsAlive() {
		result.Combine(ResolveAttack(defender, attacker, false, src))
	}
	return result
}
