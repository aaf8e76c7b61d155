package bestiary

import (
	"github.com/mirefall/mirefall/internal/game/effect"
	"github.com/mirefall/mirefall/internal/game/item"
)

// Monster is a concrete dungeon inhabitant. It satisfies combat.Combatant
// and combat.ExperienceProvider, and exclusively owns its status-effect set.
type Monster struct {
	kind    Kind
	hp      int
	maxHP   int
	attack  int
	defense int
	exp     int

	accuracy    int
	evasion     int
	critBonus   float64
	attackRange int

	x, y  int
	state State

	weapon  *item.Weapon
	Effects *effect.Set
}

// NewMonster creates a monster of the given kind at (x, y) with its base
// stat block and an empty effect set.
//
// Postcondition: HP() == MaxHP(); IsAlive() is true; Effects is non-nil.
func NewMonster(kind Kind, x, y int) *Monster {
	base := Stats(kind)
	return &Monster{
		kind:        kind,
		hp:          base.HP,
		maxHP:       base.HP,
		attack:      base.Attack,
		defense:     base.Defense,
		exp:         base.Experience,
		accuracy:    base.Accuracy,
		evasion:     base.Evasion,
		attackRange: base.AttackRange,
		x:           x,
		y:           y,
		state:       Idle,
		Effects:     effect.NewSet(),
	}
}

// WithWeapon equips w and returns the monster for chained construction.
func (m *Monster) WithWeapon(w *item.Weapon) *Monster {
	m.weapon = w
	return m
}

// WithCritBonus sets the additive critical chance and returns the monster.
func (m *Monster) WithCritBonus(bonus float64) *Monster {
	m.critBonus = bonus
	return m
}

// Kind returns the monster's species.
func (m *Monster) Kind() Kind { return m.kind }

// Position returns the monster's grid coordinates.
func (m *Monster) Position() (int, int) { return m.x, m.y }

// MoveTo places the monster at (x, y). Pathing rules are the caller's
// problem; combat only needs positions for vision checks.
func (m *Monster) MoveTo(x, y int) {
	m.x = x
	m.y = y
}

// State returns the current behavioral state.
func (m *Monster) State() State { return m.state }

// SetState transitions the monster to s.
func (m *Monster) SetState(s State) { m.state = s }

// DetectionRange returns how far the monster notices intruders, in tiles.
func (m *Monster) DetectionRange() int { return Stats(m.kind).DetectionRange }

// HP returns current hit points.
func (m *Monster) HP() int { return m.hp }

// MaxHP returns the hit point ceiling.
func (m *Monster) MaxHP() int { return m.maxHP }

// AttackPower returns base attack plus any weapon damage bonus.
func (m *Monster) AttackPower() int {
	if m.weapon != nil {
		return m.attack + m.weapon.DamageBonus
	}
	return m.attack
}

// Defense returns the mitigation stat.
func (m *Monster) Defense() int { return m.defense }

// Accuracy returns base accuracy plus any weapon accuracy bonus.
func (m *Monster) Accuracy() int {
	if m.weapon != nil {
		return m.accuracy + m.weapon.AccuracyBonus
	}
	return m.accuracy
}

// Evasion returns the dodge stat.
func (m *Monster) Evasion() int { return m.evasion }

// CritBonus returns the additive critical-hit probability.
func (m *Monster) CritBonus() float64 { return m.critBonus }

// Weapon returns the wielded weapon, or nil when unarmed.
func (m *Monster) Weapon() *item.Weapon { return m.weapon }

// IsAlive reports whether the monster has hit points left.
func (m *Monster) IsAlive() bool { return m.hp > 0 }

// Name returns the species display name.
func (m *Monster) Name() string { return m.kind.String() }

// AttackDistance returns the weapon range when armed, otherwise the
// species' natural reach.
func (m *Monster) AttackDistance() int {
	if m.weapon != nil {
		return m.weapon.EffectiveRange()
	}
	return m.attackRange
}

// ExperienceValue returns the reward for the killing blow.
func (m *Monster) ExperienceValue() int { return m.exp }

// TakeDamage reduces HP by amount, flooring at 0, and reports whether the
// monster survived. Negative amounts are treated as 0.
//
// Postcondition: 0 <= HP() <= MaxHP().
func (m *Monster) TakeDamage(amount int) bool {
	if amount > 0 {
		m.hp -= amount
		if m.hp < 0 {
			m.hp = 0
		}
	}
	return m.IsAlive()
}

// Heal restores HP by amount, capping at MaxHP. Negative amounts are
// treated as 0.
//
// Postcondition: 0 <= HP() <= MaxHP().
func (m *Monster) Heal(amount int) {
	if amount > 0 {
		m.hp += amount
		if m.hp > m.maxHP {
			m.hp = m.maxHP
		}
	}
}
