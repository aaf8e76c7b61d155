package combat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mirefall/mirefall/internal/game/combat"
	"github.com/mirefall/mirefall/internal/game/item"
	"github.com/mirefall/mirefall/internal/game/roll"
)

// scriptSrc replays a fixed sequence of draws, cycling when exhausted,
// enabling deterministic formula tests.
type scriptSrc struct {
	values []float64
	i      int
}

func (s *scriptSrc) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// testCombatant is a plain Combatant with no experience reward.
type testCombatant struct {
	name       string
	hp, maxHP  int
	attack     int
	defense    int
	accuracy   int
	evasion    int
	critBonus  float64
	attackDist int
	weapon     *item.Weapon
}

func newTestCombatant(name string) *testCombatant {
	return &testCombatant{
		name:       name,
		hp:         100,
		maxHP:      100,
		attack:     10,
		defense:    5,
		accuracy:   80,
		evasion:    20,
		critBonus:  0.1,
		attackDist: 1,
	}
}

func (c *testCombatant) HP() int              { return c.hp }
func (c *testCombatant) MaxHP() int           { return c.maxHP }
func (c *testCombatant) AttackPower() int     { return c.attack }
func (c *testCombatant) Defense() int         { return c.defense }
func (c *testCombatant) Accuracy() int        { return c.accuracy }
func (c *testCombatant) Evasion() int         { return c.evasion }
func (c *testCombatant) CritBonus() float64   { return c.critBonus }
func (c *testCombatant) Weapon() *item.Weapon { return c.weapon }
func (c *testCombatant) IsAlive() bool        { return c.hp > 0 }
func (c *testCombatant) Name() string         { return c.name }
func (c *testCombatant) AttackDistance() int  { return c.attackDist }

func (c *testCombatant) TakeDamage(amount int) bool {
	if amount > 0 {
		c.hp -= amount
		if c.hp < 0 {
			c.hp = 0
		}
	}
	return c.IsAlive()
}

func (c *testCombatant) Heal(amount int) {
	if amount > 0 {
		c.hp += amount
		if c.hp > c.maxHP {
			c.hp = c.maxHP
		}
	}
}

// rewardCombatant additionally grants experience on death.
type rewardCombatant struct {
	*testCombatant
	exp int
}

func (c *rewardCombatant) ExperienceValue() int { return c.exp }

func TestHitChance(t *testing.T) {
	tests := []struct {
		name     string
		accuracy int
		evasion  int
		want     float64
	}{
		{"even stats give base chance", 20, 20, 0.8},
		{"accuracy edge shifts up", 22, 20, 0.9},
		{"evasion edge shifts down", 20, 26, 0.5},
		{"clamps at ceiling", 100, 0, 0.95},
		{"clamps at floor", 0, 100, 0.05},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			attacker := newTestCombatant("Attacker")
			attacker.accuracy = tc.accuracy
			defender := newTestCombatant("Defender")
			defender.evasion = tc.evasion
			assert.InDelta(t, tc.want, combat.HitChance(attacker, defender), 1e-9)
		})
	}
}

func TestHitChance_Property_AlwaysClamped(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		attacker := newTestCombatant("Attacker")
		attacker.accuracy = rapid.IntRange(0, 1000).Draw(rt, "accuracy")
		defender := newTestCombatant("Defender")
		defender.evasion = rapid.IntRange(0, 1000).Draw(rt, "evasion")

		chance := combat.HitChance(attacker, defender)
		assert.GreaterOrEqual(rt, chance, combat.MinHitChance)
		assert.LessOrEqual(rt, chance, combat.MaxHitChance)
	})
}

func TestDamage_Deterministic(t *testing.T) {
	// variance draw 0.5 lands exactly in the middle of [0.8, 1.2): x1.0.
	// attack 10 vs defense 5 mitigates by 5/(5+5) = 50%.
	attacker := newTestCombatant("Attacker")
	defender := newTestCombatant("Defender")

	tests := []struct {
		name   string
		crit   bool
		ambush bool
		want   int
	}{
		{"plain", false, false, 5},
		{"critical", true, false, 7},   // 10 * 1.5 * 0.5 = 7.5 → 7
		{"ambush", false, true, 10},    // 10 * 2.0 * 0.5
		{"both", true, true, 15},       // 10 * 1.5 * 2.0 * 0.5
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptSrc{values: []float64{0.5}}
			assert.Equal(t, tc.want, combat.Damage(attacker, defender, tc.crit, tc.ambush, src))
		})
	}
}

func TestDamage_AmbushExactlyDoubles(t *testing.T) {
	// Zero defense so mitigation cannot blur the comparison; the same
	// variance draw makes the two rolls otherwise identical.
	attacker := newTestCombatant("Attacker")
	defender := newTestCombatant("Defender")
	defender.defense = 0

	plain := combat.Damage(attacker, defender, false, false, &scriptSrc{values: []float64{0.5}})
	ambush := combat.Damage(attacker, defender, false, true, &scriptSrc{values: []float64{0.5}})
	assert.Equal(t, 2*plain, ambush)
}

func TestDamage_MitigationNeverExceedsCap(t *testing.T) {
	// Absurd defense still leaves 20% of the raw roll.
	attacker := newTestCombatant("Attacker")
	attacker.attack = 100
	defender := newTestCombatant("Defender")
	defender.defense = 1_000_000

	src := &scriptSrc{values: []float64{0.5}} // variance x1.0
	assert.Equal(t, 20, combat.Damage(attacker, defender, false, false, src))
}

func TestDamage_FloorsAtMinimum(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.attack = 1
	defender := newTestCombatant("Defender")
	defender.defense = 1000

	src := &scriptSrc{values: []float64{0.0}} // variance x0.8
	assert.Equal(t, combat.MinDamage, combat.Damage(attacker, defender, false, false, src))
}

func TestDamage_Property_AtLeastMinimum(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		attacker := newTestCombatant("Attacker")
		attacker.attack = rapid.IntRange(0, 500).Draw(rt, "attack")
		defender := newTestCombatant("Defender")
		defender.defense = rapid.IntRange(0, 500).Draw(rt, "defense")
		crit := rapid.Bool().Draw(rt, "crit")
		ambush := rapid.Bool().Draw(rt, "ambush")
		src := roll.NewSeeded(rapid.Int64().Draw(rt, "seed"))

		dmg := combat.Damage(attacker, defender, crit, ambush, src)
		assert.GreaterOrEqual(rt, dmg, combat.MinDamage)
	})
}

func TestDamage_VarianceBandScenario(t *testing.T) {
	// attack 10, defense 5, no crit/ambush: mitigated damage lies in
	// [10*0.8*0.5, 10*1.2*0.5] = [4, 6] before truncation.
	attacker := newTestCombatant("Attacker")
	defender := newTestCombatant("Defender")
	src := roll.NewSeeded(42)

	for i := 0; i < 1000; i++ {
		dmg := combat.Damage(attacker, defender, false, false, src)
		require.GreaterOrEqual(t, dmg, 4)
		require.LessOrEqual(t, dmg, 6)
	}
}

func TestResolveAttack_Hit(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.critBonus = -combat.BaseCritChance // crit chance 0: no crit, no draw
	defender := newTestCombatant("Defender")

	src := &scriptSrc{values: []float64{0.0, 0.5}} // hit, variance x1.0
	result := combat.ResolveAttack(attacker, defender, false, src)

	require.Len(t, result.Logs, 1)
	assert.Equal(t, "Attacker hits for 5 damage!", result.Logs[0])
	assert.Equal(t, 95, defender.HP())
	assert.False(t, result.Defeated)
	assert.Zero(t, result.Experience)
}

func TestResolveAttack_Miss(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.accuracy = 100
	defender := newTestCombatant("Defender")
	defender.evasion = 0

	// Hit chance clamps to 0.95; a 0.96 draw misses.
	src := &scriptSrc{values: []float64{0.96}}
	result := combat.ResolveAttack(attacker, defender, false, src)

	require.Len(t, result.Logs, 1)
	assert.Equal(t, "Attacker misses Defender!", result.Logs[0])
	assert.Equal(t, 100, defender.HP())
	assert.False(t, result.Defeated)
}

func TestResolveAttack_Critical(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.critBonus = 0.9 // crit chance 1.0: certain crit, no draw
	defender := newTestCombatant("Defender")

	src := &scriptSrc{values: []float64{0.0, 0.5}} // hit, variance x1.0
	result := combat.ResolveAttack(attacker, defender, false, src)

	require.Len(t, result.Logs, 1)
	assert.Equal(t, "Critical hit! Attacker deals 7 damage!", result.Logs[0])
	assert.Equal(t, 93, defender.HP())
}

func TestResolveAttack_AmbushTag(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.critBonus = -combat.BaseCritChance
	defender := newTestCombatant("Defender")

	src := &scriptSrc{values: []float64{0.0, 0.5}}
	result := combat.ResolveAttack(attacker, defender, true, src)

	require.Len(t, result.Logs, 1)
	assert.Contains(t, result.Logs[0], "Ambush!")
	assert.Contains(t, result.Logs[0], "2x damage bonus")
	assert.Equal(t, 90, defender.HP())
}

func TestResolveAttack_DefeatCollectsExperience(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.critBonus = -combat.BaseCritChance
	defender := &rewardCombatant{testCombatant: newTestCombatant("Defender"), exp: 12}
	defender.hp = 3
	defender.defense = 0

	src := &scriptSrc{values: []float64{0.0, 0.5}} // 10 damage, lethal
	result := combat.ResolveAttack(attacker, defender, false, src)

	require.Len(t, result.Logs, 2)
	assert.Equal(t, "Attacker defeated Defender!", result.Logs[1])
	assert.True(t, result.Defeated)
	assert.Equal(t, 12, result.Experience)
	assert.False(t, defender.IsAlive())
}

func TestResolveAttack_NoRewardWithoutProvider(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.critBonus = -combat.BaseCritChance
	defender := newTestCombatant("Defender")
	defender.hp = 1
	defender.defense = 0

	src := &scriptSrc{values: []float64{0.0, 0.5}}
	result := combat.ResolveAttack(attacker, defender, false, src)

	assert.True(t, result.Defeated)
	assert.Zero(t, result.Experience)
}

func TestEngage_AmbushFirstThenPlainCounter(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.critBonus = -combat.BaseCritChance
	defender := newTestCombatant("Defender")
	defender.critBonus = -combat.BaseCritChance

	// Draws: attacker hit + variance, defender hit + variance.
	src := &scriptSrc{values: []float64{0.0, 0.5, 0.0, 0.5}}
	result := combat.Engage(attacker, defender, true, src)

	require.Len(t, result.Logs, 2)
	assert.Contains(t, result.Logs[0], "Ambush!")
	assert.Equal(t, "Defender hits for 5 damage!", result.Logs[1])
	assert.Equal(t, 90, defender.HP())
	assert.Equal(t, 95, attacker.HP())
}

func TestEngage_NoCounterFromTheDead(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.critBonus = -combat.BaseCritChance
	defender := newTestCombatant("Defender")
	defender.hp = 1
	defender.defense = 0

	src := &scriptSrc{values: []float64{0.0, 0.5}}
	result := combat.Engage(attacker, defender, false, src)

	require.Len(t, result.Logs, 2) // hit line + defeat line, no counter
	assert.True(t, result.Defeated)
	assert.Equal(t, 100, attacker.HP())
}

func TestResolveAttack_Scenario_HighAccuracyAlmostAlwaysHits(t *testing.T) {
	attacker := newTestCombatant("Attacker")
	attacker.accuracy = 100
	attacker.critBonus = -combat.BaseCritChance
	defender := newTestCombatant("Defender")
	defender.evasion = 0
	defender.maxHP = 1 << 30
	defender.hp = defender.maxHP

	src := roll.NewSeeded(7)
	hits := 0
	const attempts = 2000
	for i := 0; i < attempts; i++ {
		result := combat.ResolveAttack(attacker, defender, false, src)
		if !strings.Contains(result.Logs[0], "misses") {
			hits++
		}
	}
	// Hit chance clamps to 0.95; allow slack for sampling noise.
	assert.Greater(t, hits, attempts*9/10)
	assert.Less(t, hits, attempts)
}

func TestIsRanged(t *testing.T) {
	melee := newTestCombatant("Melee")
	assert.False(t, combat.IsRanged(melee))

	archer := newTestCombatant("Archer")
	archer.attackDist = 3
	assert.True(t, combat.IsRanged(archer))
}

func TestCombatResult_Combine(t *testing.T) {
	a := combat.CombatResult{Logs: []string{"first"}, Experience: 3}
	b := combat.CombatResult{Logs: []string{"second", "third"}, Defeated: true, Experience: 4}
	a.Combine(b)

	assert.Equal(t, []string{"first", "second", "third"}, a.Logs)
	assert.True(t, a.Defeated)
	assert.Equal(t, 7, a.Experience)
}

func TestCombatResult_Combine_Property_LogOrderPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		first := rapid.SliceOf(rapid.String()).Draw(rt, "first")
		second := rapid.SliceOf(rapid.String()).Draw(rt, "second")

		a := combat.CombatResult{Logs: append([]string(nil), first...)}
		b := combat.CombatResult{Logs: append([]string(nil), second...)}
		a.Combine(b)

		require.Len(rt, a.Logs, len(first)+len(second))
		for i, l := range first {
			assert.Equal(rt, l, a.Logs[i])
		}
		for i, l := range second {
			assert.Equal(rt, l, a.Logs[len(first)+i])
		}
	})
}
