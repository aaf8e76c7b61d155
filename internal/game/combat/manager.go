package combat

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mirefall/mirefall/internal/game/roll"
	"github.com/mirefall/mirefall/internal/game/vision"
)

// AttackParams bundles everything one exchange needs: the two combatants,
// their grid positions, the dungeon's blocked-tile predicate, and the
// attacker's field-of-view range. Blocked must stay pure for the duration of
// the exchange.
type AttackParams struct {
	Attacker  Combatant
	AttackerX int
	AttackerY int

	Defender  Combatant
	DefenderX int
	DefenderY int

	Blocked  vision.BlockedFunc
	FOVRange int
}

// AttackWithAmbush asks the vision system whether the attacker may ambush
// the defender from its position, then runs a full Engage with that flag.
//
// Precondition: p.Attacker, p.Defender, p.Blocked, and src must be non-nil.
func AttackWithAmbush(p AttackParams, src roll.Source) CombatResult {
	isAmbush := vision.CanAmbush(p.AttackerX, p.AttackerY, p.DefenderX, p.DefenderY, p.Blocked, p.FOVRange)
	return Engage(p.Attacker, p.Defender, isAmbush, src)
}

// Manager orchestrates multi-step combat exchanges for the turn scheduler.
// It composes the vision system and the attack formulas; all hit and damage
// math stays in the engine functions. Single-threaded by design: the turn
// scheduler issues one round at a time.
type Manager struct {
	logger *zap.Logger
	src    roll.Source
}

// NewManager creates a Manager rolling from src and logging to logger.
//
// Precondition: logger and src must be non-nil.
func NewManager(logger *zap.Logger, src roll.Source) *Manager {
	return &Manager{logger: logger, src: src}
}

// Round processes a standard combat round: a single ambush-aware exchange.
// Counter-attack semantics live inside Engage, so callers that want a
// one-sided strike use ResolveAttack directly instead.
//
// Precondition: p must carry non-nil combatants and Blocked.
func (m *Manager) Round(p AttackParams) CombatResult {
	result := AttackWithAmbush(p, m.src)
	m.logRound("standard", p, result)
	return result
}

// InitiativeRound processes a round where the designated attacker always
// acts first (a simplification; real agility-based ordering is a future
// extension), followed by an unconditional non-ambush counter from the
// defender if it survived the opening strike. Unlike Round, the counter is
// issued here rather than inside Engage, so exactly one strike flows in
// each direction.
//
// Precondition: p must carry non-nil combatants and Blocked.
func (m *Manager) InitiativeRound(p AttackParams) CombatResult {
	isAmbush := vision.CanAmbush(p.AttackerX, p.AttackerY, p.DefenderX, p.DefenderY, p.Blocked, p.FOVRange)
	result := ResolveAttack(p.Attacker, p.Defender, isAmbush, m.src)

	if p.Defender.IsAlive() {
		counter := ResolveAttack(p.Defender, p.Attacker, false, m.src)
		result.Combine(counter)
	}

	m.logRound("initiative", p, result)
	return result
}

// RangedRound processes a ranged attack. Before any attack math it validates
// range, then line of sight; either check failing short-circuits into a
// result holding only the explanatory log line, with no damage on either
// side. Range is checked before line of sight on purpose; that ordering is
// observable in the log output.
//
// Precondition: p must carry non-nil combatants and Blocked.
func (m *Manager) RangedRound(p AttackParams) CombatResult {
	var result CombatResult

	distance := vision.Distance(p.AttackerX, p.AttackerY, p.DefenderX, p.DefenderY)
	if distance > float64(p.Attacker.AttackDistance()) {
		result.Logf("%s is out of range for %s", p.Defender.Name(), p.Attacker.Name())
		m.logRound("ranged", p, result)
		return result
	}

	if !vision.Visible(p.AttackerX, p.AttackerY, p.DefenderX, p.DefenderY, p.Blocked) {
		result.Logf("No line of sight to %s", p.Defender.Name())
		m.logRound("ranged", p, result)
		return result
	}

	result = AttackWithAmbush(p, m.src)
	m.logRound("ranged", p, result)
	return result
}

// logRound emits one structured record per resolved round.
func (m *Manager) logRound(kind string, p AttackParams, r CombatResult) {
	m.logger.Debug("combat round resolved",
		zap.String("round_id", uuid.NewString()),
		zap.String("kind", kind),
		zap.String("attacker", p.Attacker.Name()),
		zap.String("defender", p.Defender.Name()),
		zap.Int("log_lines", len(r.Logs)),
		zap.Bool("defeated", r.Defeated),
		zap.Int("experience", r.Experience),
	)
}
