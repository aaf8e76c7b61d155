// Package bestiary defines the monster roster of Mirefall: the closed set of
// monster kinds, their per-kind base stat tables, and the concrete Monster
// type that takes part in combat.
package bestiary

// Kind identifies one monster species.
type Kind int

const (
	Rat Kind = iota
	Snake
	Gnoll
	Crab
	Bat
	Scorpion
	Guard
	Warlock
	Golem
)

// String returns the display name used in combat log lines.
func (k Kind) String() string {
	switch k {
	case Rat:
		return "Rat"
	case Snake:
		return "Snake"
	case Gnoll:
		return "Gnoll"
	case Crab:
		return "Crab"
	case Bat:
		return "Bat"
	case Scorpion:
		return "Scorpion"
	case Guard:
		return "Guard"
	case Warlock:
		return "Warlock"
	case Golem:
		return "Golem"
	default:
		return "Unknown"
	}
}

// BaseStats holds the per-kind starting numbers. Balance follows the classic
// roguelike curve: early vermin are weak and inaccurate, late-depth guards
// and golems hit hard and soak damage.
type BaseStats struct {
	HP             int
	Attack         int
	Defense        int
	Experience     int
	Accuracy       int
	Evasion        int
	AttackRange    int
	DetectionRange int
}

// Stats returns the base stat block for k. Plain lookup table, one entry per
// kind; no inheritance games.
func Stats(k Kind) BaseStats {
	switch k {
	case Rat:
		return BaseStats{HP: 10, Attack: 4, Defense: 2, Experience: 2, Accuracy: 8, Evasion: 6, AttackRange: 1, DetectionRange: 5}
	case Snake:
		return BaseStats{HP: 12, Attack: 6, Defense: 3, Experience: 4, Accuracy: 10, Evasion: 12, AttackRange: 1, DetectionRange: 6}
	case Gnoll:
		return BaseStats{HP: 20, Attack: 8, Defense: 5, Experience: 6, Accuracy: 12, Evasion: 8, AttackRange: 1, DetectionRange: 6}
	case Crab:
		return BaseStats{HP: 25, Attack: 5, Defense: 10, Experience: 5, Accuracy: 9, Evasion: 5, AttackRange: 1, DetectionRange: 4}
	case Bat:
		return BaseStats{HP: 15, Attack: 10, Defense: 4, Experience: 3, Accuracy: 15, Evasion: 18, AttackRange: 1, DetectionRange: 8}
	case Scorpion:
		return BaseStats{HP: 22, Attack: 12, Defense: 8, Experience: 8, Accuracy: 13, Evasion: 10, AttackRange: 1, DetectionRange: 5}
	case Guard:
		return BaseStats{HP: 30, Attack: 12, Defense: 10, Experience: 10, Accuracy: 14, Evasion: 9, AttackRange: 1, DetectionRange: 7}
	case Warlock:
		return BaseStats{HP: 18, Attack: 15, Defense: 5, Experience: 12, Accuracy: 16, Evasion: 14, AttackRange: 3, DetectionRange: 8}
	case Golem:
		return BaseStats{HP: 50, Attack: 18, Defense: 15, Experience: 15, Accuracy: 10, Evasion: 4, AttackRange: 1, DetectionRange: 4}
	default:
		return BaseStats{HP: 1, Attack: 1, Defense: 0, Experience: 0, Accuracy: 1, Evasion: 1, AttackRange: 1, DetectionRange: 1}
	}
}

// State is a monster's current behavioral state. Transitions are driven by
// the external AI layer; combat only reads it.
type State int

const (
	Idle State = iota
	Alert
	Hostile
	Fleeing
	Sleeping
	Passive
)
