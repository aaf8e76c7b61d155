package combat

import "fmt"

// CombatResult accumulates the outcome of one attack or round: the ordered
// human-readable log lines, whether the defender was defeated, and the
// experience reward earned. Results are created per attack, combined by the
// round strategies, and consumed immediately by the caller; they are never
// persisted.
type CombatResult struct {
	Logs       []string
	Defeated   bool
	Experience int
}

// Log appends one log line.
//
// Postcondition: msg is the last entry of Logs.
func (r *CombatResult) Log(msg string) {
	r.Logs = append(r.Logs, msg)
}

// Logf appends one formatted log line.
func (r *CombatResult) Logf(format string, args ...any) {
	r.Logs = append(r.Logs, fmt.Sprintf(format, args...))
}

// Combine folds other into r: logs concatenate in order, Defeated is OR'd,
// Experience sums.
//
// Postcondition: len(r.Logs) == old len + len(other.Logs).
func (r *CombatResult) Combine(other CombatResult) {
	r.Logs = append(r.Logs, other.Logs...)
	r.Defeated = r.Defeated || other.Defeated
	r.Experience += other.Experience
}
