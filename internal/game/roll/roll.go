// Package roll provides the randomness abstraction for the Mirefall combat
// engine. Every stochastic formula draws from an explicit Source so that
// combat outcomes are reproducible under a seeded source.
package roll

// Source is the randomness provider for combat rolls.
type Source interface {
	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

// Chance draws one Bernoulli sample with probability p.
// p is clamped to [0, 1] before sampling.
//
// Precondition: src must be non-nil.
// Postcondition: Returns true with probability clamp(p, 0, 1).
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// Between returns a uniformly distributed float64 in [lo, hi).
//
// Precondition: src must be non-nil; lo <= hi.
// Postcondition: lo <= result < hi (result == lo when lo == hi).
func Between(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}
