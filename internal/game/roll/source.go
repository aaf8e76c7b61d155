package roll

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, 1).
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
// It is safe for concurrent use.
//
// Postcondition: Every value returned by Float64 is in [0, 1).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Float64 returns a cryptographically secure random float64 in [0, 1).
//
// Panics with "roll: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("roll: crypto/rand failure: " + err.Error())
	}
	// 53 random mantissa bits, same construction math/rand uses.
	v := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(v) / (1 << 53)
}

// seededSource implements Source using a deterministic math/rand generator.
// It is NOT safe for concurrent use; each owner holds its own instance.
type seededSource struct {
	rng *mathrand.Rand
}

// NewSeeded returns a deterministic Source seeded with seed.
// Two sources with the same seed produce identical draw sequences, which is
// what makes combat replays and the scenario tests reproducible.
//
// Postcondition: Every value returned by Float64 is in [0, 1).
func NewSeeded(seed int64) Source {
	return &seededSource{rng: mathrand.New(mathrand.NewSource(seed))}
}

// Float64 returns the next deterministic float64 in [0, 1).
func (s *seededSource) Float64() float64 {
	return s.rng.Float64()
}
