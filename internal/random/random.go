package random

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
)

// Source yields the random draws game services need. Injectable so
// tests can fix outcomes deterministically.
type Source interface {
	// IntN returns a uniform int in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// cryptoSource draws from crypto/rand. It is the production Source;
// games must not be predictable from prior outcomes.
type cryptoSource struct{}

// NewCryptoSource returns the production crypto/rand-backed Source.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: IntN called with n=%d", n))
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader failing means the OS entropy source is
		// broken; there is no sensible recovery for a game server.
		panic(fmt.Sprintf("random: crypto source failed: %v", err))
	}
	return int(v.Int64())
}

func (cryptoSource) Float64() float64 {
	// 53 bits of precision, matching math/rand's Float64 contract.
	const mask = 1<<53 - 1
	v, err := crand.Int(crand.Reader, big.NewInt(mask+1))
	if err != nil {
		panic(fmt.Sprintf("random: crypto source failed: %v", err))
	}
	return float64(v.Int64()) / (mask + 1)
}

// IntInRange returns a uniform int in [min, max] from src.
func IntInRange(src Source, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min %d greater than max %d", min, max)
	}
	return src.IntN(max-min+1) + min, nil
}

// seededSource wraps math/rand/v2 for deterministic sequences.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a deterministic Source for tests and demos.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed))} //nolint:gosec // deterministic by design
}

func (s *seededSource) IntN(n int) int   { return s.rng.IntN(n) }
func (s *seededSource) Float64() float64 { return s.rng.Float64() }
