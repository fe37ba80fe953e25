package tomb

import (
	"fmt"
	"math/bits"
)

// Rand is a small, fast, seedable pseudo-random generator implementing the
// wyrand algorithm with unbiased bounded reduction.
//
// Its output for a given seed is stable across runs and platforms, which is
// what makes the documented roll examples reproducible byte for byte. It is
// not cryptographically secure; use NewSeed only to pick seeds.
//
// Rand satisfies Source. It is not safe for concurrent use.
type Rand struct {
	state uint64
}

// NewRand creates a generator with the given seed.
func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

// Uint64 returns the next value in the generator's sequence.
func (r *Rand) Uint64() uint64 {
	r.state += 0xa0761d6478bd642f
	hi, lo := bits.Mul64(r.state, r.state^0xe7037ed1a0b428db)
	return hi ^ lo
}

// IntN returns a uniformly distributed integer in [0, n).
//
// It panics if n is not positive. Bias from the 64-bit reduction is removed
// by rejection sampling (Lemire's method), so every value in [0, n) is
// exactly equally likely.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("tomb: IntN called with n = %d", n))
	}
	un := uint64(n)
	v := r.Uint64()
	hi, lo := bits.Mul64(v, un)
	if lo < un {
		threshold := -un % un
		for lo < threshold {
			v = r.Uint64()
			hi, lo = bits.Mul64(v, un)
		}
	}
	return int(hi)
}

var _ Source = (*Rand)(nil)
