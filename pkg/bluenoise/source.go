package bluenoise

import "math"

// Source is the randomness consumed by the generator. *math/rand.Rand
// satisfies it.
type Source interface {
	// Intn returns a value uniformly in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Float64 returns a value uniformly in [0, 1).
	Float64() float64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// lcg48 is the 48-bit linear congruential generator of drand48. The zero
// value is valid but every generator should come from NewSource.
type lcg48 struct {
	state uint64
}

// NewSource returns the pinned generator used by New. Its output for a
// given seed never changes between Go releases or platforms.
func NewSource(seed int64) Source {
	return &lcg48{state: (uint64(seed) ^ lcgMultiplier) & lcgMask}
}

// next advances the state and returns its top n bits.
func (g *lcg48) next(n uint) int32 {
	g.state = (g.state*lcgMultiplier + lcgAddend) & lcgMask
	return int32(g.state >> (48 - n))
}

// Intn returns an int uniformly in [0, n). n must fit in 31 bits.
func (g *lcg48) Intn(n int) int {
	if n <= 0 || n > math.MaxInt32 {
		panic("invalid argument to Intn")
	}
	bound := int32(n)
	m := bound - 1

	r := g.next(31)
	if bound&m == 0 {
		return int((int64(bound) * int64(r)) >> 31)
	}

	// reject the top partial bucket so every residue is equally likely;
	// the sum overflows to negative exactly when u falls in it
	u := r
	for r = u % bound; u-r+m < 0; r = u % bound {
		u = g.next(31)
	}
	return int(r)
}

// Float64 returns a float uniformly in [0, 1) built from 53 random bits.
func (g *lcg48) Float64() float64 {
	hi := int64(g.next(26))
	lo := int64(g.next(27))
	return float64(hi<<27+lo) / (1 << 53)
}
