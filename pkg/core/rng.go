package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the sequence from the provided seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Sign returns -1 or +1 with equal probability.
func (r *RNG) Sign() int {
	if r.Bool() {
		return 1
	}
	return -1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Range returns a random int in [lo, hi].
func (r *RNG) Range(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p >= 1 {
		return true
	}
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// ShuffleInts shuffles s in place.
func (r *RNG) ShuffleInts(s []int) {
	r.r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// Shuffle exposes the Fisher-Yates shuffle of the underlying source.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}
