package progression

import "math/rand"

// Rand supplies the uniform random draws used by the mission selector.
// It is satisfied by *math/rand.Rand and kept injectable so selection is
// reproducible in tests.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a Rand backed by math/rand with the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
