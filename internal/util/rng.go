package util

import "math/rand"

// New returns a deterministic source; a zero seed is replaced by 1.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Pick returns a uniformly chosen index in [0, n), or -1 when n is zero.
// A nil rng always picks the first index.
func Pick(rng *rand.Rand, n int) int {
	if n <= 0 {
		return -1
	}
	if rng == nil || n == 1 {
		return 0
	}
	return rng.Intn(n)
}
