// Package shuffle provides a non-mutating uniform permutation helper.
package shuffle

import "math/rand"

// Shuffle returns a new slice holding every element of in exactly once,
// in a uniformly random order (Fisher-Yates). The input is never
// mutated. A nil rng uses the process-wide source; pass a seeded
// *rand.Rand for deterministic output.
func Shuffle[T any](in []T, rng *rand.Rand) []T {
	out := make([]T, len(in))
	copy(out, in)

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
