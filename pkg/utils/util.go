package utils

import "math/rand"

// SampleDistinct draws n distinct elements uniformly without replacement
// from set. n must not exceed len(set); the engine validates gene-set sizes
// before sampling.
func SampleDistinct[T any](rng *rand.Rand, set []T, n int) []T {
	perm := rng.Perm(len(set))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = set[perm[i]]
	}
	return out
}

// Dedupe returns the distinct elements of set, preserving first-seen order.
func Dedupe[T comparable](set []T) []T {
	seen := make(map[T]struct{}, len(set))
	out := make([]T, 0, len(set))
	for _, v := range set {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
