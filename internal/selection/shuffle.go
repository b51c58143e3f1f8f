package selection

import "math/rand"

// Shuffle permutes items in place using the Fisher-Yates algorithm: walk
// from the last index down and swap each element with a uniformly random
// earlier one (or itself). Every permutation is equally likely and the
// whole pass is linear.
func Shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffled returns a shuffled copy, leaving the input untouched.
func Shuffled[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	Shuffle(out)
	return out
}
