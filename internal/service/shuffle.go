package service

import "math/rand/v2"

// shuffleInPlace applies a Fisher-Yates shuffle, swapping from the last element
// down. intn must return a uniform value in [0, n).
func shuffleInPlace[T any](items []T, intn func(n int) int) {
	for i := len(items) - 1; i > 0; i-- {
		j := intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// randomIntn draws from the runtime's auto-seeded generator; the seed is never exposed.
func randomIntn(n int) int {
	return rand.IntN(n)
}
