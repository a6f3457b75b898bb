package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a deterministic generator
// Two generators with the same seed produce the same sequence, which makes shuffles replayable.
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
