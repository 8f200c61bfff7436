package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a deterministic generator
// If seed is 0, the current time is used
func NewSeeded(seed int64) Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// New returns a generator suitable for live games
// A non-zero seed produces a reproducible shuffle, otherwise crypto/rand is used
func New(seed int64) Generator {
	if seed != 0 {
		return NewSeeded(seed)
	}

	return Crypto{}
}
