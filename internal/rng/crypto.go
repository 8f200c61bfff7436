package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand
type Crypto struct{}

// Intn returns a random number in [0, n)
// Panics if n <= 0, matching math/rand
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
