package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is an unseeded source backed by crypto/rand
// Use it where results must not be reproducible, such as bot decisions and display names.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("n must be > 0")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
