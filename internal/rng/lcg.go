package rng

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// LCG is a linear congruential generator (Numerical Recipes constants).
// Given the same seed it always produces the same sequence, which is what makes shuffles reproducible.
type LCG struct {
	state uint32
}

// NewLCG returns a generator seeded with seed mod 2^32
func NewLCG(seed int64) *LCG {
	return &LCG{state: uint32(seed)}
}

// Next advances the generator and returns the new state
func (l *LCG) Next() uint32 {
	// uint32 arithmetic wraps, which is the mod 2^32
	l.state = lcgMultiplier*l.state + lcgIncrement
	return l.state
}

// Float64 returns a number in [0, 1)
func (l *LCG) Float64() float64 {
	return float64(l.Next()) / lcgModulus
}

// Intn returns a random number from 0 <= x < n
func (l *LCG) Intn(n int) int {
	if n <= 0 {
		panic("n must be > 0")
	}

	return int(l.Float64() * float64(n))
}
