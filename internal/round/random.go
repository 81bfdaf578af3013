package round

import "math/rand"

// RandomSource feeds the two stochastic parts of a round: frightened ghost
// targets and pellet score popups. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom returns a seeded source.
func NewRandom(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
