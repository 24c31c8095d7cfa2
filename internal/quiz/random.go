package quiz

import "math/rand"

// Random is the source of every random choice the quiz makes.
// *rand.Rand satisfies it, which lets tests use a fixed seed.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int                     { return rand.Intn(n) }
func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRandom returns a Random backed by the package-level math/rand
// functions, which are safe for concurrent use.
func DefaultRandom() Random {
	return globalRandom{}
}
