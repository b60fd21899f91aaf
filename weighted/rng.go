package weighted

import (
	"math/rand"

	rng "github.com/leesper/go_rng"
)

// RNG is the source of randomness used by Select.
type RNG interface {
	// Int63n returns a non-negative pseudo-random number in [0, n).
	Int63n(n int64) int64
}

type globalRNG struct{}

func (r *globalRNG) Int63n(n int64) int64 {
	return rand.Int63n(n)
}

type localRNG struct {
	localRand *rng.UniformGenerator
}

func newLocalRNG(seed int64) *localRNG {
	return &localRNG{
		localRand: rng.NewUniformGenerator(seed),
	}
}

func (r *localRNG) Int63n(n int64) int64 {
	return r.localRand.Int64n(n)
}
