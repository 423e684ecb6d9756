// Package rng provides the library's only source of randomness: uniform
// legal-move sampling for MCTS rollout. Production callers may seed from
// the system clock; tests pin a seed for determinism, per the Design
// Notes' "RNG: configurable seed" requirement.
package rng

import (
	"time"

	rng "github.com/leesper/go_rng"
	"golang.org/x/exp/rand"
)

// Random is the Go-native form of the spec's Random struct: a stateful
// uniform integer generator used by MCTS rollout to pick an unbiased
// legal move. It wraps go_rng's UniformGenerator, the same library the
// teacher pulls in for non-neural sampling needs.
type Random struct {
	gen *rng.UniformGenerator
}

// NewRandom builds a Random seeded with seed. Two Randoms built from the
// same seed produce the same sequence.
func NewRandom(seed int64) *Random {
	return &Random{gen: rng.NewUniformGenerator(seed)}
}

// NewRandomFromClock seeds from the system clock, for production use
// where reproducibility isn't required. The clock reading is first run
// through golang.org/x/exp/rand (the same source the teacher seeds its
// Dirichlet sampler from in mcts/tree.go). The seed depends only on that
// reading, so two calls that read the same clock value get the same
// sequence.
func NewRandomFromClock() *Random {
	clockSeed := rand.New(rand.NewSource(uint64(time.Now().UnixNano()))).Int63()
	return NewRandom(clockSeed)
}

// Intn returns a uniform random integer in [0, n). Panics if n <= 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(r.gen.Int64Range(0, int64(n)))
}
