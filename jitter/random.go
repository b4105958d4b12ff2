package jitter

import (
	"math/rand/v2"
	"time"
)

// Uniform sampler backed by its own PCG source, so independent
// presenters never share random state.
type Random struct {
	rng *rand.Rand
}

// Creates a random sampler with a deterministic seed. Two samplers
// created with the same seed produce the same sequence.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9E37_79B9_7F4A_7C15))}
}

// Creates a random sampler seeded from the current time.
func NewRandomFromTime() *Random {
	return NewRandom(uint64(time.Now().UnixNano()))
}

func (self *Random) Sample(bound int) int {
	if bound <= 0 {
		return 0
	}
	if self.rng == nil { // zero value fallback
		self.rng = NewRandomFromTime().rng
	}
	return self.rng.IntN(bound)
}
