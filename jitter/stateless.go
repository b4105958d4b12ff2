package jitter

type sampler = Sampler

// A few stateless built-in samplers.
var (
	// Sample(...) always returns 0.
	None sampler = noneSampler{}

	// Sample(...) always returns bound - 1, the slowest
	// possible pacing. Mostly useful for tests.
	Max sampler = maxSampler{}
)

type noneSampler struct{}

func (noneSampler) Sample(bound int) int {
	return 0
}

type maxSampler struct{}

func (maxSampler) Sample(bound int) int {
	if bound <= 0 {
		return 0
	}
	return bound - 1
}
