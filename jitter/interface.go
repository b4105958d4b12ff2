// This package defines a [Sampler] interface that monologue
// presenters use to pick the extra delay added after each
// revealed character, and provides a few implementations.
//
// Each presenter owns its sampler. Samplers are not safe for
// concurrent use, so don't share them between presenters that
// are updated from different goroutines.
package jitter

// The interface for jitter samplers.
//
// Given an exclusive upper bound, Sample() returns a delay in
// milliseconds within [0, bound). A bound <= 0 must return 0.
type Sampler interface {
	Sample(bound int) int
}
