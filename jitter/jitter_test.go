package jitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatelessSamplers(t *testing.T) {
	assert.Equal(t, 0, None.Sample(10))
	assert.Equal(t, 0, None.Sample(0))
	assert.Equal(t, 9, Max.Sample(10))
	assert.Equal(t, 0, Max.Sample(1))
	assert.Equal(t, 0, Max.Sample(0))
	assert.Equal(t, 0, Max.Sample(-3))
}

func TestRandomWithinBounds(t *testing.T) {
	sampler := NewRandom(42)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		value := sampler.Sample(7)
		assert.GreaterOrEqual(t, value, 0)
		assert.Less(t, value, 7)
		seen[value] = true
	}
	assert.Len(t, seen, 7, "every value in [0, 7) should show up")
}

func TestRandomNonPositiveBound(t *testing.T) {
	sampler := NewRandom(1)
	assert.Equal(t, 0, sampler.Sample(0))
	assert.Equal(t, 0, sampler.Sample(-10))
}

func TestRandomDeterministicSeed(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Sample(1000), b.Sample(1000))
	}
}

func TestRandomZeroValue(t *testing.T) {
	var sampler Random
	value := sampler.Sample(5)
	assert.GreaterOrEqual(t, value, 0)
	assert.Less(t, value, 5)
}
