package physics

import (
	"errors"
	"math/rand"
)

// ErrUngenerateablePosition is returned when no value outside the excluded
// range could be sampled within the retry budget.
var ErrUngenerateablePosition = errors.New("physics: ungenerateable position")

// DefaultMaxAttempts bounds rejection sampling in RandomBetweenExcluding.
const DefaultMaxAttempts = 100

// RandomBetween returns a uniformly distributed value in [min, max).
func RandomBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandomBetweenExcluding samples [min, max) while rejecting values strictly
// inside (exMin, exMax). It gives up after maxAttempts draws, or immediately
// when the excluded range covers the whole interval.
func RandomBetweenExcluding(rng *rand.Rand, min, max, exMin, exMax float64, maxAttempts int) (float64, error) {
	if exMin <= min && exMax >= max {
		return 0, ErrUngenerateablePosition
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for i := 0; i < maxAttempts; i++ {
		v := RandomBetween(rng, min, max)
		if v <= exMin || v >= exMax {
			return v, nil
		}
	}
	return 0, ErrUngenerateablePosition
}
