package windowing

import (
	"fmt"
	"math"
)

// Normalize rescales a window so that copies shifted by step have constant
// summed energy: for every q, sum over h of w[q+h*step]^2 equals 1.
// This is the overlap-add reconstruction condition for the given step.
// The input slice is left untouched.
func Normalize(window []float64, step int) ([]float64, error) {
	size := len(window)
	if size == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if step < 1 || step > size {
		return nil, fmt.Errorf("%w: step %d for size %d", ErrInvalidStep, step, size)
	}

	normalized := make([]float64, size)
	for q := range size {
		normalized[q] = window[q] / math.Sqrt(overlapEnergy(window, q, step))
	}

	return normalized, nil
}

// OverlapEnergy returns the energy seen at index q when copies of window
// are laid out every step samples
func OverlapEnergy(window []float64, q, step int) float64 {
	if q < 0 || q >= len(window) || step < 1 {
		return 0
	}
	return overlapEnergy(window, q, step)
}

func overlapEnergy(window []float64, q, step int) float64 {
	energy := 0.0
	for h := q; h >= 0; h -= step {
		energy += window[h] * window[h]
	}
	for h := q + step; h < len(window); h += step {
		energy += window[h] * window[h]
	}
	return energy
}
