package spectral

import (
	"fmt"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
)

// sampleScale matches the 8-bit scale the denoiser runs its transforms on
const sampleScale = 255.0

// HalfSpectrum computes the N-dimensional DFT of real data with the given
// shape and keeps the non-negative frequencies of the last axis, flattened
// row-major. The forward transform is unnormalized.
func HalfSpectrum(data []float64, shape []int) ([]complex128, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("empty shape")
	}

	total := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("invalid dimension %d in shape %v", d, shape)
		}
		total *= d
	}
	if len(data) != total {
		return nil, fmt.Errorf("data length (%d) doesn't match shape %v", len(data), shape)
	}

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	spectrum := fft.FFTN(dsputils.MakeMatrix(dsputils.ToComplex(data), shape))

	last := shape[len(shape)-1]
	half := last/2 + 1
	outer := total / last

	result := make([]complex128, 0, outer*half)
	index := make([]int, len(shape))
	for o := range outer {
		// unravel the outer index into all but the last dimension
		rem := o
		for d := len(shape) - 2; d >= 0; d-- {
			index[d] = rem % shape[d]
			rem /= shape[d]
		}
		for x := range half {
			index[len(shape)-1] = x
			result = append(result, spectrum.Value(index))
		}
	}

	return result, nil
}

// WindowSpectrum returns the half-spectrum of a window scaled to the
// 8-bit sample range. Zero-mean filtering subtracts a multiple of it
// from each block spectrum before the gain is applied.
func WindowSpectrum(coefficients []float64, shape []int) ([]complex128, error) {
	scaled := make([]float64, len(coefficients))
	for i, c := range coefficients {
		scaled[i] = c * sampleScale
	}
	return HalfSpectrum(scaled, shape)
}

// RemoveMean subtracts the window spectrum weighted by the block's DC
// ratio and returns that weight so AddMean can restore it
func RemoveMean(block, windowSpectrum []complex128) (float64, error) {
	if len(block) != len(windowSpectrum) {
		return 0, fmt.Errorf("block length (%d) doesn't match window spectrum length (%d)", len(block), len(windowSpectrum))
	}
	if len(block) == 0 || real(windowSpectrum[0]) == 0 {
		return 0, nil
	}

	gf := real(block[0]) / real(windowSpectrum[0])
	for i, w := range windowSpectrum {
		block[i] -= complex(gf, 0) * w
	}

	return gf, nil
}

// AddMean adds back the weighted window spectrum removed by RemoveMean
func AddMean(block, windowSpectrum []complex128, gf float64) error {
	if len(block) != len(windowSpectrum) {
		return fmt.Errorf("block length (%d) doesn't match window spectrum length (%d)", len(block), len(windowSpectrum))
	}

	for i, w := range windowSpectrum {
		block[i] += complex(gf, 0) * w
	}

	return nil
}
