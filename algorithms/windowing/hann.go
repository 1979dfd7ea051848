package windowing

import "math"

// hann is the raised cosine 0.5*(1 - cos(2t))
func hann(t float64) float64 {
	return 0.5 * (1.0 - math.Cos(2*t))
}

// bartlettHann blends a linear ramp with a Hann-like cosine term.
// The linear term is signed, so the shape is not symmetric about the center.
func bartlettHann(location float64, size int, t float64) float64 {
	return 0.62 - 0.48*(location/float64(size)-0.5) - 0.38*math.Cos(2*t)
}
