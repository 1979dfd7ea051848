package windowing

import "math"

const (
	besselMaxTerms  = 15
	besselTolerance = 1e-8
)

// kaiser evaluates the Kaiser-Bessel window I0(pi*beta*sqrt(1-v^2)) / I0(pi*beta)
// with v running from -1 to 1 across the window.
func kaiser(location float64, size int, beta float64) float64 {
	v := 2*location/float64(size) - 1
	return besselI0(math.Pi*beta*math.Sqrt(1-v*v)) / besselI0(math.Pi*beta)
}

// besselI0 computes the zero-order modified Bessel function of the first kind
// from the series sum(((x/2)^k / k!)^2). The series is cut after the
// term index reaches besselMaxTerms or a term drops to besselTolerance.
func besselI0(x float64) float64 {
	half := x / 2

	numerator := 1.0
	denominator := 1.0
	sum := 1.0

	for k := 1; ; k++ {
		numerator *= half
		denominator *= float64(k)
		term := numerator / denominator
		sum += term * term

		if k+1 >= besselMaxTerms || term <= besselTolerance {
			break
		}
	}

	return sum
}
