package windowing

import "math"

// bartlett is the triangular window peaking at size/2
func bartlett(location float64, size int) float64 {
	half := float64(size) / 2
	return 1 - 2*math.Abs(location-half)/float64(size)
}
