package common

// Lerp blends a and b, returning a at weight 0 and b at weight 1.
// Weights outside [0, 1] extrapolate along the same line.
func Lerp(a, b, weight float64) float64 {
	return (1-weight)*a + weight*b
}

// InverseLerp returns the weight at which x sits between x0 and x1.
// A zero-width interval maps to weight 0.
func InverseLerp(x0, x1, x float64) float64 {
	if x1 == x0 {
		return 0
	}
	return (x - x0) / (x1 - x0)
}
