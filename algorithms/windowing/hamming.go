package windowing

// hamming uses the optimal equiripple coefficients rather than 0.54/0.46
func hamming(t float64) float64 {
	return cosineSum(t, 0.53836, -0.46164)
}
