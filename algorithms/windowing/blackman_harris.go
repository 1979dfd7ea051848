package windowing

// blackmanHarris4 is the 4-term Blackman-Harris window (-92 dB sidelobes)
func blackmanHarris4(t float64) float64 {
	return cosineSum(t, 0.35875, -0.48829, 0.14128, -0.01168)
}

// blackmanHarris7 is the 7-term Blackman-Harris window
func blackmanHarris7(t float64) float64 {
	return cosineSum(t,
		0.27105140069342415,
		-0.433297939234486060,
		0.218122999543110620,
		-0.065925446388030898,
		0.010811742098372268,
		-7.7658482522509342e-4,
		1.3887217350903198e-5,
	)
}

// flatTop is the three term flat top window
func flatTop(t float64) float64 {
	return cosineSum(t, 0.2810639, -0.5208972, 0.1980399)
}
