package windowing

// blackman is the classic three term Blackman window
func blackman(t float64) float64 {
	return cosineSum(t, 0.42, -0.5, 0.08)
}

// nuttall is the four term Nuttall window with continuous first derivative
func nuttall(t float64) float64 {
	return cosineSum(t, 0.355768, -0.487396, 0.144232, -0.012604)
}

// blackmanNuttall is the four term Blackman-Nuttall window
func blackmanNuttall(t float64) float64 {
	return cosineSum(t, 0.3635819, -0.4891775, 0.1365995, -0.0106411)
}
