package sigma

// Location folds a bin or sample index into its normalized distance from
// DC in [0, 1]. Indices past the midpoint mirror back, so for length 16
// both 1 and 15 map to 0.125. The midpoint is length/2 rounded down.
func Location(position float64, length int) float64 {
	if length == 1 {
		return 0.0
	}

	half := float64(length / 2)
	if position > half {
		return (float64(length) - position) / half
	}
	return position / half
}

// Sigma evaluates curve at the folded location of position. An axis of
// length 1 carries no frequency information and always yields 1.
func Sigma(position float64, length int, curve Curve) (float64, error) {
	if length == 1 {
		return 1.0, nil
	}
	return curve.At(Location(position, length))
}
