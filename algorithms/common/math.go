package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Energy returns the sum of squares of data, the wscale of a window
func Energy(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Dot(data, data)
}

// Scaled returns a copy of data multiplied by factor
func Scaled(data []float64, factor float64) []float64 {
	scaled := make([]float64, len(data))
	copy(scaled, data)
	floats.Scale(factor, scaled)
	return scaled
}

// AllFinite reports whether every value is neither NaN nor infinite
func AllFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Summary holds descriptive statistics of a table of values
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes descriptive statistics using gonum
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(data),
		Min:   floats.Min(data),
		Max:   floats.Max(data),
		Mean:  stat.Mean(data, nil),
	}
	if len(data) > 1 {
		s.StdDev = stat.StdDev(data, nil)
	}

	return s
}
