package common

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEnergy(t *testing.T) {
	if got := Energy([]float64{1, 2, 3}); got != 14 {
		t.Errorf("Energy = %v, want 14", got)
	}
	if got := Energy(nil); got != 0 {
		t.Errorf("Energy(nil) = %v, want 0", got)
	}
}

func TestScaled(t *testing.T) {
	data := []float64{1, 2}
	scaled := Scaled(data, 3)

	if scaled[0] != 3 || scaled[1] != 6 {
		t.Errorf("Scaled = %v, want [3 6]", scaled)
	}
	if data[0] != 1 {
		t.Error("Scaled modified its input")
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{0, -1, 1e300}) {
		t.Error("finite values reported as non-finite")
	}
	if AllFinite([]float64{0, math.NaN()}) || AllFinite([]float64{math.Inf(-1)}) {
		t.Error("non-finite values not detected")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})

	if s.Count != 4 || s.Min != 1 || s.Max != 4 {
		t.Errorf("Summarize = %+v", s)
	}
	if !scalar.EqualWithinAbs(s.Mean, 2.5, 1e-12) {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	if !scalar.EqualWithinAbs(s.StdDev, math.Sqrt(5.0/3.0), 1e-12) {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(5.0/3.0))
	}

	if Summarize(nil) != (Summary{}) {
		t.Error("empty input should give a zero summary")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(1, 4, 0.5); got != 2.5 {
		t.Errorf("Lerp = %v, want 2.5", got)
	}
	if got := InverseLerp(0, 2, 0.5); got != 0.25 {
		t.Errorf("InverseLerp = %v, want 0.25", got)
	}
	if got := InverseLerp(1, 1, 1); got != 0 {
		t.Errorf("InverseLerp on empty interval = %v, want 0", got)
	}
}
