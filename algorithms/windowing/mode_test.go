package windowing

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestValuePeak(t *testing.T) {
	tests := []struct {
		mode Mode
		want float64
		tol  float64
	}{
		{ModeHann, 1.0, 1e-12},
		{ModeHamming, 1.0, 1e-12},
		{ModeBlackman, 1.0, 1e-12},
		{ModeBlackmanHarris4, 1.0, 1e-12},
		{ModeKaiser, 1.0, 1e-12},
		{ModeBlackmanHarris7, 1.0, 1e-6},
		{ModeFlatTop, 1.0, 1e-5},
		{ModeRectangular, 1.0, 0},
		{ModeBartlett, 1.0, 1e-12},
		{ModeBartlettHann, 1.0, 1e-12},
		{ModeNuttall, 1.0, 1e-12},
		{ModeBlackmanNuttall, 1.0, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			for _, size := range []int{8, 16, 32} {
				got, err := Value(float64(size)/2, size, tt.mode, 2.5)
				if err != nil {
					t.Fatalf("Value: %v", err)
				}
				if !scalar.EqualWithinAbs(got, tt.want, tt.tol) {
					t.Errorf("size %d: peak = %v, want %v", size, got, tt.want)
				}
			}
		})
	}
}

func TestValueSymmetric(t *testing.T) {
	// Bartlett-Hann carries a signed linear term and is skipped
	modes := []Mode{ModeHann, ModeHamming, ModeBlackman, ModeBlackmanHarris4, ModeKaiser,
		ModeBlackmanHarris7, ModeFlatTop, ModeRectangular, ModeBartlett, ModeNuttall, ModeBlackmanNuttall}

	const size = 16
	for _, mode := range modes {
		for i := range size {
			a, _ := Value(float64(i)+0.5, size, mode, 2.5)
			b, _ := Value(float64(size-1-i)+0.5, size, mode, 2.5)
			if !scalar.EqualWithinAbs(a, b, 1e-12) {
				t.Errorf("%s: w[%d]=%v, w[%d]=%v", mode, i, a, size-1-i, b)
			}
		}
	}
}

func TestValueHannCenters(t *testing.T) {
	got, err := Sample(4, ModeHann, 0)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	for i, v := range got {
		want := 0.5 * (1 - math.Cos(2*math.Pi*(float64(i)+0.5)/4))
		if !scalar.EqualWithinAbs(v, want, 1e-15) {
			t.Errorf("w[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestValueUnknownMode(t *testing.T) {
	for _, mode := range []Mode{-1, 12, 99} {
		if _, err := Value(0.5, 16, mode, 0); !errors.Is(err, ErrUnknownWindow) {
			t.Errorf("mode %d: err = %v, want ErrUnknownWindow", int(mode), err)
		}
	}

	if _, err := Sample(16, 12, 0); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("Sample: err = %v, want ErrUnknownWindow", err)
	}
}

func TestValueInvalidSize(t *testing.T) {
	if _, err := Value(0.5, 0, ModeHann, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestBesselI0(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 1},
		{1, 1.2660658777520082},
		{2, 2.2795853023360673},
	}

	for _, tt := range tests {
		if got := besselI0(tt.x); !scalar.EqualWithinAbs(got, tt.want, 1e-9) {
			t.Errorf("besselI0(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestKaiserBetaNarrows(t *testing.T) {
	narrow, _ := Value(0.5, 16, ModeKaiser, 4)
	wide, _ := Value(0.5, 16, ModeKaiser, 1)
	if narrow >= wide {
		t.Errorf("edge value for beta 4 (%v) should be below beta 1 (%v)", narrow, wide)
	}
}

func TestParseMode(t *testing.T) {
	for m := ModeHann; m <= ModeBlackmanNuttall; m++ {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, err := ParseMode("tukey"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("ParseMode(tukey): err = %v, want ErrUnknownWindow", err)
	}
}
