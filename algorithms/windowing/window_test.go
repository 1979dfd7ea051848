package windowing

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestBuildLength(t *testing.T) {
	tests := []struct {
		radius int
		want   int
		shape  []int
	}{
		{0, 256, []int{16, 16}},
		{1, 768, []int{3, 16, 16}},
		{2, 1280, []int{5, 16, 16}},
	}

	for _, tt := range tests {
		config := DefaultWindowConfig()
		config.Radius = tt.radius

		w, err := Build(config)
		if err != nil {
			t.Fatalf("radius %d: %v", tt.radius, err)
		}
		if w.Len() != tt.want {
			t.Errorf("radius %d: len = %d, want %d", tt.radius, w.Len(), tt.want)
		}
		if got := w.Shape(); len(got) != len(tt.shape) {
			t.Errorf("radius %d: shape = %v, want %v", tt.radius, got, tt.shape)
		}
	}
}

func TestBuildSeparable(t *testing.T) {
	config := WindowConfig{
		Radius:       1,
		BlockSize:    8,
		BlockStep:    2,
		SpatialMode:  ModeBlackman,
		TemporalMode: ModeHann,
	}

	w, err := Build(config)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	temporal, _ := Sample(3, ModeHann, 0)
	spatial, _ := Sample(8, ModeBlackman, 0)
	spatial, _ = Normalize(spatial, 2)
	scale := math.Sqrt(3) * 8

	for ti := range 3 {
		for y := range 8 {
			for x := range 8 {
				want := temporal[ti] * spatial[y] * spatial[x] / scale
				if got := w.At(ti, y, x); !scalar.EqualWithinAbs(got, want, 1e-15) {
					t.Fatalf("At(%d,%d,%d) = %v, want %v", ti, y, x, got, want)
				}
			}
		}
	}
}

func TestBuildEnergy(t *testing.T) {
	// a normalized spatial window has squared sum equal to the step and a
	// rectangular temporal window cancels its own sqrt(2r+1) scale
	for _, radius := range []int{0, 1, 3} {
		for _, step := range []int{1, 2, 4, 8, 16} {
			config := DefaultWindowConfig()
			config.Radius = radius
			config.BlockStep = step

			w, err := Build(config)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}

			ratio := float64(step) / 16
			if got := w.Energy(); !scalar.EqualWithinAbs(got, ratio*ratio, 1e-12) {
				t.Errorf("radius %d step %d: energy = %v, want %v", radius, step, got, ratio*ratio)
			}
		}
	}
}

func TestBuildCoefficientsCopy(t *testing.T) {
	w, _ := Build(DefaultWindowConfig())

	coeffs := w.Coefficients()
	coeffs[0] = 42
	if w.At(0, 0, 0) == 42 {
		t.Error("Coefficients exposed internal storage")
	}
}

func TestBuildInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WindowConfig)
		want   error
	}{
		{"negative radius", func(c *WindowConfig) { c.Radius = -1 }, ErrInvalidSize},
		{"zero block", func(c *WindowConfig) { c.BlockSize = 0 }, ErrInvalidSize},
		{"zero step", func(c *WindowConfig) { c.BlockStep = 0 }, ErrInvalidStep},
		{"step too large", func(c *WindowConfig) { c.BlockStep = 17 }, ErrInvalidStep},
		{"spatial mode", func(c *WindowConfig) { c.SpatialMode = 12 }, ErrUnknownWindow},
		{"temporal mode", func(c *WindowConfig) { c.TemporalMode = -1 }, ErrUnknownWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultWindowConfig()
			tt.mutate(&config)
			if _, err := Build(config); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWindowApply(t *testing.T) {
	config := DefaultWindowConfig()
	config.Radius = 0
	w, _ := Build(config)

	block := make([]float64, w.Len())
	for i := range block {
		block[i] = 2
	}

	windowed, err := w.Apply(block)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if windowed[17] != 2*w.At(0, 1, 1) {
		t.Errorf("windowed[17] = %v, want %v", windowed[17], 2*w.At(0, 1, 1))
	}

	if err := w.ApplyInPlace(block[:10]); err == nil {
		t.Error("expected length mismatch error")
	}
}
