package spectral

import (
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestHalfSpectrumConstant(t *testing.T) {
	data := make([]float64, 4*4)
	for i := range data {
		data[i] = 1
	}

	spectrum, err := HalfSpectrum(data, []int{4, 4})
	if err != nil {
		t.Fatalf("HalfSpectrum: %v", err)
	}
	if len(spectrum) != 4*3 {
		t.Fatalf("len = %d, want 12", len(spectrum))
	}

	if !scalar.EqualWithinAbs(real(spectrum[0]), 16, 1e-12) {
		t.Errorf("DC = %v, want 16", spectrum[0])
	}
	for i, c := range spectrum[1:] {
		if cmplx.Abs(c) > 1e-12 {
			t.Errorf("bin %d = %v, want 0", i+1, c)
		}
	}
}

func TestHalfSpectrumImpulse(t *testing.T) {
	data := make([]float64, 3*4*4)
	data[0] = 1

	spectrum, err := HalfSpectrum(data, []int{3, 4, 4})
	if err != nil {
		t.Fatalf("HalfSpectrum: %v", err)
	}
	if len(spectrum) != 3*4*3 {
		t.Fatalf("len = %d, want 36", len(spectrum))
	}

	for i, c := range spectrum {
		if cmplx.Abs(c-1) > 1e-12 {
			t.Errorf("bin %d = %v, want 1", i, c)
		}
	}
}

func TestHalfSpectrumLayout(t *testing.T) {
	// a cosine along the last axis, identical in both rows, only excites bin (0, 1)
	data := []float64{
		1, 0, -1, 0,
		1, 0, -1, 0,
	}

	spectrum, err := HalfSpectrum(data, []int{2, 4})
	if err != nil {
		t.Fatalf("HalfSpectrum: %v", err)
	}

	if !scalar.EqualWithinAbs(real(spectrum[1]), 4, 1e-12) {
		t.Errorf("bin (0,1) = %v, want 4", spectrum[1])
	}
	for i, c := range spectrum {
		if i == 1 {
			continue
		}
		if cmplx.Abs(c) > 1e-12 {
			t.Errorf("bin %d = %v, want 0", i, c)
		}
	}
}

func TestHalfSpectrumErrors(t *testing.T) {
	if _, err := HalfSpectrum([]float64{1, 2, 3}, []int{2, 2}); err == nil {
		t.Error("expected length mismatch error")
	}
	if _, err := HalfSpectrum(nil, nil); err == nil {
		t.Error("expected empty shape error")
	}
	if _, err := HalfSpectrum(nil, []int{0, 4}); err == nil {
		t.Error("expected invalid dimension error")
	}
}

func TestWindowSpectrumScale(t *testing.T) {
	coefficients := []float64{0.25, 0.25, 0.25, 0.25}

	spectrum, err := WindowSpectrum(coefficients, []int{2, 2})
	if err != nil {
		t.Fatalf("WindowSpectrum: %v", err)
	}
	if !scalar.EqualWithinAbs(real(spectrum[0]), 255, 1e-9) {
		t.Errorf("DC = %v, want 255", spectrum[0])
	}
}

func TestRemoveAddMean(t *testing.T) {
	window := []complex128{4, complex(1, 1), 2, complex(0, -1)}
	block := []complex128{8, complex(3, 2), 5, complex(1, -2)}
	original := append([]complex128(nil), block...)

	gf, err := RemoveMean(block, window)
	if err != nil {
		t.Fatalf("RemoveMean: %v", err)
	}
	if gf != 2 {
		t.Errorf("gf = %v, want 2", gf)
	}
	if block[0] != 0 {
		t.Errorf("DC after removal = %v, want 0", block[0])
	}

	if err := AddMean(block, window, gf); err != nil {
		t.Fatalf("AddMean: %v", err)
	}
	for i := range block {
		if cmplx.Abs(block[i]-original[i]) > 1e-12 {
			t.Errorf("block[%d] = %v, want %v", i, block[i], original[i])
		}
	}

	if _, err := RemoveMean(block[:2], window); err == nil {
		t.Error("expected length mismatch error")
	}
}
