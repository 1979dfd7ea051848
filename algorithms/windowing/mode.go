package windowing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownWindow is returned for a window mode outside 0..11
	ErrUnknownWindow = errors.New("unknown window")

	// ErrInvalidStep is returned when a block step cannot tile the window
	ErrInvalidStep = errors.New("invalid block step")

	// ErrInvalidSize is returned for non-positive window or block sizes
	ErrInvalidSize = errors.New("invalid window size")
)

// Mode selects one of the analysis/synthesis window shapes
type Mode int

const (
	ModeHann Mode = iota
	ModeHamming
	ModeBlackman
	ModeBlackmanHarris4
	ModeKaiser
	ModeBlackmanHarris7
	ModeFlatTop
	ModeRectangular
	ModeBartlett
	ModeBartlettHann
	ModeNuttall
	ModeBlackmanNuttall
)

var modeNames = [...]string{
	ModeHann:            "hann",
	ModeHamming:         "hamming",
	ModeBlackman:        "blackman",
	ModeBlackmanHarris4: "blackman_harris_4",
	ModeKaiser:          "kaiser",
	ModeBlackmanHarris7: "blackman_harris_7",
	ModeFlatTop:         "flat_top",
	ModeRectangular:     "rectangular",
	ModeBartlett:        "bartlett",
	ModeBartlettHann:    "bartlett_hann",
	ModeNuttall:         "nuttall",
	ModeBlackmanNuttall: "blackman_nuttall",
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Valid reports whether m is one of the twelve supported shapes
func (m Mode) Valid() bool {
	return m >= ModeHann && m <= ModeBlackmanNuttall
}

// ParseMode resolves a window name (as printed by String) to its Mode
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
}

// Value evaluates window shape mode at location, where location runs over [0, size).
// Callers sample bin centers by passing index+0.5. beta is only used by ModeKaiser.
func Value(location float64, size int, mode Mode, beta float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	t := math.Pi * location / float64(size)

	switch mode {
	case ModeHann:
		return hann(t), nil
	case ModeHamming:
		return hamming(t), nil
	case ModeBlackman:
		return blackman(t), nil
	case ModeBlackmanHarris4:
		return blackmanHarris4(t), nil
	case ModeKaiser:
		return kaiser(location, size, beta), nil
	case ModeBlackmanHarris7:
		return blackmanHarris7(t), nil
	case ModeFlatTop:
		return flatTop(t), nil
	case ModeRectangular:
		return rectangular(), nil
	case ModeBartlett:
		return bartlett(location, size), nil
	case ModeBartlettHann:
		return bartlettHann(location, size, t), nil
	case ModeNuttall:
		return nuttall(t), nil
	case ModeBlackmanNuttall:
		return blackmanNuttall(t), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownWindow, int(mode))
	}
}

// Sample evaluates mode at the centers of size bins
func Sample(size int, mode Mode, beta float64) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	coefficients := make([]float64, size)
	for i := range size {
		v, err := Value(float64(i)+0.5, size, mode, beta)
		if err != nil {
			return nil, err
		}
		coefficients[i] = v
	}

	return coefficients, nil
}

// cosineSum evaluates a0 + a1*cos(2t) + a2*cos(4t) + ...
// Signs are carried by the coefficients.
func cosineSum(t float64, coefficients ...float64) float64 {
	sum := 0.0
	for k, a := range coefficients {
		sum += a * math.Cos(2*float64(k)*t)
	}
	return sum
}
