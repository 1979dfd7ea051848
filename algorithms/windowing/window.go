package windowing

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-dfttest/algorithms/common"
	"github.com/RyanBlaney/sonido-dfttest/logging"
)

// WindowConfig holds the parameters of a separable analysis window
type WindowConfig struct {
	Radius       int     `json:"radius"`     // temporal radius, 0 for pure 2-D analysis
	BlockSize    int     `json:"block_size"` // spatial block side
	BlockStep    int     `json:"block_step"` // block size minus overlap
	SpatialMode  Mode    `json:"spatial_mode"`
	SpatialBeta  float64 `json:"spatial_beta"` // Kaiser beta for SpatialMode
	TemporalMode Mode    `json:"temporal_mode"`
	TemporalBeta float64 `json:"temporal_beta"` // Kaiser beta for TemporalMode
}

// DefaultWindowConfig returns a 16x16 Hann window with 12 samples of
// overlap and a rectangular 3-frame temporal window
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Radius:       1,
		BlockSize:    16,
		BlockStep:    4,
		SpatialMode:  ModeHann,
		SpatialBeta:  2.5,
		TemporalMode: ModeRectangular,
		TemporalBeta: 2.5,
	}
}

// TemporalSize returns the number of frames per block, 2*radius+1
func (c WindowConfig) TemporalSize() int {
	return 2*c.Radius + 1
}

// Validate checks the window configuration
func (c WindowConfig) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius %d", ErrInvalidSize, c.Radius)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size %d", ErrInvalidSize, c.BlockSize)
	}
	if c.BlockStep < 1 || c.BlockStep > c.BlockSize {
		return fmt.Errorf("%w: step %d for block size %d", ErrInvalidStep, c.BlockStep, c.BlockSize)
	}
	if !c.SpatialMode.Valid() {
		return fmt.Errorf("%w: spatial %d", ErrUnknownWindow, int(c.SpatialMode))
	}
	if !c.TemporalMode.Valid() {
		return fmt.Errorf("%w: temporal %d", ErrUnknownWindow, int(c.TemporalMode))
	}
	return nil
}

// Window is the flattened 3-D separable analysis window, laid out
// row-major over (t, y, x). It is never modified after Build.
type Window struct {
	radius       int
	blockSize    int
	coefficients []float64
	energy       float64
}

// Build evaluates the temporal and spatial windows, normalizes the spatial
// one for overlap-add with BlockStep and forms their outer product.
//
// The result is divided by sqrt(2*radius+1)*blockSize since the paired
// transform is unnormalized.
func Build(config WindowConfig) (*Window, error) {
	logger := logging.WithFields(logging.Fields{
		"component":  "window_builder",
		"function":   "Build",
		"radius":     config.Radius,
		"block_size": config.BlockSize,
		"block_step": config.BlockStep,
	})

	if err := config.Validate(); err != nil {
		logger.Error(err, "Invalid window configuration")
		return nil, err
	}

	temporalSize := config.TemporalSize()

	temporal, err := Sample(temporalSize, config.TemporalMode, config.TemporalBeta)
	if err != nil {
		logger.Error(err, "Failed to evaluate temporal window")
		return nil, err
	}

	spatial, err := Sample(config.BlockSize, config.SpatialMode, config.SpatialBeta)
	if err != nil {
		logger.Error(err, "Failed to evaluate spatial window")
		return nil, err
	}

	spatial, err = Normalize(spatial, config.BlockStep)
	if err != nil {
		logger.Error(err, "Failed to normalize spatial window")
		return nil, err
	}

	scale := math.Sqrt(float64(temporalSize)) * float64(config.BlockSize)

	coefficients := make([]float64, 0, temporalSize*config.BlockSize*config.BlockSize)
	for _, tv := range temporal {
		for _, yv := range spatial {
			for _, xv := range spatial {
				coefficients = append(coefficients, tv*yv*xv/scale)
			}
		}
	}

	w := &Window{
		radius:       config.Radius,
		blockSize:    config.BlockSize,
		coefficients: coefficients,
		energy:       common.Energy(coefficients),
	}

	logger.Debug("Window generated successfully", logging.Fields{
		"spatial_mode":  config.SpatialMode.String(),
		"temporal_mode": config.TemporalMode.String(),
		"length":        len(coefficients),
		"energy":        w.energy,
	})

	return w, nil
}

// Energy returns the sum of squared coefficients (wscale)
func (w *Window) Energy() float64 {
	return w.energy
}

// Len returns the number of coefficients
func (w *Window) Len() int {
	return len(w.coefficients)
}

// Radius returns the temporal radius
func (w *Window) Radius() int {
	return w.radius
}

// BlockSize returns the spatial block side
func (w *Window) BlockSize() int {
	return w.blockSize
}

// Shape returns the window dimensions, (block, block) when the radius is
// zero and (2*radius+1, block, block) otherwise
func (w *Window) Shape() []int {
	if w.radius == 0 {
		return []int{w.blockSize, w.blockSize}
	}
	return []int{2*w.radius + 1, w.blockSize, w.blockSize}
}

// At returns the coefficient for frame t, row y, column x
func (w *Window) At(t, y, x int) float64 {
	return w.coefficients[(t*w.blockSize+y)*w.blockSize+x]
}

// Coefficients returns a copy of the window coefficients
func (w *Window) Coefficients() []float64 {
	coeffs := make([]float64, len(w.coefficients))
	copy(coeffs, w.coefficients)
	return coeffs
}

// Apply weights a block of samples by the window (creates new array)
func (w *Window) Apply(block []float64) ([]float64, error) {
	if len(block) != len(w.coefficients) {
		return nil, fmt.Errorf("block length (%d) doesn't match window length (%d)", len(block), len(w.coefficients))
	}

	windowed := make([]float64, len(block))
	for i, c := range w.coefficients {
		windowed[i] = block[i] * c
	}

	return windowed, nil
}

// ApplyInPlace weights a block of samples by the window in-place
func (w *Window) ApplyInPlace(block []float64) error {
	if len(block) != len(w.coefficients) {
		return fmt.Errorf("block length (%d) doesn't match window length (%d)", len(block), len(w.coefficients))
	}

	for i, c := range w.coefficients {
		block[i] *= c
	}

	return nil
}
