package dfttest

import (
	"fmt"

	"github.com/RyanBlaney/sonido-dfttest/algorithms/common"
	"github.com/RyanBlaney/sonido-dfttest/algorithms/filters"
	"github.com/RyanBlaney/sonido-dfttest/algorithms/sigma"
	"github.com/RyanBlaney/sonido-dfttest/algorithms/spectral"
	"github.com/RyanBlaney/sonido-dfttest/algorithms/windowing"
	"github.com/RyanBlaney/sonido-dfttest/logging"
)

// Options are the low-level design inputs, after the user-facing
// parameters have been turned into a window geometry and a sigma source
type Options struct {
	FType    int          // user-facing filter type, 0..4
	F0Beta   float64      // selects the Wiener variant when FType is 0
	Sigma    sigma.Source // Scalar, PerAxisCurves or RadialCurve
	Sigma2   float64
	Pmin     float64
	Pmax     float64
	Window   windowing.WindowConfig
	ZeroMean bool
}

// Descriptor is everything a transform backend needs to run the denoiser:
// the analysis window, the per-bin strengths and the gain formula with its
// parameters. All strengths are already expressed on the window's energy
// scale. A Descriptor is never modified after construction and can be
// shared between goroutines.
type Descriptor struct {
	window         *windowing.Window
	windowSpectrum []complex128
	wscale         float64

	sigma  sigma.Table
	sigma2 float64
	pmin   float64
	pmax   float64
	f0beta float64

	filterType filters.Type
	radius     int
	blockSize  int
	blockStep  int
	zeroMean   bool
}

// Design builds a descriptor from low-level options.
//
// Strengths are rescaled by the window energy wscale so that the same
// sigma means the same thing for every window shape and overlap: sigma and
// sigma2 only for user filter types 0 and 1 (whose gains compare sigma
// against psd), pmin and pmax always. The Wiener power type raises its
// gain to the scaled pmin.
func Design(opts Options) (*Descriptor, error) {
	logger := logging.WithFields(logging.Fields{
		"component":  "filter_descriptor",
		"function":   "Design",
		"ftype":      opts.FType,
		"radius":     opts.Window.Radius,
		"block_size": opts.Window.BlockSize,
		"block_step": opts.Window.BlockStep,
	})

	filterType, err := filters.FromUser(opts.FType, opts.F0Beta)
	if err != nil {
		logger.Error(err, "Invalid filter type")
		return nil, err
	}

	window, err := windowing.Build(opts.Window)
	if err != nil {
		return nil, fmt.Errorf("building window: %w", err)
	}
	wscale := window.Energy()

	source := opts.Sigma
	if source == nil {
		source = sigma.Scalar(DefaultSigma)
	}
	table, err := sigma.BuildProfile(opts.Window.Radius, opts.Window.BlockSize, source)
	if err != nil {
		return nil, fmt.Errorf("building sigma profile: %w", err)
	}

	sigma2 := opts.Sigma2
	if opts.FType < int(filters.TypeMultiplier) {
		table = table.Scaled(wscale)
		sigma2 *= wscale
	}

	pmin := opts.Pmin * wscale
	pmax := opts.Pmax * wscale

	d := &Descriptor{
		window:     window,
		wscale:     wscale,
		sigma:      table,
		sigma2:     sigma2,
		pmin:       pmin,
		pmax:       pmax,
		f0beta:     opts.F0Beta,
		filterType: filterType,
		radius:     opts.Window.Radius,
		blockSize:  opts.Window.BlockSize,
		blockStep:  opts.Window.BlockStep,
		zeroMean:   opts.ZeroMean,
	}

	if opts.ZeroMean {
		d.windowSpectrum, err = spectral.WindowSpectrum(window.Coefficients(), window.Shape())
		if err != nil {
			logger.Error(err, "Failed to transform window")
			return nil, fmt.Errorf("window spectrum: %w", err)
		}
	}

	logger.Debug("Filter descriptor built", logging.Fields{
		"filter_type":  filterType.String(),
		"wscale":       wscale,
		"sigma_scalar": table.IsScalar(),
		"sigma":        d.SigmaSummary(),
	})

	return d, nil
}

// Window returns the analysis window
func (d *Descriptor) Window() *windowing.Window {
	return d.window
}

// WindowScale returns wscale, the sum of squared window coefficients
func (d *Descriptor) WindowScale() float64 {
	return d.wscale
}

// WindowSpectrum returns a copy of the window half-spectrum used for
// zero-mean filtering, or nil when zero-mean is off
func (d *Descriptor) WindowSpectrum() []complex128 {
	if d.windowSpectrum == nil {
		return nil
	}
	spectrum := make([]complex128, len(d.windowSpectrum))
	copy(spectrum, d.windowSpectrum)
	return spectrum
}

// Sigma returns the strength table
func (d *Descriptor) Sigma() sigma.Table {
	return d.sigma
}

// SigmaTable returns one strength per half-spectrum bin, expanding a
// scalar sigma for backends that only take arrays
func (d *Descriptor) SigmaTable() []float64 {
	return d.sigma.Values()
}

// SigmaSummary describes the spread of the strength table
func (d *Descriptor) SigmaSummary() common.Summary {
	if d.sigma.IsScalar() {
		return common.Summary{Count: d.sigma.Len(), Min: d.sigma.Scalar(), Max: d.sigma.Scalar(), Mean: d.sigma.Scalar()}
	}
	return common.Summarize(d.sigma.Values())
}

func (d *Descriptor) Sigma2() float64          { return d.sigma2 }
func (d *Descriptor) Pmin() float64            { return d.pmin }
func (d *Descriptor) Pmax() float64            { return d.pmax }
func (d *Descriptor) F0Beta() float64          { return d.f0beta }
func (d *Descriptor) FilterType() filters.Type { return d.filterType }
func (d *Descriptor) Radius() int              { return d.radius }
func (d *Descriptor) BlockSize() int           { return d.blockSize }
func (d *Descriptor) BlockStep() int           { return d.blockStep }
func (d *Descriptor) ZeroMean() bool           { return d.zeroMean }

// FilterParams returns the gain formula selection and its scalar inputs
func (d *Descriptor) FilterParams() filters.Params {
	return filters.Params{Type: d.filterType, Sigma2: d.sigma2, Pmin: d.pmin, Pmax: d.pmax}
}

// Multiplier returns the gain for a coefficient of power psd at bin (t, y, x)
func (d *Descriptor) Multiplier(psd float64, t, y, x int) float64 {
	return d.FilterParams().Gain(psd, d.sigma.At(t, y, x))
}

// FilterBlock applies the gain to one transformed block in place. The
// block is the half-spectrum of a windowed block, row-major over (t, y, x).
// With zero-mean on, the window spectrum weighted by the block's DC ratio
// is removed before filtering and restored afterwards.
func (d *Descriptor) FilterBlock(block []complex128) error {
	var gf float64
	if d.zeroMean {
		var err error
		if gf, err = spectral.RemoveMean(block, d.windowSpectrum); err != nil {
			return err
		}
	}

	if err := filters.FilterBlock(block, d.radius, d.blockSize, d.sigma, d.FilterParams()); err != nil {
		return err
	}

	if d.zeroMean {
		return spectral.AddMean(block, d.windowSpectrum, gf)
	}
	return nil
}
