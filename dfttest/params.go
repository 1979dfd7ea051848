package dfttest

import (
	"fmt"

	"github.com/RyanBlaney/sonido-dfttest/algorithms/sigma"
	"github.com/RyanBlaney/sonido-dfttest/algorithms/windowing"
	"github.com/RyanBlaney/sonido-dfttest/dfttest/config"
	"github.com/RyanBlaney/sonido-dfttest/logging"
)

// DefaultSigma is the strength used when no sigma source is given
const DefaultSigma = 8.0

// New validates user-facing parameters and designs the matching filter
func New(p config.Params) (*Descriptor, error) {
	opts, err := OptionsFromParams(p)
	if err != nil {
		logging.Error(err, "Invalid denoiser parameters", logging.Fields{
			"component": "filter_descriptor",
			"function":  "New",
		})
		return nil, err
	}
	return Design(opts)
}

// OptionsFromParams turns user-facing parameters into design options.
//
// SLocation takes precedence and drives all three axes. Otherwise any of
// SSX, SSY, SST builds per-axis curves, with missing axes held at sigma.
// Without curves the plain scalar sigma is used.
func OptionsFromParams(p config.Params) (Options, error) {
	if err := p.Validate(); err != nil {
		return Options{}, err
	}

	source, err := SourceFromParams(p)
	if err != nil {
		return Options{}, err
	}

	return Options{
		FType:  p.FType,
		F0Beta: p.F0Beta,
		Sigma:  source,
		Sigma2: p.Sigma2,
		Pmin:   p.Pmin,
		Pmax:   p.Pmax,
		Window: windowing.WindowConfig{
			Radius:       p.Radius(),
			BlockSize:    p.SBSize,
			BlockStep:    p.BlockStep(),
			SpatialMode:  windowing.Mode(p.SWin),
			SpatialBeta:  p.SBeta,
			TemporalMode: windowing.Mode(p.TWin),
			TemporalBeta: p.TBeta,
		},
		ZeroMean: p.ZMean,
	}, nil
}

// SourceFromParams resolves the sigma source described by p
func SourceFromParams(p config.Params) (sigma.Source, error) {
	if !p.HasCurves() {
		return sigma.Scalar(p.Sigma), nil
	}

	system := sigma.System(p.SSystem)
	direct := len(p.SLocation) > 0
	norm := sigma.SelectNorm(direct, system == sigma.SystemRadial, p.TBSize)

	if direct {
		curve, err := sigma.NewCurve(p.SLocation, norm, p.Sigma)
		if err != nil {
			return nil, fmt.Errorf("slocation: %w", err)
		}
		return sigma.CurveSource(system, curve)
	}

	lists := []struct {
		name string
		list config.ControlList
	}{
		{"ssx", p.SSX},
		{"ssy", p.SSY},
		{"sst", p.SST},
	}

	curves := make([]sigma.Curve, 0, len(lists))
	for _, l := range lists {
		curve, err := sigma.NewCurve(l.list, norm, p.Sigma)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.name, err)
		}
		curves = append(curves, curve)
	}

	return sigma.CurveSource(system, curves...)
}
