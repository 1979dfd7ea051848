package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/RyanBlaney/sonido-dfttest/algorithms/sigma"
)

// ErrInvalidParams wraps every parameter validation failure
var ErrInvalidParams = errors.New("invalid dfttest parameters")

// Params holds the user-facing denoiser controls
type Params struct {
	// Filter selection
	FType  int     `json:"ftype"`  // 0 wiener, 1 threshold, 2 multiplier, 3 range switched, 4 range modulated
	F0Beta float64 `json:"f0beta"` // Wiener exponent for ftype 0

	// Strengths
	Sigma  float64 `json:"sigma"`
	Sigma2 float64 `json:"sigma2"`
	Pmin   float64 `json:"pmin"`
	Pmax   float64 `json:"pmax"`

	// Block geometry
	SBSize int `json:"sbsize"` // spatial block side
	SOSize int `json:"sosize"` // spatial overlap
	TBSize int `json:"tbsize"` // frames per block, odd

	// Windows
	SWin  int     `json:"swin"`
	TWin  int     `json:"twin"`
	SBeta float64 `json:"sbeta"`
	TBeta float64 `json:"tbeta"`
	ZMean bool    `json:"zmean"`

	// Frequency dependent strength. SLocation overrides the per-axis lists.
	SLocation ControlList `json:"slocation,omitempty"`
	SSX       ControlList `json:"ssx,omitempty"`
	SSY       ControlList `json:"ssy,omitempty"`
	SST       ControlList `json:"sst,omitempty"`
	SSystem   int         `json:"ssystem"` // 0 per-axis product, 1 radial
}

// DefaultParams returns the stock denoiser settings
func DefaultParams() Params {
	return Params{
		FType:  0,
		F0Beta: 1.0,
		Sigma:  8.0,
		Sigma2: 8.0,
		Pmin:   0.0,
		Pmax:   500.0,
		SBSize: 16,
		SOSize: 12,
		TBSize: 3,
		SWin:   0, // hann
		TWin:   7, // rectangular
		SBeta:  2.5,
		TBeta:  2.5,
		ZMean:  true,
	}
}

// Radius returns the temporal radius, (tbsize-1)/2
func (p Params) Radius() int {
	return (p.TBSize - 1) / 2
}

// BlockStep returns the distance between block origins
func (p Params) BlockStep() int {
	return p.SBSize - p.SOSize
}

// HasCurves reports whether any frequency dependent strength list is set
func (p Params) HasCurves() bool {
	return len(p.SLocation) > 0 || len(p.SSX) > 0 || len(p.SSY) > 0 || len(p.SST) > 0
}

// Validate checks the parameters and reports the first problem found
func (p Params) Validate() error {
	if p.FType < 0 || p.FType > 4 {
		return fmt.Errorf("%w: ftype must be 0, 1, 2, 3, or 4", ErrInvalidParams)
	}

	if p.SBSize < 1 {
		return fmt.Errorf("%w: sbsize must be greater than or equal to 1", ErrInvalidParams)
	}

	if p.SOSize < 0 || p.SOSize >= p.SBSize {
		return fmt.Errorf("%w: sosize must be between 0 and sbsize-1 (inclusive)", ErrInvalidParams)
	}

	if p.SOSize > p.SBSize/2 && p.SBSize%(p.SBSize-p.SOSize) != 0 {
		return fmt.Errorf("%w: spatial overlap greater than 50%% requires that sbsize-sosize is a divisor of sbsize", ErrInvalidParams)
	}

	if p.TBSize < 1 {
		return fmt.Errorf("%w: tbsize must be at least 1", ErrInvalidParams)
	}

	if p.TBSize%2 == 0 {
		return fmt.Errorf("%w: tbsize must be odd", ErrInvalidParams)
	}

	if p.SWin < 0 || p.SWin > 11 {
		return fmt.Errorf("%w: swin must be between 0 and 11 (inclusive)", ErrInvalidParams)
	}

	if p.TWin < 0 || p.TWin > 11 {
		return fmt.Errorf("%w: twin must be between 0 and 11 (inclusive)", ErrInvalidParams)
	}

	lists := []struct {
		name string
		list ControlList
	}{
		{"slocation", p.SLocation},
		{"ssx", p.SSX},
		{"ssy", p.SSY},
		{"sst", p.SST},
	}
	for _, l := range lists {
		if len(l.list)%2 != 0 {
			return fmt.Errorf("%w: number of elements in %s must be a multiple of 2", ErrInvalidParams, l.name)
		}
	}

	if p.SSystem < 0 || p.SSystem > 1 {
		return fmt.Errorf("%w: ssystem must be 0 or 1", ErrInvalidParams)
	}

	return nil
}

// LoadParams decodes JSON parameters on top of DefaultParams and validates them
func LoadParams(r io.Reader) (Params, error) {
	params := DefaultParams()

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&params); err != nil {
		return Params{}, fmt.Errorf("decoding parameters: %w", err)
	}

	if err := params.Validate(); err != nil {
		return Params{}, err
	}

	return params, nil
}

// ControlList is a flat [location0, strength0, location1, strength1, ...]
// list. In JSON it may also be written as [[location, strength], ...].
type ControlList []float64

// UnmarshalJSON accepts both the flat and the paired form
func (c *ControlList) UnmarshalJSON(data []byte) error {
	var flat []float64
	if err := json.Unmarshal(data, &flat); err == nil {
		*c = flat
		return nil
	}

	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("control list must be numbers or [location, strength] pairs: %w", err)
	}
	*c = sigma.FlattenPairs(pairs)
	return nil
}
