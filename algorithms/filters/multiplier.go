package filters

import (
	"errors"
	"fmt"
	"math"
)

// epsilon keeps the Wiener style ratios finite when psd is zero
const epsilon = 1e-15

// ErrUnknownFilterType is returned for a filter type outside 0..6
var ErrUnknownFilterType = errors.New("unknown filter type")

// Type selects the closed-form gain applied to each spectral coefficient.
//
// The gains, with psd = re^2 + im^2:
//
//	0  generalized Wiener     max((psd - sigma) / psd, 0)
//	1  hard threshold         psd < sigma ? 0 : 1
//	2  multiplier             sigma
//	3  range switched         pmin <= psd <= pmax ? sigma : sigma2
//	4  range modulated        sigma * sqrt(psd*pmax / ((psd+pmin) * (psd+pmax)))
//	5  Wiener power           max((psd - sigma) / psd, 0) ^ pmin
//	6  square root Wiener     sqrt(max((psd - sigma) / psd, 0))
//
// Types 5 and 6 are never chosen by users directly; they come from
// translating a Wiener filter with a non-unit exponent (see FromUser).
type Type int

const (
	TypeWiener Type = iota
	TypeThreshold
	TypeMultiplier
	TypeRangeSwitched
	TypeRangeModulated
	TypeWienerPower
	TypeWienerSqrt
)

const (
	unitBetaTolerance = 0.00005
	halfBetaTolerance = 0.0005
)

func (t Type) String() string {
	switch t {
	case TypeWiener:
		return "wiener"
	case TypeThreshold:
		return "threshold"
	case TypeMultiplier:
		return "multiplier"
	case TypeRangeSwitched:
		return "range_switched"
	case TypeRangeModulated:
		return "range_modulated"
	case TypeWienerPower:
		return "wiener_power"
	case TypeWienerSqrt:
		return "wiener_sqrt"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Validate rejects types outside 0..6
func (t Type) Validate() error {
	if t < TypeWiener || t > TypeWienerSqrt {
		return fmt.Errorf("%w: %d", ErrUnknownFilterType, int(t))
	}
	return nil
}

// FromUser translates the user-facing ftype (0..4) and Wiener exponent
// f0beta into a filter type. Only ftype 0 depends on f0beta: an exponent
// of 1 keeps the plain Wiener gain, 0.5 selects the square root variant
// and anything else the general power form.
func FromUser(ftype int, f0beta float64) (Type, error) {
	if ftype < int(TypeWiener) || ftype > int(TypeRangeModulated) {
		return 0, fmt.Errorf("%w: ftype must be 0, 1, 2, 3, or 4, got %d", ErrUnknownFilterType, ftype)
	}
	if ftype != int(TypeWiener) {
		return Type(ftype), nil
	}

	switch {
	case math.Abs(f0beta-1) < unitBetaTolerance:
		return TypeWiener, nil
	case math.Abs(f0beta-0.5) < halfBetaTolerance:
		return TypeWienerSqrt, nil
	default:
		return TypeWienerPower, nil
	}
}

// Params carries the scalar inputs of the gain formulas besides sigma
type Params struct {
	Type   Type
	Sigma2 float64
	Pmin   float64 // lower psd bound, or the exponent for TypeWienerPower
	Pmax   float64
}

// Multiplier returns the real gain for a coefficient with power psd.
// A type outside 0..6 yields NaN; check it with Type.Validate first.
func Multiplier(psd, sigma, sigma2, pmin, pmax float64, t Type) float64 {
	switch t {
	case TypeWiener:
		return wiener(psd, sigma)
	case TypeThreshold:
		if psd < sigma {
			return 0
		}
		return 1
	case TypeMultiplier:
		return sigma
	case TypeRangeSwitched:
		if psd >= pmin && psd <= pmax {
			return sigma
		}
		return sigma2
	case TypeRangeModulated:
		return sigma * math.Sqrt(psd*(pmax/((psd+pmin)*(psd+pmax)+epsilon)))
	case TypeWienerPower:
		return math.Pow(wiener(psd, sigma), pmin)
	case TypeWienerSqrt:
		return math.Sqrt(wiener(psd, sigma))
	default:
		return math.NaN()
	}
}

func wiener(psd, sigma float64) float64 {
	return math.Max((psd-sigma)/(psd+epsilon), 0)
}

// Gain evaluates Multiplier with p
func (p Params) Gain(psd, sigma float64) float64 {
	return Multiplier(psd, sigma, p.Sigma2, p.Pmin, p.Pmax, p.Type)
}

// Apply scales both parts of c by the same real gain, preserving phase
func (p Params) Apply(c complex128, sigma float64) complex128 {
	if p.Type == TypeMultiplier {
		return complex(real(c)*sigma, imag(c)*sigma)
	}

	psd := real(c)*real(c) + imag(c)*imag(c)
	gain := p.Gain(psd, sigma)
	return complex(real(c)*gain, imag(c)*gain)
}
