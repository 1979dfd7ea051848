package sigma

import (
	"errors"
	"fmt"
)

// ErrNoCurves is returned when a curve based source carries no curve
var ErrNoCurves = errors.New("no sigma curves supplied")

// System selects how per-axis locations combine into a strength
type System int

const (
	// SystemPerAxis multiplies one curve per axis
	SystemPerAxis System = iota
	// SystemRadial evaluates one curve at the Euclidean-normalized location
	SystemRadial
)

func (s System) String() string {
	switch s {
	case SystemPerAxis:
		return "per_axis"
	case SystemRadial:
		return "radial"
	default:
		return fmt.Sprintf("system(%d)", int(s))
	}
}

// Source describes where noise strengths come from. It is one of
// Scalar, PerAxisCurves or RadialCurve.
type Source interface {
	isSource()
}

// Scalar is a single strength shared by every frequency bin
type Scalar float64

// PerAxisCurves holds one curve per axis. The strength of a bin is the
// product of the three curves at that bin's per-axis locations.
type PerAxisCurves struct {
	X Curve
	Y Curve
	T Curve
}

// RadialCurve is evaluated at sqrt((locT^2 + locY^2 + locX^2) / ndim)
type RadialCurve struct {
	Curve Curve
}

func (Scalar) isSource()        {}
func (PerAxisCurves) isSource() {}
func (RadialCurve) isSource()   {}

// NewPerAxisCurves assigns curves to the X, Y and T axes in that order.
// Fewer than three curves are right-padded by repeating the last one.
func NewPerAxisCurves(curves ...Curve) (PerAxisCurves, error) {
	padded, err := padCurves(curves)
	if err != nil {
		return PerAxisCurves{}, err
	}
	return PerAxisCurves{X: padded[0], Y: padded[1], T: padded[2]}, nil
}

// CurveSource builds the source for a curve based system from up to
// three curves in X, Y, T order. The radial system uses the T slot after
// padding.
func CurveSource(system System, curves ...Curve) (Source, error) {
	padded, err := padCurves(curves)
	if err != nil {
		return nil, err
	}

	switch system {
	case SystemPerAxis:
		return PerAxisCurves{X: padded[0], Y: padded[1], T: padded[2]}, nil
	case SystemRadial:
		return RadialCurve{Curve: padded[2]}, nil
	default:
		return nil, fmt.Errorf("unknown sigma system %d", int(system))
	}
}

func padCurves(curves []Curve) ([3]Curve, error) {
	var padded [3]Curve
	if len(curves) == 0 {
		return padded, ErrNoCurves
	}
	for i := range padded {
		if i < len(curves) {
			padded[i] = curves[i]
		} else {
			padded[i] = curves[len(curves)-1]
		}
		if padded[i] == nil {
			return padded, fmt.Errorf("%w: curve %d is nil", ErrNoCurves, i)
		}
	}
	return padded, nil
}
