package sigma

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/RyanBlaney/sonido-dfttest/algorithms/common"
)

var (
	// ErrOddControlPoints is returned when a control list is not made of (location, strength) pairs
	ErrOddControlPoints = errors.New("number of control point values must be a multiple of 2")

	// ErrTooFewControlPoints is returned when a curve has nothing to interpolate between
	ErrTooFewControlPoints = errors.New("at least two control points are required")

	// ErrOutOfDomain is returned when a curve is queried past its last control point
	ErrOutOfDomain = errors.New("location beyond last control point")
)

// Curve maps a normalized frequency location to a noise strength
type Curve interface {
	At(x float64) (float64, error)
}

// Norm is applied to every control strength before interpolation
type Norm int

const (
	// NormIdentity leaves strengths unchanged
	NormIdentity Norm = iota
	// NormSqrt takes the square root, for 2-D analysis
	NormSqrt
	// NormCbrt takes the cube root, for 3-D analysis
	NormCbrt
)

// Apply evaluates the normalization
func (n Norm) Apply(x float64) float64 {
	switch n {
	case NormSqrt:
		return math.Sqrt(x)
	case NormCbrt:
		return math.Cbrt(x)
	default:
		return x
	}
}

func (n Norm) String() string {
	switch n {
	case NormIdentity:
		return "identity"
	case NormSqrt:
		return "sqrt"
	case NormCbrt:
		return "cbrt"
	default:
		return fmt.Sprintf("norm(%d)", int(n))
	}
}

// SelectNorm picks the strength normalization. Strengths given directly
// in radial frequency-location space are used as is. Otherwise per-axis
// strengths are multiplied over 2 or 3 axes, so the matching root keeps
// the product on the scale of the scalar sigma.
func SelectNorm(directLocation, radial bool, temporalSize int) Norm {
	switch {
	case directLocation && radial:
		return NormIdentity
	case temporalSize == 1:
		return NormSqrt
	default:
		return NormCbrt
	}
}

// ControlPoint is one (location, strength) pair of a curve
type ControlPoint struct {
	Location float64 `json:"location"`
	Strength float64 `json:"strength"`
}

// Constant is a curve that ignores its argument
type Constant float64

// At returns the constant value
func (c Constant) At(float64) (float64, error) {
	return float64(c), nil
}

// PiecewiseLinear interpolates linearly between control points sorted by
// location. Strengths are stored already normalized.
type PiecewiseLinear struct {
	points []ControlPoint
	norm   Norm
}

// NewCurve builds a curve from a flat [loc0, val0, loc1, val1, ...] list.
// An empty list yields Constant(norm(defaultSigma)).
func NewCurve(values []float64, norm Norm, defaultSigma float64) (Curve, error) {
	if len(values) == 0 {
		return Constant(norm.Apply(defaultSigma)), nil
	}
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddControlPoints, len(values))
	}

	points := make([]ControlPoint, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		points = append(points, ControlPoint{Location: values[i], Strength: values[i+1]})
	}

	curve, err := NewPiecewiseLinear(points, norm)
	if err != nil {
		return nil, err
	}
	return curve, nil
}

// NewPiecewiseLinear builds a curve from control points. The points are
// copied and sorted by location; equal locations keep their input order.
func NewPiecewiseLinear(points []ControlPoint, norm Norm) (*PiecewiseLinear, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewControlPoints, len(points))
	}

	sorted := make([]ControlPoint, len(points))
	for i, p := range points {
		if math.IsNaN(p.Location) {
			return nil, fmt.Errorf("control point %d has NaN location", i)
		}
		sorted[i] = ControlPoint{Location: p.Location, Strength: norm.Apply(p.Strength)}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Location < sorted[j].Location
	})

	return &PiecewiseLinear{points: sorted, norm: norm}, nil
}

// At interpolates within the first segment whose right end is at or past x.
// Queries before the first point extrapolate along the first segment.
func (c *PiecewiseLinear) At(x float64) (float64, error) {
	for i := 0; i < len(c.points)-1; i++ {
		left, right := c.points[i], c.points[i+1]
		if x <= right.Location {
			weight := common.InverseLerp(left.Location, right.Location, x)
			return common.Lerp(left.Strength, right.Strength, weight), nil
		}
	}
	return 0, fmt.Errorf("%w: %g > %g", ErrOutOfDomain, x, c.points[len(c.points)-1].Location)
}

// Points returns a copy of the sorted, normalized control points
func (c *PiecewiseLinear) Points() []ControlPoint {
	points := make([]ControlPoint, len(c.points))
	copy(points, c.points)
	return points
}

// Norm returns the normalization applied to the strengths
func (c *PiecewiseLinear) Norm() Norm {
	return c.norm
}

// FlattenPairs turns (location, strength) tuples into the flat control list
func FlattenPairs(pairs [][2]float64) []float64 {
	if pairs == nil {
		return nil
	}
	flat := make([]float64, 0, 2*len(pairs))
	for _, p := range pairs {
		flat = append(flat, p[0], p[1])
	}
	return flat
}
