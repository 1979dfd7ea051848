package sigma

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-dfttest/algorithms/common"
	"github.com/RyanBlaney/sonido-dfttest/logging"
)

var (
	// ErrNonFinite is returned when a curve produces NaN or infinity
	ErrNonFinite = errors.New("sigma value is not finite")

	// ErrInvalidShape is returned for negative radius or non-positive block size
	ErrInvalidShape = errors.New("invalid sigma table shape")
)

// Table holds noise strengths for the Hermitian half-spectrum of a block,
// row-major over (t, y, x) with x in [0, blockSize/2+1). A scalar table
// stores one value for every bin.
type Table struct {
	radius    int
	blockSize int
	scalar    float64
	values    []float64
}

// HalfWidth returns the number of stored horizontal frequencies, blockSize/2+1
func HalfWidth(blockSize int) int {
	return blockSize/2 + 1
}

// TableLen returns the number of bins in the half-spectrum of a block
func TableLen(radius, blockSize int) int {
	return (2*radius + 1) * blockSize * HalfWidth(blockSize)
}

// NewScalarTable wraps a single strength
func NewScalarTable(radius, blockSize int, value float64) Table {
	return Table{radius: radius, blockSize: blockSize, scalar: value}
}

// NewTable wraps per-bin strengths; values must have TableLen entries
func NewTable(radius, blockSize int, values []float64) (Table, error) {
	if want := TableLen(radius, blockSize); len(values) != want {
		return Table{}, fmt.Errorf("sigma count mismatch: got %d, want %d", len(values), want)
	}
	if !common.AllFinite(values) {
		return Table{}, ErrNonFinite
	}
	stored := make([]float64, len(values))
	copy(stored, values)
	return Table{radius: radius, blockSize: blockSize, values: stored}, nil
}

// IsScalar reports whether one value covers every bin
func (t Table) IsScalar() bool {
	return t.values == nil
}

// Scalar returns the shared value of a scalar table
func (t Table) Scalar() float64 {
	return t.scalar
}

// Len returns the number of bins covered
func (t Table) Len() int {
	return TableLen(t.radius, t.blockSize)
}

// At returns the strength of bin (t, y, x) where x is a non-negative
// horizontal frequency. The conjugate mirror of a bin shares its value.
func (t Table) At(ti, y, x int) float64 {
	if t.values == nil {
		return t.scalar
	}
	return t.values[(ti*t.blockSize+y)*HalfWidth(t.blockSize)+x]
}

// Values returns the strengths bin by bin, expanding a scalar table
func (t Table) Values() []float64 {
	if t.values == nil {
		values := make([]float64, t.Len())
		for i := range values {
			values[i] = t.scalar
		}
		return values
	}
	values := make([]float64, len(t.values))
	copy(values, t.values)
	return values
}

// Scaled returns a table with every strength multiplied by factor
func (t Table) Scaled(factor float64) Table {
	if t.values == nil {
		return Table{radius: t.radius, blockSize: t.blockSize, scalar: t.scalar * factor}
	}
	return Table{radius: t.radius, blockSize: t.blockSize, values: common.Scaled(t.values, factor)}
}

// BuildProfile evaluates source over the half-spectrum grid of a block
// with the given temporal radius
func BuildProfile(radius, blockSize int, source Source) (Table, error) {
	logger := logging.WithFields(logging.Fields{
		"component":  "sigma_profile",
		"function":   "BuildProfile",
		"radius":     radius,
		"block_size": blockSize,
	})

	if radius < 0 || blockSize <= 0 {
		err := fmt.Errorf("%w: radius %d, block size %d", ErrInvalidShape, radius, blockSize)
		logger.Error(err, "Invalid sigma profile shape")
		return Table{}, err
	}

	var (
		values []float64
		err    error
	)

	switch s := source.(type) {
	case Scalar:
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			return Table{}, ErrNonFinite
		}
		return NewScalarTable(radius, blockSize, float64(s)), nil
	case PerAxisCurves:
		values, err = perAxis(radius, blockSize, s)
	case *PerAxisCurves:
		values, err = perAxis(radius, blockSize, *s)
	case RadialCurve:
		values, err = radial(radius, blockSize, s)
	case *RadialCurve:
		values, err = radial(radius, blockSize, *s)
	default:
		err = fmt.Errorf("unsupported sigma source %T", source)
	}
	if err != nil {
		logger.Error(err, "Failed to evaluate sigma profile")
		return Table{}, err
	}

	table, err := NewTable(radius, blockSize, values)
	if err != nil {
		logger.Error(err, "Sigma profile rejected")
		return Table{}, err
	}

	logger.Debug("Sigma profile built", logging.Fields{
		"bins": len(values),
	})

	return table, nil
}

func perAxis(radius, blockSize int, curves PerAxisCurves) ([]float64, error) {
	if curves.X == nil || curves.Y == nil || curves.T == nil {
		return nil, ErrNoCurves
	}

	temporalSize := 2*radius + 1
	halfWidth := HalfWidth(blockSize)
	values := make([]float64, 0, TableLen(radius, blockSize))

	// the horizontal factors are the same for every row
	xs := make([]float64, halfWidth)
	for x := range halfWidth {
		v, err := Sigma(float64(x), blockSize, curves.X)
		if err != nil {
			return nil, fmt.Errorf("x=%d: %w", x, err)
		}
		xs[x] = v
	}

	for t := range temporalSize {
		st, err := Sigma(float64(t), temporalSize, curves.T)
		if err != nil {
			return nil, fmt.Errorf("t=%d: %w", t, err)
		}
		for y := range blockSize {
			sy, err := Sigma(float64(y), blockSize, curves.Y)
			if err != nil {
				return nil, fmt.Errorf("y=%d: %w", y, err)
			}
			for x := range halfWidth {
				values = append(values, st*sy*xs[x])
			}
		}
	}

	return values, nil
}

func radial(radius, blockSize int, curve RadialCurve) ([]float64, error) {
	if curve.Curve == nil {
		return nil, ErrNoCurves
	}

	temporalSize := 2*radius + 1
	halfWidth := HalfWidth(blockSize)
	ndim := 2.0
	if radius > 0 {
		ndim = 3.0
	}

	values := make([]float64, 0, TableLen(radius, blockSize))
	for t := range temporalSize {
		lt := Location(float64(t), temporalSize)
		for y := range blockSize {
			ly := Location(float64(y), blockSize)
			for x := range halfWidth {
				lx := Location(float64(x), blockSize)

				location := math.Sqrt((lt*lt + ly*ly + lx*lx) / ndim)
				v, err := curve.Curve.At(location)
				if err != nil {
					return nil, fmt.Errorf("t=%d y=%d x=%d: %w", t, y, x, err)
				}
				values = append(values, v)
			}
		}
	}

	return values, nil
}
