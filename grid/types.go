package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrNilAccessor indicates a nil Accessor was supplied.
	ErrNilAccessor = errors.New("grid: accessor is nil")
	// ErrBadShape indicates non-positive width or height.
	ErrBadShape = errors.New("grid: width and height must be > 0")
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrSliceLength indicates a flat buffer does not hold width*height samples.
	ErrSliceLength = errors.New("grid: sample count does not match width*height")
	// ErrNaNThreshold indicates the detection threshold is NaN.
	ErrNaNThreshold = errors.New("grid: threshold is NaN")
	// ErrParse indicates a grid file cell could not be parsed.
	ErrParse = errors.New("grid: cannot parse cell")
)

// Accessor is a read-only view over width*height numeric samples.
// Implementations must be safe for concurrent reads and must not change
// while a scan is running.
type Accessor interface {
	Value(col, row int) float64
}

// AccessorFunc adapts a plain function to Accessor.
type AccessorFunc func(col, row int) float64

// Value calls f(col, row).
func (f AccessorFunc) Value(col, row int) float64 { return f(col, row) }

// Sized is implemented by accessors that know their own dimensions.
type Sized interface {
	Accessor
	Dims() (width, height int)
}
