package grid

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Slice is a row-major sample buffer: sample (col,row) lives at
// Data[row*Width+col].
type Slice struct {
	Data   []float64
	Width  int
	Height int
}

// NewSlice validates that data holds exactly width*height samples.
// Complexity: O(1); data is not copied.
func NewSlice(data []float64, width, height int) (*Slice, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSliceLength, len(data), width*height)
	}

	return &Slice{Data: data, Width: width, Height: height}, nil
}

// Value returns the sample at (col,row).
func (s *Slice) Value(col, row int) float64 {
	return s.Data[s.index(col, row)]
}

// Dims returns the buffer dimensions.
func (s *Slice) Dims() (int, int) { return s.Width, s.Height }

// index maps (col,row) to a row-major index: row*Width + col.
func (s *Slice) index(col, row int) int {
	return row*s.Width + col
}

// Coordinate converts a row-major index back to (col,row).
func (s *Slice) Coordinate(idx int) (col, row int) {
	return idx % s.Width, idx / s.Width
}

// From2D builds a Slice from a non-empty, rectangular 2-D slice indexed
// as values[row][col]. The input is deep-copied.
// Returns ErrEmptyGrid or ErrNonRectangular on bad input.
// Complexity: O(W×H) time and memory.
func From2D(values [][]float64) (*Slice, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	data := make([]float64, 0, w*h)
	for _, row := range values {
		data = append(data, row...)
	}

	return &Slice{Data: data, Width: w, Height: h}, nil
}

// Matrix adapts a gonum matrix: grid row r is matrix row r, grid column c
// is matrix column c.
type Matrix struct {
	m mat.Matrix
}

// FromMatrix wraps m without copying. Returns ErrNilAccessor for nil m.
func FromMatrix(m mat.Matrix) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilAccessor
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return nil, ErrEmptyGrid
	}

	return &Matrix{m: m}, nil
}

// Value returns m.At(row, col).
func (a *Matrix) Value(col, row int) float64 { return a.m.At(row, col) }

// Dims returns (columns, rows) of the wrapped matrix.
func (a *Matrix) Dims() (int, int) {
	r, c := a.m.Dims()
	return c, r
}

// Image exposes the 16-bit luminance of an image, scaled to [0,1].
// Grid (0,0) is the image's Bounds().Min corner.
type Image struct {
	img    image.Image
	origin image.Point
	w, h   int
}

// FromImage wraps img. Returns ErrEmptyGrid for an empty image.
func FromImage(img image.Image) (*Image, error) {
	if img == nil {
		return nil, ErrNilAccessor
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyGrid
	}

	return &Image{img: img, origin: b.Min, w: b.Dx(), h: b.Dy()}, nil
}

// Value returns the luminance at (col,row) in [0,1].
func (a *Image) Value(col, row int) float64 {
	c := color.Gray16Model.Convert(a.img.At(a.origin.X+col, a.origin.Y+row)).(color.Gray16)
	return float64(c.Y) / 0xffff
}

// Dims returns the image width and height.
func (a *Image) Dims() (int, int) { return a.w, a.h }
