package blob

import "errors"

// Sentinel errors for Object mutation and lookup.
var (
	// ErrPixelIndex indicates a pixel index outside [0, PixelCount()).
	ErrPixelIndex = errors.New("blob: pixel index out of range")
	// ErrBadScale indicates a negative, NaN or infinite weight scale.
	ErrBadScale = errors.New("blob: scale must be finite and >= 0")
)

// Point is a grid position.
type Point struct {
	X, Y int
}

// Pixel is a single grid sample placed in an Object.
type Pixel struct {
	X, Y  int     // grid column and row
	Value float64 // sample value
	Scale float64 // centroid weight multiplier, 1 unless down-weighted
}

// NewPixel returns a pixel with unit Scale.
func NewPixel(x, y int, value float64) Pixel {
	return Pixel{X: x, Y: y, Value: value, Scale: 1}
}

// Point returns the pixel position.
func (p Pixel) Point() Point { return Point{X: p.X, Y: p.Y} }

// Box is an inclusive bounding rectangle in grid coordinates.
type Box struct {
	XMin, XMax int
	YMin, YMax int
}

// Width returns the number of columns spanned.
func (b Box) Width() int { return b.XMax - b.XMin + 1 }

// Height returns the number of rows spanned.
func (b Box) Height() int { return b.YMax - b.YMin + 1 }
