package blob

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Object is a set of pixels with incrementally maintained summary fields.
// The zero value is not usable; call New or FromPixels.
type Object struct {
	pixels []Pixel
	index  map[Point]int // position -> slot in pixels

	box        Box
	vmin, vmax float64
	sum        float64
}

// New returns an empty Object.
func New() *Object {
	o := &Object{index: make(map[Point]int)}
	o.resetSummary()
	return o
}

// FromPixels returns an Object holding px, duplicates dropped.
func FromPixels(px ...Pixel) *Object {
	o := New()
	o.AddAll(px)
	return o
}

// resetSummary puts the summary into its empty state so the first Add
// overwrites every field.
func (o *Object) resetSummary() {
	o.box = Box{XMin: math.MaxInt, XMax: math.MinInt, YMin: math.MaxInt, YMax: math.MinInt}
	o.vmin = math.Inf(1)
	o.vmax = math.Inf(-1)
	o.sum = 0
}

// absorb folds p into the summary.
func (o *Object) absorb(p Pixel) {
	o.box.XMin = min(o.box.XMin, p.X)
	o.box.XMax = max(o.box.XMax, p.X)
	o.box.YMin = min(o.box.YMin, p.Y)
	o.box.YMax = max(o.box.YMax, p.Y)
	o.vmin = math.Min(o.vmin, p.Value)
	o.vmax = math.Max(o.vmax, p.Value)
	o.sum += p.Value
}

// Add inserts p unless its position is already present.
// Reports whether p was inserted.
// Complexity: O(1) amortized.
func (o *Object) Add(p Pixel) bool {
	pt := p.Point()
	if _, ok := o.index[pt]; ok {
		return false
	}
	o.index[pt] = len(o.pixels)
	o.pixels = append(o.pixels, p)
	o.absorb(p)
	return true
}

// AddAll inserts every pixel of px and returns how many were new.
func (o *Object) AddAll(px []Pixel) int {
	n := 0
	for _, p := range px {
		if o.Add(p) {
			n++
		}
	}
	return n
}

// Merge copies every pixel of other into o and returns how many were new.
// other is left unchanged.
func (o *Object) Merge(other *Object) int {
	if other == nil {
		return 0
	}
	return o.AddAll(other.pixels)
}

// Remove deletes the pixel at index i and rebuilds the summary.
// Pixel order after i is preserved.
// Complexity: O(n).
func (o *Object) Remove(i int) error {
	if i < 0 || i >= len(o.pixels) {
		return fmt.Errorf("%w: %d of %d", ErrPixelIndex, i, len(o.pixels))
	}
	o.pixels = append(o.pixels[:i], o.pixels[i+1:]...)
	o.reindex()
	return nil
}

// reindex rebuilds the position index and summary from o.pixels.
func (o *Object) reindex() {
	clear(o.index)
	o.resetSummary()
	for i, p := range o.pixels {
		o.index[p.Point()] = i
		o.absorb(p)
	}
}

// Clear empties the Object, keeping allocated capacity.
func (o *Object) Clear() {
	o.pixels = o.pixels[:0]
	clear(o.index)
	o.resetSummary()
}

// PixelCount returns the number of pixels.
func (o *Object) PixelCount() int { return len(o.pixels) }

// Empty reports whether the Object holds no pixels.
func (o *Object) Empty() bool { return len(o.pixels) == 0 }

// Pixel returns the pixel at index i.
func (o *Object) Pixel(i int) (Pixel, error) {
	if i < 0 || i >= len(o.pixels) {
		return Pixel{}, fmt.Errorf("%w: %d of %d", ErrPixelIndex, i, len(o.pixels))
	}
	return o.pixels[i], nil
}

// Pixels returns a copy of the pixel slice in insertion (or sorted) order.
func (o *Object) Pixels() []Pixel {
	out := make([]Pixel, len(o.pixels))
	copy(out, o.pixels)
	return out
}

// SetScale changes the centroid weight multiplier of pixel i.
func (o *Object) SetScale(i int, scale float64) error {
	if i < 0 || i >= len(o.pixels) {
		return fmt.Errorf("%w: %d of %d", ErrPixelIndex, i, len(o.pixels))
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("%w: %v", ErrBadScale, scale)
	}
	o.pixels[i].Scale = scale
	return nil
}

// BoundingBox returns the inclusive box around all pixels.
// An empty Object yields the zero Box; check Empty first.
func (o *Object) BoundingBox() Box {
	if o.Empty() {
		return Box{}
	}
	return o.box
}

// ValueRange returns the minimum and maximum pixel value, or (0,0) when empty.
func (o *Object) ValueRange() (lo, hi float64) {
	if o.Empty() {
		return 0, 0
	}
	return o.vmin, o.vmax
}

// Sum returns the sum of pixel values.
func (o *Object) Sum() float64 { return o.sum }

// Centroid returns the mean pixel position weighted by Scale, and by
// Scale*Value when weighted is true. A weighted request whose total weight
// is not positive falls back to the unweighted centroid.
// An empty Object yields (0,0).
// Complexity: O(n).
func (o *Object) Centroid(weighted bool) (x, y float64) {
	n := len(o.pixels)
	if n == 0 {
		return 0, 0
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	ws := make([]float64, n)
	for i, p := range o.pixels {
		xs[i], ys[i] = float64(p.X), float64(p.Y)
		ws[i] = p.Scale
		if weighted {
			ws[i] *= p.Value
		}
	}
	total := floats.Sum(ws)
	if !(total > 0) {
		if weighted {
			return o.Centroid(false)
		}
		// every scale is zero: plain geometric mean
		return floats.Sum(xs) / float64(n), floats.Sum(ys) / float64(n)
	}
	return floats.Dot(ws, xs) / total, floats.Dot(ws, ys) / total
}

// Contains reports whether a pixel exists at (x,y).
// Complexity: O(1).
func (o *Object) Contains(x, y int) bool {
	_, ok := o.index[Point{X: x, Y: y}]
	return ok
}

// Overlaps reports whether o and other share at least one position.
// Complexity: O(min(|o|,|other|)).
func (o *Object) Overlaps(other *Object) bool {
	if other == nil {
		return false
	}
	small, large := o, other
	if len(large.pixels) < len(small.pixels) {
		small, large = large, small
	}
	for _, p := range small.pixels {
		if _, ok := large.index[p.Point()]; ok {
			return true
		}
	}
	return false
}

// SortByValue orders pixels by ascending value; ties keep insertion order.
func (o *Object) SortByValue() {
	sort.SliceStable(o.pixels, func(i, j int) bool {
		return o.pixels[i].Value < o.pixels[j].Value
	})
	for i, p := range o.pixels {
		o.index[p.Point()] = i
	}
}

// Positions returns all pixel positions ordered by row, then column.
func (o *Object) Positions() []Point {
	pts := make([]Point, len(o.pixels))
	for i, p := range o.pixels {
		pts[i] = p.Point()
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}
