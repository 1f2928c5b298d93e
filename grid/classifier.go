package grid

import "math"

// Classifier decides foreground membership for every cell of a
// width×height grid. It is immutable once built and safe for concurrent use
// as long as the underlying Accessor is.
type Classifier struct {
	src           Accessor
	width, height int
	threshold     float64
}

// NewClassifier validates the configuration before any scan starts.
// Returns ErrNilAccessor, ErrBadShape or ErrNaNThreshold.
// Complexity: O(1).
func NewClassifier(src Accessor, width, height int, threshold float64) (*Classifier, error) {
	if src == nil {
		return nil, ErrNilAccessor
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadShape
	}
	if math.IsNaN(threshold) {
		return nil, ErrNaNThreshold
	}

	return &Classifier{src: src, width: width, height: height, threshold: threshold}, nil
}

// Value returns the raw sample at (col,row).
func (c *Classifier) Value(col, row int) float64 { return c.src.Value(col, row) }

// IsForeground reports whether the sample at (col,row) is strictly above
// the threshold. NaN samples are background.
func (c *Classifier) IsForeground(col, row int) bool {
	return c.src.Value(col, row) > c.threshold
}

// Classify returns the sample and its foreground decision with one read.
func (c *Classifier) Classify(col, row int) (float64, bool) {
	v := c.src.Value(col, row)
	return v, v > c.threshold
}

// Width returns the number of columns.
func (c *Classifier) Width() int { return c.width }

// Height returns the number of rows.
func (c *Classifier) Height() int { return c.height }

// Threshold returns the detection threshold.
func (c *Classifier) Threshold() float64 { return c.threshold }

// InBounds reports whether (col,row) lies within the grid.
// Complexity: O(1).
func (c *Classifier) InBounds(col, row int) bool {
	return col >= 0 && col < c.width && row >= 0 && row < c.height
}
