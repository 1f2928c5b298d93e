// Package grid supplies the read side of a blob scan: a read-only 2-D
// accessor over numeric samples and the Classifier that turns a sample into
// a foreground/background decision.
//
// What:
//
//   - Accessor is the single method a scan needs: Value(col, row).
//   - Slice, From2D, FromMatrix and FromImage adapt common layouts
//     (flat row-major buffers, [][]float64, gonum matrices, images).
//   - ReadCSV and LoadImage read grids from disk.
//   - Classifier binds an Accessor to its dimensions and a threshold;
//     a pixel is foreground iff Value(col,row) > threshold.
//
// Bounds:
//
//	Dimensions are validated once, in NewClassifier. Reading outside
//	[0,width)×[0,height) afterwards is the caller's contract violation
//	and adapters may panic on it.
//
// Errors:
//
//   - ErrNilAccessor: accessor is nil.
//   - ErrBadShape: width or height is not positive.
//   - ErrEmptyGrid: input rows/columns are empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSliceLength: flat buffer length differs from width*height.
//   - ErrNaNThreshold: threshold is NaN.
//   - ErrParse: a CSV cell is not a number.
package grid
