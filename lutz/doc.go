// Package lutz implements single-pass, row-streaming connected-component
// labeling (Lutz's one-pass algorithm) over a thresholded 2-D grid.
//
// What:
//
//   - Labeler scans a grid.Classifier row by row and emits 8-connected
//     groups of foreground pixels as *blob.Object values.
//   - No label image is ever built. The scan keeps one marker per column
//     (the row above's segment boundaries), a stack of open object slots,
//     a stack of saved "previous row" statuses and a pending-merge buffer
//     keyed by column.
//   - Objects smaller than the configured minimum are dropped.
//
// How the scan works:
//
// Every column of every row (plus one synthetic column past the right edge)
// first reads and clears the marker the previous row left there, then:
//
//	foreground, run not open   -> start a segment (marks S or s)
//	foreground                 -> resolve the old marker, append the pixel
//	background                 -> resolve the old marker, close an open run
//	                              (marks f if the object may continue, F if
//	                              this branch of it is finished)
//
// Markers left by the row above are resolved as:
//
//	S  an object started above: open a slot, pull its pending pixels
//	s  another segment of an object already seen on this row; if the
//	   current run was opened as a separate object the two slots merge
//	f  the segment above ended but its object continues elsewhere
//	F  the object above ended: flush it if nothing on this row touched it,
//	   otherwise park it in the pending buffer for the next row
//
// Pending fragments left after the last row are emitted.
//
// Memory: O(W) besides the pixels of open objects.
// Time:   O(W×H).
//
// Errors:
//
//   - ErrConfiguration: bad dimensions, nil accessor or NaN threshold
//     (wraps the grid sentinel). Returned before any scanning.
//   - ErrOptionViolation: an Option carried an invalid value.
//   - ErrObjectIndex: Object(i) outside [0, ObjectCount()).
//   - ErrInvariant: the marker/stack protocol was violated. The returned
//     *InvariantError carries the row, column, slot and stack depth. This
//     is a defect in the scanner, never a property of the input.
//
// Concurrency:
//
//	A Labeler is not safe for concurrent use. Independent Labelers share no
//	state and may scan different grids in parallel (see package batch).
package lutz
