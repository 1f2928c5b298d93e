// Package blob defines the pixel record and the Object aggregate produced
// by a connected-component scan.
//
// An Object is an unordered set of pixels keyed by position. Summary state
// (bounding box, value range, running sum) is kept consistent with the pixel
// set on every mutation, so reads are O(1):
//
//	obj := blob.New()
//	obj.Add(blob.NewPixel(3, 4, 12.5))
//	box := obj.BoundingBox()      // {3 3 4 4}
//	cx, cy := obj.Centroid(true)  // value-weighted
//
// Adding a pixel at a position already present is a no-op.
//
// Weighted centroid: each pixel contributes Scale*Value. If that
// denominator is not positive the unweighted (Scale-only) centroid is
// returned instead.
//
// Objects are not safe for concurrent mutation.
package blob
