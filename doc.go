// Package blobscan finds connected objects in 2-D scalar fields in a single
// pass over the rows.
//
// What is blobscan?
//
//	A row-streaming labeler for images and numeric grids. A pixel is
//	foreground when its value is strictly above a threshold; foreground
//	pixels that touch, diagonals included, form one object. Each object
//	carries its pixels plus a running summary:
//		• bounding box
//		• value range and sum
//		• plain and value-weighted centroids
//
// How does it work?
//
//	The lutz package implements Lutz's one-pass algorithm. Only one row of
//	markers, two small stacks and the pixels of still-open objects are kept,
//	so working memory is O(width) plus object pixels, and every object is
//	handed over the moment the scan proves it cannot grow any more.
//
// Packages:
//
//	grid/     : accessors (slices, gonum matrices, images, CSV) + threshold classifier
//	blob/     : Pixel and Object with incrementally maintained summaries
//	lutz/     : the one-pass labeler, options, invariant errors
//	floodfill/: BFS reference labeler used to cross-check results
//	batch/    : many independent grids scanned concurrently
//	config/   : YAML/JSON scan settings
//	report/   : JSON, YAML and table summaries; object plots
//	cmd/blobscan: command-line front end
//
// Quick ASCII example (threshold 0.5):
//
//	#.#
//	#.#      -> 1 object, 7 pixels, centroid (1.00, 1.14)
//	###
//
//	go install github.com/katalvlaran/blobscan/cmd/blobscan@latest
package blobscan
