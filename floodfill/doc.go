// Package floodfill labels 8-connected foreground components with a plain
// breadth-first flood fill over a grid.Classifier.
//
// It holds a visited flag per cell, so memory is O(W×H), unlike the
// streaming lutz.Labeler. It exists as an independent reference: tests and
// `blobscan -verify` compare both labelers with Equivalent.
//
// Complexity:
//
//   - Components: O(W×H×8) time, O(W×H) memory.
//   - Equivalent: O(P log P) for P labeled pixels.
package floodfill
