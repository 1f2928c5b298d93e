// Package report summarises labeled objects for people and tools.
//
// Build turns a scan result into a Report: a run ID plus one ObjectSummary per
// object. Reports serialise to JSON, YAML or an aligned text table, and Plot
// renders object pixels and centroids to an image file with gonum/plot.
package report
