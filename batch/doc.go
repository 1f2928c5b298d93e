// Package batch scans many independent grids concurrently.
//
// A single scan is strictly sequential, so parallelism only exists across
// grids: every Job gets its own lutz.Labeler and nothing is shared between
// them. Jobs are fanned out with errgroup under a worker limit. The context
// is checked before each job starts; a scan that has started always runs to
// completion.
package batch
