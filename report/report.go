package report

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/lutz"
)

// Bounds is an inclusive bounding box.
type Bounds struct {
	XMin int `json:"x_min" yaml:"x_min"`
	XMax int `json:"x_max" yaml:"x_max"`
	YMin int `json:"y_min" yaml:"y_min"`
	YMax int `json:"y_max" yaml:"y_max"`
}

// ObjectSummary describes one object.
type ObjectSummary struct {
	ID               string     `json:"id" yaml:"id"`
	Index            int        `json:"index" yaml:"index"`
	Pixels           int        `json:"pixels" yaml:"pixels"`
	Bounds           Bounds     `json:"bounds" yaml:"bounds"`
	Min              float64    `json:"min" yaml:"min"`
	Max              float64    `json:"max" yaml:"max"`
	Sum              float64    `json:"sum" yaml:"sum"`
	Centroid         [2]float64 `json:"centroid" yaml:"centroid"`
	WeightedCentroid [2]float64 `json:"weighted_centroid" yaml:"weighted_centroid"`
}

// Stats mirrors lutz.Stats for serialisation.
type Stats struct {
	Rows       int `json:"rows" yaml:"rows"`
	Foreground int `json:"foreground" yaml:"foreground"`
	Emitted    int `json:"emitted" yaml:"emitted"`
	Discarded  int `json:"discarded" yaml:"discarded"`
	PeakSlots  int `json:"peak_slots" yaml:"peak_slots"`
	PeakDepth  int `json:"peak_depth" yaml:"peak_depth"`
}

// Report is the summary of one scanned grid.
type Report struct {
	RunID   string          `json:"run_id" yaml:"run_id"`
	Source  string          `json:"source" yaml:"source"`
	Stats   *Stats          `json:"stats,omitempty" yaml:"stats,omitempty"`
	Objects []ObjectSummary `json:"objects" yaml:"objects"`
}

// Build summarises objs in order. Every call gets a fresh RunID and fresh
// object IDs.
func Build(source string, objs []*blob.Object) Report {
	r := Report{
		RunID:   uuid.New().String(),
		Source:  source,
		Objects: make([]ObjectSummary, 0, len(objs)),
	}
	for i, o := range objs {
		r.Objects = append(r.Objects, Summarize(i, o))
	}
	return r
}

// Summarize builds the summary of object o at position i.
func Summarize(i int, o *blob.Object) ObjectSummary {
	box := o.BoundingBox()
	lo, hi := o.ValueRange()
	cx, cy := o.Centroid(false)
	wx, wy := o.Centroid(true)
	return ObjectSummary{
		ID:               uuid.New().String(),
		Index:            i,
		Pixels:           o.PixelCount(),
		Bounds:           Bounds{XMin: box.XMin, XMax: box.XMax, YMin: box.YMin, YMax: box.YMax},
		Min:              lo,
		Max:              hi,
		Sum:              o.Sum(),
		Centroid:         [2]float64{cx, cy},
		WeightedCentroid: [2]float64{wx, wy},
	}
}

// WithStats attaches scan counters to the report.
func (r Report) WithStats(s lutz.Stats) Report {
	r.Stats = &Stats{
		Rows:       s.Rows,
		Foreground: s.Foreground,
		Emitted:    s.Emitted,
		Discarded:  s.Discarded,
		PeakSlots:  s.PeakSlots,
		PeakDepth:  s.PeakDepth,
	}
	return r
}
