package lutz

import (
	"fmt"

	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/grid"
)

// Stats summarises the last Run.
type Stats struct {
	Rows       int // rows scanned
	Foreground int // foreground pixels seen
	Emitted    int // objects kept
	Discarded  int // objects dropped by the size filter
	PeakSlots  int // most object slots open at once
	PeakDepth  int // deepest saved-status stack
}

// Labeler finds 8-connected objects in one grid per Run.
type Labeler struct {
	cls     *grid.Classifier
	opts    Options
	objects []*blob.Object
	stats   Stats
}

// New validates the grid and options and returns a ready Labeler.
// Nothing is scanned until Run.
// Returns ErrOptionViolation or ErrConfiguration (wrapping the grid
// sentinel: ErrNilAccessor, ErrBadShape, ErrNaNThreshold).
func New(src grid.Accessor, width, height int, opts ...Option) (*Labeler, error) {
	cls, o, err := configure(src, width, height, opts)
	if err != nil {
		return nil, err
	}
	return &Labeler{cls: cls, opts: o}, nil
}

// Reconfigure swaps the grid and options. On error the Labeler keeps its
// previous configuration and results.
func (l *Labeler) Reconfigure(src grid.Accessor, width, height int, opts ...Option) error {
	cls, o, err := configure(src, width, height, opts)
	if err != nil {
		return err
	}
	l.cls, l.opts = cls, o
	l.objects, l.stats = nil, Stats{}
	return nil
}

func configure(src grid.Accessor, width, height int, opts []Option) (*grid.Classifier, Options, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, Options{}, err
	}
	cls, err := grid.NewClassifier(src, width, height, o.Threshold)
	if err != nil {
		return nil, Options{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return cls, o, nil
}

// Run scans the whole grid, replacing the results of any earlier run.
// The only error is an *InvariantError (errors.Is(err, ErrInvariant));
// results are cleared in that case.
// Complexity: O(W×H) time, O(W) working memory plus open-object pixels.
func (l *Labeler) Run() (err error) {
	l.objects = l.objects[:0]
	l.stats = Stats{}
	log := l.opts.Logger
	log.Debug("lutz: scan start",
		"width", l.cls.Width(), "height", l.cls.Height(),
		"threshold", l.cls.Threshold(), "min_pixels", l.opts.MinPixels)

	s := newScanner(l.cls, l.keep)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		log.Error("lutz: scan aborted", "err", ie)
		l.objects = nil
		l.stats = Stats{}
		err = ie
	}()

	s.run()

	s.stats.Emitted, s.stats.Discarded = l.stats.Emitted, l.stats.Discarded
	l.stats = s.stats
	log.Debug("lutz: scan done",
		"objects", l.stats.Emitted, "discarded", l.stats.Discarded,
		"foreground", l.stats.Foreground,
		"peak_slots", l.stats.PeakSlots, "peak_depth", l.stats.PeakDepth)
	return nil
}

// keep turns a finished fragment into an Object unless the size filter
// rejects it.
func (l *Labeler) keep(px []blob.Pixel) {
	if len(px) == 0 {
		return
	}
	if len(px) < l.opts.MinPixels {
		l.stats.Discarded++
		return
	}
	obj := blob.FromPixels(px...)
	l.objects = append(l.objects, obj)
	l.stats.Emitted++
	if l.opts.OnObject != nil {
		l.opts.OnObject(obj)
	}
}

// ObjectCount returns the number of objects found by the last Run.
func (l *Labeler) ObjectCount() int { return len(l.objects) }

// Object returns object i of the last Run.
func (l *Labeler) Object(i int) (*blob.Object, error) {
	if i < 0 || i >= len(l.objects) {
		return nil, fmt.Errorf("%w: %d of %d", ErrObjectIndex, i, len(l.objects))
	}
	return l.objects[i], nil
}

// Objects returns the objects of the last Run in emission order. The slice
// is a copy; the objects are shared.
func (l *Labeler) Objects() []*blob.Object {
	out := make([]*blob.Object, len(l.objects))
	copy(out, l.objects)
	return out
}

// Stats returns counters from the last Run.
func (l *Labeler) Stats() Stats { return l.stats }

// Width returns the configured grid width.
func (l *Labeler) Width() int { return l.cls.Width() }

// Height returns the configured grid height.
func (l *Labeler) Height() int { return l.cls.Height() }
