package lutz

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/blobscan/blob"
)

// Defaults applied when no Option overrides them.
const (
	// DefaultThreshold: any positive sample is foreground.
	DefaultThreshold = 0.0
	// DefaultMinPixels: keep every object.
	DefaultMinPixels = 0
)

// Option configures a Labeler. An invalid value is recorded and surfaced
// as ErrOptionViolation by New or Reconfigure.
type Option func(*Options)

// Options holds labeler parameters.
type Options struct {
	// Threshold: a pixel is foreground iff its value > Threshold.
	Threshold float64
	// MinPixels: objects with fewer pixels are discarded.
	MinPixels int
	// Logger receives run-level debug records.
	Logger *slog.Logger
	// OnObject, if set, is called for every kept object in emission order.
	OnObject func(*blob.Object)

	err error
}

// DefaultOptions returns threshold 0, no size filter, a discarding logger
// and no hook.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		MinPixels: DefaultMinPixels,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithThreshold sets the detection threshold. NaN is a violation.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) {
			o.err = fmt.Errorf("%w: threshold is NaN", ErrOptionViolation)
			return
		}
		o.Threshold = t
	}
}

// WithMinPixels sets the minimum object size.
//
//	n > 0: drop objects with fewer than n pixels
//	n == 0: keep everything
//	n < 0: invalid option → ErrOptionViolation
func WithMinPixels(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinPixels cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinPixels = n
	}
}

// WithLogger routes run-level logs to l. nil keeps the current logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnObject registers a callback for each kept object.
func WithOnObject(fn func(*blob.Object)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnObject = fn
		}
	}
}

// gatherOptions applies opts over defaults and returns the first violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return Options{}, o.err
		}
	}
	return o, nil
}
