package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/grid"
	"github.com/katalvlaran/blobscan/lutz"
)

// Sentinel errors for batch scans.
var (
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("batch: invalid option supplied")
	// ErrNoJobs indicates an empty job list.
	ErrNoJobs = errors.New("batch: no jobs")
)

// Job is one grid to scan.
type Job struct {
	Name          string
	Source        grid.Accessor
	Width, Height int
	Options       []lutz.Option
}

// Result is the outcome of one Job.
type Result struct {
	Name    string
	Objects []*blob.Object
	Stats   lutz.Stats
	Elapsed time.Duration
	Err     error
}

// Option configures Scan.
type Option func(*options)

type options struct {
	workers int
	logger  *slog.Logger
	err     error
}

// WithWorkers caps concurrent scans. n < 1 is a violation.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithLogger routes per-job logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Scan runs every job and returns results in job order.
//
// A job whose configuration or scan fails records the error in its Result
// and does not stop the others. The returned error is the context error if
// ctx ended before all jobs started, or the first job error otherwise.
func Scan(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	o := options{workers: runtime.GOMAXPROCS(0), logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Name: job.Name, Err: err}
				return err
			}
			results[i] = scanOne(job, o.logger)
			// job failures are reported per result, not as group errors
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	for _, r := range results {
		if r.Err != nil {
			return results, fmt.Errorf("batch: job %q: %w", r.Name, r.Err)
		}
	}
	return results, nil
}

func scanOne(job Job, log *slog.Logger) Result {
	start := time.Now()
	res := Result{Name: job.Name}

	opts := append([]lutz.Option{lutz.WithLogger(log.With("job", job.Name))}, job.Options...)
	l, err := lutz.New(job.Source, job.Width, job.Height, opts...)
	if err != nil {
		res.Err = err
		return res
	}
	if err := l.Run(); err != nil {
		res.Err = err
		return res
	}
	res.Objects = l.Objects()
	res.Stats = l.Stats()
	res.Elapsed = time.Since(start)
	log.Info("batch: job done", "job", job.Name, "objects", len(res.Objects), "elapsed", res.Elapsed)
	return res
}
