// Command blobscan labels 8-connected objects in images and CSV grids.
//
// Usage:
//
//	blobscan [flags] input...
//
// Each input is an image (png, jpeg, gif, tiff, bmp) scaled to [0,1] by
// luminance, or a .csv file of numbers. Flags override values from -config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/katalvlaran/blobscan/batch"
	"github.com/katalvlaran/blobscan/config"
	"github.com/katalvlaran/blobscan/floodfill"
	"github.com/katalvlaran/blobscan/grid"
	"github.com/katalvlaran/blobscan/report"
)

var errUsage = errors.New("blobscan: at least one input is required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("blobscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "scan configuration file (.yaml, .yml or .json)")
	threshold := fs.Float64("threshold", 0, "foreground when value > threshold")
	minPixels := fs.Int("min-pixels", 0, "drop objects with fewer pixels")
	workers := fs.Int("workers", 1, "inputs scanned concurrently")
	format := fs.String("format", config.FormatTable, "output format: table, json, yaml")
	plotPath := fs.String("plot", "", "write an object plot to this file (png, svg, pdf)")
	verify := fs.Bool("verify", false, "cross-check every result against a flood fill")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: blobscan [flags] input...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Defaults()
	if *cfgPath != "" {
		fileCfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Error("load config", "err", err)
			return 1
		}
		cfg.Merge(fileCfg)
	}
	// explicit flags win over the file
	flagCfg := &config.Config{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			flagCfg.Threshold = threshold
		case "min-pixels":
			flagCfg.MinPixels = minPixels
		case "workers":
			flagCfg.Workers = workers
		case "format":
			flagCfg.Format = format
		case "plot":
			flagCfg.Plot = plotPath
		case "verify":
			flagCfg.Verify = verify
		}
	})
	cfg.Merge(flagCfg)
	if err := cfg.Validate(); err != nil {
		log.Error("bad flags", "err", err)
		return 1
	}

	if fs.NArg() == 0 {
		log.Error("no inputs", "err", errUsage)
		fs.Usage()
		return 2
	}

	if err := scan(ctx, cfg, fs.Args(), stdout, log); err != nil {
		log.Error("scan failed", "err", err)
		return 1
	}
	return 0
}

// scan loads every input, labels them as one batch and writes the reports.
func scan(ctx context.Context, cfg *config.Config, inputs []string, out io.Writer, log *slog.Logger) error {
	jobs := make([]batch.Job, 0, len(inputs))
	for _, in := range inputs {
		src, err := load(in)
		if err != nil {
			return err
		}
		w, h := src.Dims()
		jobs = append(jobs, batch.Job{
			Name:    in,
			Source:  src,
			Width:   w,
			Height:  h,
			Options: cfg.LabelerOptions(),
		})
	}

	opts := append(cfg.BatchOptions(), batch.WithLogger(log))
	results, err := batch.Scan(ctx, jobs, opts...)
	if err != nil {
		return err
	}

	for i, res := range results {
		job := jobs[i]
		if cfg.GetVerify() {
			if err := verify(job, cfg, res); err != nil {
				return err
			}
			log.Info("verified against flood fill", "input", job.Name)
		}
		if p := cfg.GetPlot(); p != "" {
			path := plotFile(p, job.Name, len(jobs))
			if err := report.Plot(res.Objects, job.Width, job.Height, path); err != nil {
				return err
			}
			log.Info("plot written", "input", job.Name, "path", path)
		}
		rep := report.Build(job.Name, res.Objects).WithStats(res.Stats)
		if err := rep.Write(out, cfg.GetFormat()); err != nil {
			return err
		}
	}
	return nil
}

// load picks a loader from the file extension.
func load(path string) (grid.Sized, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return grid.LoadCSV(path)
	}
	return grid.LoadImage(path)
}

func verify(job batch.Job, cfg *config.Config, res batch.Result) error {
	cls, err := grid.NewClassifier(job.Source, job.Width, job.Height, cfg.GetThreshold())
	if err != nil {
		return err
	}
	want := floodfill.Components(cls, cfg.GetMinPixels())
	if err := floodfill.Equivalent(res.Objects, want); err != nil {
		return fmt.Errorf("%s: %w", job.Name, err)
	}
	return nil
}

// plotFile returns base unchanged for a single input, otherwise base with
// the input's name inserted before the extension.
func plotFile(base, input string, inputs int) string {
	if inputs == 1 {
		return base
	}
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return strings.TrimSuffix(base, ext) + "-" + name + ext
}
