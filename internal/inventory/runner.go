package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"symbol-inventory/internal/classify"
	"symbol-inventory/internal/diagnostic"
	"symbol-inventory/internal/source"
)

// Options configures a Runner.
type Options struct {
	// Workers is the number of classifying goroutines; values below 2 run inline.
	Workers int
	// Classify is passed to every Classifier.
	Classify classify.Options
}

// Runner classifies every name produced by a Source.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{opts: opts, logger: logger}
}

// partition is the state owned by one worker.
type partition struct {
	classifier *classify.Classifier
	diags      diagnostic.Diagnostics
	names      int
	skipped    int
}

func (r *Runner) newPartition() *partition {
	return &partition{classifier: classify.New(r.opts.Classify)}
}

func (r *Runner) classify(ctx context.Context, p *partition, raw string) {
	p.names++

	res, err := p.classifier.Classify(raw)
	if err != nil {
		p.skipped++
		p.diags.AddWarning(diagnostic.CodeMalformedName, err.Error(), raw)
		r.logger.DebugContext(ctx, "skipped malformed name", "name", raw, "error", err)

		return
	}

	r.logger.DebugContext(ctx, "classified name",
		"name", raw,
		"package", res.Package,
		"class", res.Class,
	)
}

// Run consumes src and returns the classified registries.
func (r *Runner) Run(ctx context.Context, src source.Source) (*Result, error) {
	start := time.Now()
	r.logger.InfoContext(ctx, "reading names, this may take a while", "workers", max(r.opts.Workers, 1))

	var (
		parts     []*partition
		summaries diagnostic.Diagnostics
		err       error
	)

	if r.opts.Workers > 1 {
		parts, summaries, err = r.runParallel(ctx, src)
	} else {
		var p *partition
		p, summaries, err = r.runSequential(ctx, src)
		parts = []*partition{p}
	}

	if err != nil {
		r.logger.ErrorContext(ctx, "inventory failed", "error", err)
		return nil, fmt.Errorf("inventory: %w", err)
	}

	result := r.merge(parts)
	result.Diagnostics.Merge(summaries)

	r.logger.InfoContext(ctx, "inventory complete",
		"names", result.Names,
		"skipped", result.Skipped,
		"packages", result.packages.Len(),
		"classes", result.classes.Len(),
		"elapsed", time.Since(start),
	)

	return result, nil
}

// read feeds every name of src to emit, one part of a Concat at a time, and
// returns a name count per part.
func (r *Runner) read(ctx context.Context, src source.Source, emit func(string) error) (diagnostic.Diagnostics, error) {
	var summaries diagnostic.Diagnostics

	for _, part := range source.Parts(src) {
		count := 0

		for raw, err := range part.Names(ctx) {
			if err != nil {
				return summaries, err
			}

			if err := emit(raw); err != nil {
				return summaries, err
			}

			count++
		}

		// A source may stop early on cancellation without reporting it.
		if err := ctx.Err(); err != nil {
			return summaries, err
		}

		label := source.Describe(part)
		summaries.AddInfo(diagnostic.CodeSourceSummary, fmt.Sprintf("%d names", count), label)
		r.logger.InfoContext(ctx, "source read", "source", label, "names", count)
	}

	return summaries, nil
}

func (r *Runner) runSequential(ctx context.Context, src source.Source) (*partition, diagnostic.Diagnostics, error) {
	p := r.newPartition()

	summaries, err := r.read(ctx, src, func(raw string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.classify(ctx, p, raw)

		return nil
	})
	if err != nil {
		return nil, summaries, err
	}

	return p, summaries, nil
}

func (r *Runner) runParallel(ctx context.Context, src source.Source) ([]*partition, diagnostic.Diagnostics, error) {
	g, gctx := errgroup.WithContext(ctx)
	names := make(chan string, r.opts.Workers*4)

	var summaries diagnostic.Diagnostics

	g.Go(func() error {
		defer close(names)

		var err error
		summaries, err = r.read(gctx, src, func(raw string) error {
			select {
			case names <- raw:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})

		return err
	})

	parts := make([]*partition, r.opts.Workers)
	for i := range parts {
		parts[i] = r.newPartition()

		g.Go(func() error {
			for raw := range names {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				r.classify(gctx, parts[i], raw)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, summaries, err
	}

	// errgroup cancels gctx after Wait; only the parent context matters here.
	if err := ctx.Err(); err != nil {
		return nil, summaries, err
	}

	return parts, summaries, nil
}

// merge folds the per-worker classifiers into one Result.
func (r *Runner) merge(parts []*partition) *Result {
	merged := classify.New(r.opts.Classify)
	result := &Result{}

	for _, p := range parts {
		merged.Merge(p.classifier)
		result.Diagnostics.Merge(p.diags)
		result.Names += p.names
		result.Skipped += p.skipped
	}

	result.packages = merged.Packages()
	result.classes = merged.Classes()

	slices.SortStableFunc(result.Diagnostics.Warnings, func(a, b diagnostic.Diagnostic) int {
		return strings.Compare(a.Name, b.Name)
	})

	return result
}

// IsSourceFailure reports whether err comes from a Source that could not
// enumerate names.
func IsSourceFailure(err error) bool {
	return errors.Is(err, source.ErrSourceFailed)
}
