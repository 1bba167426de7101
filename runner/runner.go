package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/accumulators"
	berrors "github.com/go-sif/bucketsum/errors"
	"github.com/go-sif/bucketsum/internal/stats"
	iutil "github.com/go-sif/bucketsum/internal/util"
	"github.com/go-sif/bucketsum/logging"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const logSource = "runner"

// Run folds every source of a DataSource into NumBuckets slots, according to opts.Strategy.
// Run returns no Result if any source fails: there are no partial results.
func Run(ctx context.Context, source bucketsum.DataSource, parser bucketsum.Parser, opts *Options) (*Result, error) {
	if source == nil {
		return nil, fmt.Errorf("DataSource cannot be nil")
	}
	if parser == nil {
		return nil, fmt.Errorf("Parser cannot be nil")
	}
	r, err := newRun(source, parser, opts)
	if err != nil {
		return nil, err
	}
	r.logger.Logf(logging.InfoLevel, logSource, "Running %d sources with strategy %s", len(r.loaders), r.opts.Strategy)
	r.stats.Start()
	defer r.stats.Finish()

	var res *Result
	switch r.opts.Strategy {
	case Sequential:
		res, err = r.runSequential(ctx, accumulators.Adder())
	case Combined:
		res, err = r.runSequential(ctx, combinedTotals())
	case Private:
		res, err = r.runPrivate(ctx)
	case Shared:
		res, err = r.runShared(ctx)
	}
	if err != nil {
		r.logger.Logf(logging.ErrorLevel, logSource, "Run failed: %v", err)
		return nil, err
	}
	r.stats.Finish()
	res.Stats = r.stats
	r.logger.Logf(logging.InfoLevel, logSource, "Folded %d records from %d sources in %s", r.stats.GetNumRecordsProcessed(), r.stats.GetNumSourcesProcessed(), r.stats.GetRuntime())
	return res, nil
}

var combinedTotals = accumulators.Combiner(accumulators.LiftTotal)

// newRun validates opts, filling in defaults, and lists the sources to fold
func newRun(source bucketsum.DataSource, parser bucketsum.Parser, opts *Options) (*run, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := ensureDefaultOptionsValues(opts); err != nil {
		return nil, err
	}
	sourceMap, err := source.Analyze()
	if err != nil {
		return nil, err
	}
	var loaders []bucketsum.SourceLoader
	for sourceMap.HasNext() {
		loaders = append(loaders, sourceMap.Next())
	}
	return &run{
		parser:  parser,
		opts:    opts,
		logger:  opts.Logger,
		loaders: loaders,
		stats:   &stats.RunStatistics{},
	}, nil
}

type run struct {
	parser  bucketsum.Parser
	opts    *Options
	logger  *logging.Logger
	loaders []bucketsum.SourceLoader
	stats   *stats.RunStatistics
}

// runSequential processes every source in order, on the calling goroutine
func (r *run) runSequential(ctx context.Context, acc bucketsum.Accumulator) (*Result, error) {
	for _, loader := range r.loaders {
		err := iutil.SafeSourceOperation(loader.Name(), func() error {
			return r.processSource(ctx, logSource, loader, acc)
		})()
		if err != nil {
			return nil, err
		}
	}
	return &Result{Total: acc.Sums()}, nil
}

// runPrivate gives each worker its own accumulator, then reduces them once every worker has finished
func (r *run) runPrivate(ctx context.Context) (*Result, error) {
	partials := make([]bucketsum.Accumulator, len(r.loaders))
	err := r.fanOut(ctx, func(ctx context.Context, workerID string, i int, loader bucketsum.SourceLoader) error {
		acc := accumulators.Adder()
		if err := r.processSource(ctx, workerID, loader, acc); err != nil {
			return err
		}
		partials[i] = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	total := accumulators.Adder()
	res := &Result{Partials: make([]Partial, len(partials))}
	for i, acc := range partials {
		if err := total.Merge(acc); err != nil {
			return nil, err
		}
		res.Partials[i] = Partial{Source: r.loaders[i].Name(), Sums: acc.Sums()}
	}
	res.Total = total.Sums()
	return res, nil
}

// runShared gives every worker the same accumulator, guarded by per-slot locks
func (r *run) runShared(ctx context.Context) (*Result, error) {
	acc := accumulators.SharedAdder()
	err := r.fanOut(ctx, func(ctx context.Context, workerID string, i int, loader bucketsum.SourceLoader) error {
		return r.processSource(ctx, workerID, loader, acc)
	})
	if err != nil {
		return nil, err
	}
	return &Result{Total: acc.Sums()}, nil
}

type workFunc func(ctx context.Context, workerID string, i int, loader bucketsum.SourceLoader) error

// fanOut runs work once per source, each on its own worker, and blocks until every worker has
// finished. The first failure cancels the remaining workers. Every failure which is not
// merely the result of that cancellation is gathered into the returned error.
func (r *run) fanOut(ctx context.Context, work workFunc) error {
	workerIDs := make([]string, len(r.loaders))
	for i := range workerIDs {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate worker id: %w", err)
		}
		workerIDs[i] = id.String()
	}
	var limit *semaphore.Weighted
	if r.opts.MaxWorkers > 0 {
		limit = semaphore.NewWeighted(int64(r.opts.MaxWorkers))
	}
	g, gctx := errgroup.WithContext(ctx)
	var failuresLock sync.Mutex
	var failures *multierror.Error
	for i, loader := range r.loaders {
		i, loader := i, loader
		if limit != nil {
			if err := limit.Acquire(gctx, 1); err != nil {
				// a worker has failed, or ctx is done; don't start any more
				break
			}
		}
		workerID := workerIDs[i]
		r.logger.Logf(logging.DebugLevel, logSource, "Assigning source %q to worker %s", loader.Name(), workerID)
		g.Go(func() error {
			if limit != nil {
				defer limit.Release(1)
			}
			err := iutil.SafeSourceOperation(loader.Name(), func() error {
				return work(gctx, workerID, i, loader)
			})()
			if err == nil {
				return nil
			}
			if !isCancellation(err) {
				r.logger.Logf(logging.ErrorLevel, workerID, "Failed on source %q: %v", loader.Name(), err)
				failuresLock.Lock()
				failures = multierror.Append(failures, err)
				failuresLock.Unlock()
			}
			return err
		})
	}
	// join-all barrier; failures are reported through the multierror rather than the first error
	_ = g.Wait()
	if failures != nil {
		failures.ErrorFormat = iutil.FormatMultiError
		return failures
	}
	return ctx.Err()
}

// processSource folds every Record of a source into acc
func (r *run) processSource(ctx context.Context, workerID string, loader bucketsum.SourceLoader, acc bucketsum.Accumulator) error {
	r.logger.Logf(logging.DebugLevel, workerID, "Loading source %q", loader.Name())
	it, err := loader.Load(r.parser)
	if err != nil {
		return err
	}
	defer it.Close()
	line := 0
	for it.HasNextRecord() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line++
		rec, err := it.NextRecord()
		if err != nil {
			return err
		}
		if err := acc.Accumulate(rec); err != nil {
			return &berrors.SourceError{Source: loader.Name(), Line: line, Err: err}
		}
		r.stats.EndRecord()
		if r.logger.Enabled(logging.TraceLevel) {
			r.logger.Logf(logging.TraceLevel, workerID, "%s:%d: folded %d into slot %d", loader.Name(), line, rec.Value, rec.Key)
		}
	}
	r.stats.EndSource()
	r.logger.Logf(logging.DebugLevel, workerID, "Finished source %q after %d records", loader.Name(), line)
	return nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
