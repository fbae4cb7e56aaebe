package batch

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"qljs/internal/analyzer"
	"qljs/internal/diag"
	"qljs/internal/events"
	"qljs/internal/globals"
)

// FileTask is one unit of work: Produce drives an events.Visitor through a
// complete sequence of visit calls for Path, ending just before
// VisitEndOfModule (Run calls that itself once Produce returns).
type FileTask struct {
	Path    string
	Produce func(v events.Visitor) error
}

// FileResult is the outcome of analyzing one FileTask.
type FileResult struct {
	Path string
	Bag  *diag.Bag
	Err  error
}

// Options configures a batch run.
type Options struct {
	// Globals is the shared, read-only Global Declared Set every per-file
	// Analyzer consults at VisitEndOfModule (§5: analyzers share only this
	// and the config cache, never scope state).
	Globals *globals.Set
	// VarOptions applies to every file in this batch; a workspace manifest
	// with per-root overrides runs one batch.Run call per root instead.
	VarOptions     analyzer.VarOptions
	MaxDiagnostics int
	// Jobs caps concurrency; 0 means runtime.GOMAXPROCS(0).
	Jobs int
	// Sink receives progress events, if non-nil.
	Sink Sink
}

// Run analyzes every task concurrently and returns one FileResult per task,
// ordered by task Path rather than by the order of tasks, for a
// deterministic report regardless of how the caller discovered the files.
func Run(ctx context.Context, tasks []FileTask, opts Options) ([]FileResult, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	sorted := make([]FileTask, len(tasks))
	copy(sorted, tasks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(sorted) {
		jobs = len(sorted)
	}

	results := make([]FileResult, len(sorted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, task := range sorted {
		i, task := i, task
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = runOne(task, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func runOne(task FileTask, opts Options) FileResult {
	start := time.Now()
	opts.Sink.emit(Event{File: task.Path, Stage: StageProduce, Status: StatusWorking})

	bag := diag.NewBag(opts.MaxDiagnostics)
	a := analyzer.New(opts.Globals, &diag.BagReporter{Bag: bag}, opts.VarOptions)
	adapter := events.NewAdapter(a)

	if err := task.Produce(adapter); err != nil {
		opts.Sink.emit(Event{File: task.Path, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return FileResult{Path: task.Path, Bag: bag, Err: err}
	}

	opts.Sink.emit(Event{File: task.Path, Stage: StageFinalize, Status: StatusWorking})
	a.VisitEndOfModule()

	opts.Sink.emit(Event{File: task.Path, Status: StatusDone, Elapsed: time.Since(start)})
	return FileResult{Path: task.Path, Bag: bag}
}
