package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/script"
)

// Run discovers script files under opts.Paths and replays them concurrently.
// Each file gets its own editors; results come back in path order
// regardless of completion order.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logging.FromContext(ctx).Debug("replaying scripts",
		logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts.Replay)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts script.Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := replayFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func replayFile(ctx context.Context, path string, opts script.Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	scripts, err := script.Load(path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	for _, s := range scripts {
		res, err := script.Run(ctx, s, opts)
		if err != nil {
			outcome.Error = fmt.Errorf("%s: %w", path, err)
			outcome.Results = nil
			return outcome
		}
		outcome.Results = append(outcome.Results, res)
	}

	return outcome
}
