package execution

import (
	"context"
	"sync"
	"time"

	"harn/internal/config"
	"harn/internal/domain"
	"harn/internal/ui"
)

// WorkerPool manages a pool of workers for parallel test execution.
// Every test case reads and writes only its own index-derived files, so
// workers never contend on anything beyond the progress counters, and the
// result slice stays aligned with the input index order.
type WorkerPool struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner) *WorkerPool {
	return &WorkerPool{
		config: cfg,
		runner: runner,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute runs the given test indices and returns one result per index,
// in input order. With one worker the behavior is strictly sequential.
func (wp *WorkerPool) Execute(ctx context.Context, indices []int) ([]domain.TestResult, time.Duration, error) {
	if len(indices) == 0 {
		return nil, 0, nil
	}

	slots := make(chan int, len(indices))
	for slot := range indices {
		slots <- slot
	}
	close(slots)

	results := make([]domain.TestResult, len(indices))

	var mu sync.Mutex
	var completed, passed, failed int
	startTime := time.Now()

	workerCount := wp.config.Processors
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(indices) {
		workerCount = len(indices)
	}

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for slot := range slots {
				result := wp.runner.Run(ctx, indices[slot])
				results[slot] = result

				mu.Lock()
				completed++
				if result.Passed() {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passed, failed)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}
	return results, time.Since(startTime), nil
}
