package execution

import (
	"context"
	"sync"
	"time"

	"ctr/internal/domain"
)

// WorkerPool runs cases on a fixed number of workers and reports results
// in case order. One worker gives a strictly sequential run.
type WorkerPool struct {
	workers  int
	failFast bool
	progress Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(workers int, failFast bool) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &WorkerPool{workers: workers, failFast: failFast}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

type indexedResult struct {
	index  int
	result domain.Result
}

// Execute runs every case through run and passes each result to emit in
// case order. With fail-fast set, no result after the first failure is
// emitted and no further case is started.
func (wp *WorkerPool) Execute(ctx context.Context, cases []domain.Case, run CaseFunc, emit func(domain.Result)) time.Duration {
	startTime := time.Now()
	if len(cases) == 0 {
		if wp.progress != nil {
			wp.progress.Finish()
		}
		return 0
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan int)
	go func() {
		defer close(queue)
		for i := range cases {
			select {
			case <-ctx.Done():
				return
			case queue <- i:
			}
		}
	}()

	results := make(chan indexedResult)
	var wg sync.WaitGroup
	for w := 0; w < wp.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				if ctx.Err() != nil {
					continue
				}
				results <- indexedResult{index: i, result: run(ctx, cases[i])}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	pending := make(map[int]domain.Result)
	next := 0
	stopped := false
	var passed, failed int
	for ir := range results {
		pending[ir.index] = ir.result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if stopped {
				continue
			}

			emit(r)
			switch r.Status {
			case domain.Passed:
				passed++
			case domain.Failed, domain.Errored:
				failed++
			}
			if wp.progress != nil {
				wp.progress.Update(passed, failed)
			}
			if wp.failFast && (r.Status == domain.Failed || r.Status == domain.Errored) {
				stopped = true
				cancel()
			}
		}
	}

	if wp.progress != nil {
		wp.progress.Finish()
	}
	return time.Since(startTime)
}
