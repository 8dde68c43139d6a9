package concurrent

import (
	"context"
	"sync"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) G

// WorkerPool runs JobFunc over queued jobs on a fixed number of goroutines. Results come out
// of CollectResults in completion order; it is closed by Wait once every worker has returned.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if jobQueueSize < 0 {
		jobQueueSize = 0
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(ctx context.Context, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(ctx, job)
	}
}

func (wp *WorkerPool[T, G]) Start(ctx context.Context, jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, jobFunc)
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// AddJob queues job, giving up when ctx is done first.
func (wp *WorkerPool[T, G]) AddJob(ctx context.Context, job T) error {
	select {
	case wp.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	wp.closeOnce.Do(func() {
		close(wp.jobQueue)
	})
}

// Run feeds jobs to a started pool and collects every result. jobs that could not be queued
// before ctx was done are skipped.
func Run[T any, G any](ctx context.Context, numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(jobs))
	wp.Start(ctx, jobFunc)

	go func() {
		defer func() {
			wp.Close()
			wp.Wait()
		}()
		for _, job := range jobs {
			if err := wp.AddJob(ctx, job); err != nil {
				return
			}
		}
	}()

	results := make([]G, 0, len(jobs))
	for res := range wp.CollectResults() {
		results = append(results, res)
	}
	return results
}
