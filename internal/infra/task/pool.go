// Package task provides a bounded worker pool for running use-case work
// off the caller's goroutine. Submitting returns a Future the caller can
// wait on, so an HTTP handler can hand registration to the pool and still
// answer with the real outcome.
package task

import (
	"context"
	"log/slog"
	"sync"

	"arcade/internal/errors"
)

// ErrQueueFull is returned by Submit when the pool's queue has no room.
var ErrQueueFull = errors.New("task queue is full")

// ErrPoolClosed is returned by Submit after Shutdown has started.
var ErrPoolClosed = errors.New("task pool is closed")

// Future resolves when the submitted function has finished.
type Future struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task finishes or ctx is cancelled. The task keeps
// running on cancellation; only the wait is abandoned.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "abandoned waiting for task")
	case <-f.done:
		return f.err
	}
}

type job struct {
	ctx    context.Context
	fn     func(context.Context) error
	future *Future
}

// Pool runs submitted functions on a fixed number of worker goroutines.
type Pool struct {
	jobs   chan job
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool starts a pool with the given number of workers and queue capacity.
// Non-positive sizes fall back to a single worker with an unbuffered queue.
func NewPool(workers, queueSize int, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		jobs:   make(chan job, queueSize),
		logger: logger,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit enqueues fn for execution and returns a Future for its result.
// It never blocks: a full queue fails fast with ErrQueueFull.
func (p *Pool) Submit(ctx context.Context, fn func(context.Context) error) (*Future, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}

	future := &Future{done: make(chan struct{})}

	select {
	case p.jobs <- job{ctx: ctx, fn: fn, future: future}:
		return future, nil
	default:
		return nil, ErrQueueFull
	}
}

// Shutdown stops accepting work and waits for in-flight tasks, up to ctx.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "task pool shutdown timed out")
	case <-finished:
		return nil
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for j := range p.jobs {
		j.future.err = p.run(j)
		close(j.future.done)
	}
}

func (p *Pool) run(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if p.logger != nil {
				p.logger.Error("task panicked", "panic", r)
			}
			err = errors.Errorf("task panicked: %v", r)
		}
	}()

	return j.fn(j.ctx)
}
