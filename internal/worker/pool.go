package worker

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// Pool runs submitted tasks on a fixed number of goroutines. Submit and Close
// must be called from a single producer goroutine.
type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func NewPool(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *Pool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and returns a channel with one Result per executed
// task. The channel closes after Close has been called and every queued task
// has finished, or once ctx is done.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
