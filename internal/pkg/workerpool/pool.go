package workerpool

import (
	"context"
	"math"
	"sync"

	"golang.org/x/time/rate"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool runs submitted tasks on a fixed number of goroutines. An
// optional limiter spaces task starts across all workers.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	limiter *rate.Limiter
}

func New(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRateLimit caps task starts per second. rps <= 0 removes the limit.
func (p *WorkerPool) SetRateLimit(rps float64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if rps <= 0 {
		p.limiter = nil
		return
	}
	burst := int(math.Ceil(rps))
	if burst < 1 {
		burst = 1
	}
	p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers. The returned channel is closed once every worker
// has exited, either because Close was called and the queue drained or
// because ctx is done.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, cap(p.tasks)+p.workers)

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
					p.mu.RLock()
					limiter := p.limiter
					p.mu.RUnlock()
					if limiter != nil {
						if err := limiter.Wait(ctx); err != nil {
							return
						}
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

// Drain consumes out until the pool has stopped and returns the first task
// error, if any.
func Drain(out <-chan Result) error {
	var first error
	for r := range out {
		if first == nil && r.Err != nil {
			first = r.Err
		}
	}
	return first
}
