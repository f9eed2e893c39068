package compute

import (
	"context"
	"runtime"
	"sync"
)

type Pool struct {
	workers int
}

// NewPool returns a pool with the given number of workers. Zero or less
// means one worker per CPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

func (p *Pool) Workers() int { return p.workers }

// Seeds calls fn for every seed in [0, n). It returns the first error any
// call reports, or ctx.Err() if the context ends first. Remaining work is
// skipped once a call fails.
func (p *Pool) Seeds(ctx context.Context, n int, fn func(ctx context.Context, seed int64) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := min(p.workers, n)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	chunkSize := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			start := worker * chunkSize
			end := min(start+chunkSize, n)

			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				if err := fn(ctx, int64(i)); err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					return
				}
			}
		}(w)
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
