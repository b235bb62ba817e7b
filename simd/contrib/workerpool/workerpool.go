// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs index ranges of a kernel on a fixed set of
// goroutines. A Pool is built once per force or distance pass and handed to
// every bulk kernel that needs to split its input.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	err := bulk.PairDistancesSquared(ctx, pool, coords, pairs, out)
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool owns a fixed number of worker goroutines. Its methods are safe for
// concurrent use, Close included.
type Pool struct {
	workers int
	jobs    chan job

	// mu is read-held while a call queues and waits for jobs, and
	// write-held by Close, so jobs is never sent to after it is closed.
	mu     sync.RWMutex
	closed bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers; workers <= 0 means
// GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		jobs:    make(chan job, workers),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// Workers returns the pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Close waits for running calls to finish and stops the workers. Calls
// made after Close run inline on the caller's goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
}

// acquire read-locks the pool for queueing jobs. It returns false, holding
// nothing, once the pool is closed.
func (p *Pool) acquire() bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	return true
}

// Blocks splits [0, n) into one contiguous block per worker and waits for
// all of them.
func (p *Pool) Blocks(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	parts := min(p.workers, n)
	if parts == 1 || !p.acquire() {
		fn(0, n)
		return
	}
	defer p.mu.RUnlock()
	size := (n + parts - 1) / parts
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		wg.Add(1)
		p.jobs <- job{run: func() { fn(lo, hi) }, done: &wg}
	}
	wg.Wait()
}

// Chunks hands out [0, n) in chunks of grain indices to whichever worker is
// free. It suits pair lists where the cost per chunk varies.
func (p *Pool) Chunks(n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)
	chunks := (n + grain - 1) / grain
	parts := min(p.workers, chunks)
	if parts == 1 || !p.acquire() {
		fn(0, n)
		return
	}
	defer p.mu.RUnlock()

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(parts)
	for range parts {
		p.jobs <- job{
			run: func() {
				for {
					lo := int(next.Add(1)-1) * grain
					if lo >= n {
						return
					}
					fn(lo, min(lo+grain, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

// ChunksContext is Chunks for kernels that can fail. At most Workers chunks
// run at once. The first error cancels the chunks not yet started and is
// returned, as is the error of a cancelled ctx.
func (p *Pool) ChunksContext(ctx context.Context, n, grain int, fn func(ctx context.Context, lo, hi int) error) error {
	grain = max(grain, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for lo := 0; lo < n; lo += grain {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+grain, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
