// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs range-splitting loops on a fixed set of
// long-lived goroutines. The floatbits slice converters use it to spread
// large conversions across cores without spawning goroutines per call.
//
// Usage:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	floatbits.ParallelF32ToF16(pool, halves, floats)
package workerpool

import (
	"runtime"
	"sync"
)

// DefaultGrain is the chunk alignment ParallelFor uses: 64 elements keep
// adjacent chunks of 16-bit or wider values on separate cache lines.
const DefaultGrain = 64

// Pool is a set of worker goroutines that live until Close.
type Pool struct {
	numWorkers int
	tasks      chan task

	// mu is held for reading while a loop queues its ranges and for
	// writing by Close, so tasks is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines, or GOMAXPROCS when
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for t := range p.tasks {
		t.fn(t.start, t.end)
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work finishes. It is safe to call
// more than once and concurrently with running loops: a loop that already
// queued its ranges completes on the workers, later loops run on the caller.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// ParallelFor calls fn on disjoint [start, end) ranges covering [0, n) and
// returns when all calls have finished. Range boundaries are multiples of
// DefaultGrain.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForGrain(n, DefaultGrain, fn)
}

// ParallelForGrain is ParallelFor with range boundaries aligned to grain
// elements. A grain <= 0 means 1.
func (p *Pool) ParallelForGrain(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)

	chunks := (n + grain - 1) / grain
	workers := min(p.numWorkers, chunks)
	if workers <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	// Whole grains per worker, rounded up so every element is covered.
	size := (chunks + workers - 1) / workers * grain

	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		wg.Add(1)
		p.tasks <- task{start: start, end: min(start+size, n), fn: fn, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}
