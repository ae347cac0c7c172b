// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 63, 64, 65, 100, 1000, 4097} {
		results := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})
		for i := range n {
			if results[i] != i*2 {
				t.Fatalf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForGrainAlignment(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const n, grain = 1000, 16
	var mu sync.Mutex
	covered := 0
	pool.ParallelForGrain(n, grain, func(start, end int) {
		if start%grain != 0 {
			t.Errorf("range start %d not a multiple of %d", start, grain)
		}
		if end != n && end%grain != 0 {
			t.Errorf("range end %d not a multiple of %d", end, grain)
		}
		mu.Lock()
		covered += end - start
		mu.Unlock()
	})
	if covered != n {
		t.Errorf("covered %d elements, want %d", covered, n)
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32
	pool.ParallelForGrain(n, 1, func(start, end int) {
		count.Add(int32(end - start))
	})
	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 1000
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestCloseDuringParallelFor(t *testing.T) {
	for round := range 50 {
		pool := New(4)
		const loops, n = 8, 4096

		var wg sync.WaitGroup
		var total atomic.Int64
		for range loops {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pool.ParallelForGrain(n, 1, func(start, end int) {
					total.Add(int64(end - start))
				})
			}()
		}
		pool.Close()
		wg.Wait()

		if got := total.Load(); got != loops*n {
			t.Fatalf("round %d: visited %d indices, want %d", round, got, loops*n)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1 << 16
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}
