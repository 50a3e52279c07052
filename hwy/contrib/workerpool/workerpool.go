// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool spreads batch kernels over a fixed set of goroutines.
//
// A Pool is created once and reused by every batch call, so the per-call
// cost is one barrier rather than a round of goroutine spawns. A nil *Pool
// is valid everywhere and runs the work on the calling goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	matrix.TransformBatch(pool, m, src, dst)
//	pool.ParallelForAligned(len(angles), hwy.Lanes4, func(start, end int) {
//	    math.SinCosSlice(angles[start:end], sin[start:end], cos[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/avxmath/hwy"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	hwy.Logger().Debug("workerpool: started", "workers", numWorkers)
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once, or on a nil pool, is a no-op.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		hwy.Logger().Debug("workerpool: closed", "workers", p.numWorkers)
	})
}

// sequential reports whether work must run on the calling goroutine.
func (p *Pool) sequential() bool {
	return p == nil || p.closed.Load() || p.numWorkers == 1
}

// dispatch runs body on workers goroutines and waits for all of them.
func (p *Pool) dispatch(workers int, body func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{
			fn:      func() { body(w) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor calls fn over contiguous ranges covering [0, n), one range per
// worker. Blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range boundary except n itself
// a multiple of align, so that each range but the last holds whole 4-lane
// registers when align is hwy.Lanes4.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}
	if p.sequential() {
		fn(0, n)
		return
	}

	units := (n + align - 1) / align
	workers := min(p.numWorkers, units)
	if workers == 1 {
		fn(0, n)
		return
	}
	chunk := (units + workers - 1) / workers * align

	p.dispatch(workers, func(w int) {
		start := w * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomicBatched hands out ranges of batchSize indices to whichever
// worker is free, which balances load when the cost per index varies.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if p.sequential() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.dispatch(workers, func(int) {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
