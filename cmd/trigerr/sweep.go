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

package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/ajroetker/avxmath/hwy"
	hmath "github.com/ajroetker/avxmath/hwy/contrib/math"
	"github.com/ajroetker/avxmath/hwy/contrib/workerpool"
)

var (
	// ErrConfig is returned by Sweep for an unusable configuration.
	ErrConfig = errors.New("invalid sweep configuration")
	// ErrBoundExceeded is returned by Report.Check when a kernel is outside
	// its documented error bound.
	ErrBoundExceeded = errors.New("error bound exceeded")
)

const (
	// maxBoundRange is the widest angle range the sin/cos bounds hold for.
	maxBoundRange = 100
	// tanRange is the interval half-width the tan bound holds for.
	tanRange = 1.4
	// measureBatch is the number of samples a worker claims at a time.
	measureBatch = 4096
)

// Config describes one accuracy sweep.
type Config struct {
	Range   float64 // angles are sampled from [-Range, Range]
	Samples int     // samples per kernel, at least 2
	Workers int     // 0 means one per CPU
}

func (c Config) validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("%w: samples must be at least 2, got %d", ErrConfig, c.Samples)
	}
	if !(c.Range > 0) || math.IsInf(c.Range, 0) {
		return fmt.Errorf("%w: range must be positive and finite, got %v", ErrConfig, c.Range)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrConfig, c.Workers)
	}
	return nil
}

// Result is the worst error found for one kernel.
type Result struct {
	Kernel string
	MaxErr float64
	At     float64 // input where MaxErr occurred
	Bound  float64 // 0 when the sampled range is outside the documented one
}

func (r Result) String() string {
	bound := "unchecked"
	if r.Bound > 0 {
		bound = fmt.Sprintf("%.0e", r.Bound)
	}
	return fmt.Sprintf("%-5s max error %.3e at x=%.9g (bound %s)", r.Kernel, r.MaxErr, r.At, bound)
}

// Exceeded reports whether the result is outside its bound.
func (r Result) Exceeded() bool {
	return r.Bound > 0 && r.MaxErr > r.Bound
}

// Report holds one Result per kernel, in the order sin, cos, tan, tanh.
type Report []Result

// Check returns an error wrapping ErrBoundExceeded naming every kernel
// outside its bound.
func (rep Report) Check() error {
	var failed []string
	for _, r := range rep {
		if r.Exceeded() {
			failed = append(failed, r.Kernel)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrBoundExceeded, strings.Join(failed, ", "))
	}
	return nil
}

// Sweep evaluates the kernels on cfg.Samples evenly spaced inputs and
// compares them with the Go math package.
func Sweep(cfg Config) (Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	log := hwy.Logger()
	log.Debug("trigerr: sweep started",
		"implementation", hmath.Implementation(),
		"fma", hwy.HasFMA(),
		"workers", pool.NumWorkers(),
		"samples", cfg.Samples,
		"range", cfg.Range)

	xs := linspace(cfg.Range, cfg.Samples)
	sin := make([]float64, len(xs))
	cos := make([]float64, len(xs))
	hmath.ParallelSinCos(pool, xs, sin, cos)

	tanh := make([]float64, len(xs))
	hmath.Parallel(pool, hmath.TanhSlice, xs, tanh)

	txs := linspace(min(cfg.Range, tanRange), cfg.Samples)
	tan := make([]float64, len(txs))
	hmath.Parallel(pool, hmath.TanSlice, txs, tan)

	var sinBound, cosBound float64
	if cfg.Range <= maxBoundRange {
		sinBound, cosBound = hmath.SinMaxError, hmath.CosMaxError
	}

	report := Report{
		measure(pool, "sin", xs, sin, math.Sin, absError, sinBound),
		measure(pool, "cos", xs, cos, math.Cos, absError, cosBound),
		measure(pool, "tan", txs, tan, math.Tan, relError, hmath.TanRelError),
		measure(pool, "tanh", xs, tanh, math.Tanh, absError, hmath.TanhMaxError),
	}
	for _, r := range report {
		log.Info("trigerr: measured", "kernel", r.Kernel, "max_error", r.MaxErr, "at", r.At, "exceeded", r.Exceeded())
	}
	return report, nil
}

// linspace returns n values evenly spaced over [-r, r].
func linspace(r float64, n int) []float64 {
	xs := make([]float64, n)
	step := 2 * r / float64(n-1)
	for i := range xs {
		xs[i] = -r + float64(i)*step
	}
	xs[n-1] = r
	return xs
}

func absError(got, want float64) float64 {
	return math.Abs(got - want)
}

func relError(got, want float64) float64 {
	return math.Abs(got-want) / max(1, math.Abs(want))
}

// measure finds the largest error of got against ref. Ties go to the lowest
// index so the result does not depend on scheduling.
func measure(pool *workerpool.Pool, kernel string, xs, got []float64, ref func(float64) float64, errFn func(got, want float64) float64, bound float64) Result {
	var (
		mu      sync.Mutex
		best    = -1.0
		bestIdx = -1
	)
	pool.ParallelForAtomicBatched(len(xs), measureBatch, func(start, end int) {
		localBest, localIdx := -1.0, -1
		for i := start; i < end; i++ {
			e := errFn(got[i], ref(xs[i]))
			if math.IsNaN(e) {
				e = math.Inf(1)
			}
			if e > localBest {
				localBest, localIdx = e, i
			}
		}
		mu.Lock()
		if localBest > best || (localBest == best && localIdx < bestIdx) {
			best, bestIdx = localBest, localIdx
		}
		mu.Unlock()
	})
	return Result{Kernel: kernel, MaxErr: best, At: xs[bestIdx], Bound: bound}
}
