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

package matrix

import (
	"fmt"

	"github.com/ajroetker/avxmath/hwy"
	"github.com/ajroetker/avxmath/hwy/contrib/workerpool"
)

// minParallelVectors is the batch size below which TransformBatch stays on
// the calling goroutine.
const minParallelVectors = 256

// TransformBatch applies Transform(v, m) to every vector packed in src (four
// doubles each) and stores the results in dst. src and dst may be the same
// slice. Work is split across pool; a nil pool runs on the caller.
//
// Panics if len(src) is not a multiple of 4 or dst is shorter than src.
func TransformBatch(pool *workerpool.Pool, m hwy.Matrix4x4, src, dst []float64) {
	batch(pool, "TransformBatch", src, dst, func(v hwy.Float64x4) hwy.Float64x4 {
		return Transform(v, m)
	})
}

// TransformTransposedBatch is TransformBatch for TransformTransposed(v, m).
func TransformTransposedBatch(pool *workerpool.Pool, m hwy.Matrix4x4, src, dst []float64) {
	transform := TransformTransposed
	batch(pool, "TransformTransposedBatch", src, dst, func(v hwy.Float64x4) hwy.Float64x4 {
		return transform(v, m)
	})
}

func batch(pool *workerpool.Pool, op string, src, dst []float64, fn func(hwy.Float64x4) hwy.Float64x4) {
	if len(src)%hwy.Lanes4 != 0 {
		panic(fmt.Sprintf("matrix.%s: source length %d is not a multiple of %d", op, len(src), hwy.Lanes4))
	}
	if len(dst) < len(src) {
		panic(fmt.Sprintf("matrix.%s: destination length %d < source length %d", op, len(dst), len(src)))
	}

	n := len(src) / hwy.Lanes4
	run := func(start, end int) {
		for i := start; i < end; i++ {
			off := i * hwy.Lanes4
			hwy.Store4(fn(hwy.Load4(src[off:])), dst[off:])
		}
	}
	if n < minParallelVectors {
		run(0, n)
		return
	}
	pool.ParallelFor(n, run)
}
