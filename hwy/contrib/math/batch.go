package math

import (
	"fmt"

	"github.com/ajroetker/avxmath/hwy"
	"github.com/ajroetker/avxmath/hwy/contrib/workerpool"
)

// Slice helpers run the 4-wide kernels over full groups and the scalar forms
// over the tail. Results match element-wise calls of the scalar forms.

func checkLen(op string, n int, outs ...[]float64) {
	for _, out := range outs {
		if len(out) < n {
			panic(fmt.Sprintf("math.%s: output length %d < input length %d", op, len(out), n))
		}
	}
}

func apply(src, dst []float64, vec func(hwy.Float64x4) hwy.Float64x4, scalar func(float64) float64) {
	hwy.ProcessWithTail4(len(src),
		func(offset int) {
			hwy.Store4(vec(hwy.Load4(src[offset:])), dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = scalar(src[i])
			}
		},
	)
}

// SinCosSlice stores sin(src[i]) in sin[i] and cos(src[i]) in cos[i].
// Panics if sin or cos is shorter than src.
func SinCosSlice(src, sin, cos []float64) {
	checkLen("SinCosSlice", len(src), sin, cos)
	sinCos := SinCos4
	hwy.ProcessWithTail4(len(src),
		func(offset int) {
			s, c := sinCos(hwy.Load4(src[offset:]))
			hwy.Store4(s, sin[offset:])
			hwy.Store4(c, cos[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				cs := ScalarSinCos(src[i])
				sin[i], cos[i] = cs[1], cs[0]
			}
		},
	)
}

// SinSlice stores sin(src[i]) in dst[i].
func SinSlice(src, dst []float64) {
	checkLen("SinSlice", len(src), dst)
	apply(src, dst, Sin4, ScalarSin)
}

// CosSlice stores cos(src[i]) in dst[i].
func CosSlice(src, dst []float64) {
	checkLen("CosSlice", len(src), dst)
	apply(src, dst, Cos4, ScalarCos)
}

// TanSlice stores tan(src[i]) in dst[i].
func TanSlice(src, dst []float64) {
	checkLen("TanSlice", len(src), dst)
	apply(src, dst, Tan4, ScalarTan)
}

// TanhSlice stores tanh(src[i]) in dst[i].
func TanhSlice(src, dst []float64) {
	checkLen("TanhSlice", len(src), dst)
	apply(src, dst, Tanh4, ScalarTanh)
}

// ParallelSinCos is SinCosSlice split across the workers of pool. Every range
// but the last is a whole number of 4-lane groups, so the output equals that
// of SinCosSlice. A nil pool runs on the calling goroutine.
func ParallelSinCos(pool *workerpool.Pool, src, sin, cos []float64) {
	checkLen("ParallelSinCos", len(src), sin, cos)
	pool.ParallelForAligned(len(src), hwy.Lanes4, func(start, end int) {
		SinCosSlice(src[start:end], sin[start:end], cos[start:end])
	})
}

// Parallel runs a slice helper such as TanhSlice across the workers of pool.
func Parallel(pool *workerpool.Pool, kernel func(src, dst []float64), src, dst []float64) {
	checkLen("Parallel", len(src), dst)
	pool.ParallelForAligned(len(src), hwy.Lanes4, func(start, end int) {
		kernel(src[start:end], dst[start:end])
	})
}
