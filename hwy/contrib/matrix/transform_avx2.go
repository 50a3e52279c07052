//go:build amd64 && goexperiment.simd

package matrix

import (
	"simd/archsimd"

	"github.com/ajroetker/avxmath/hwy"
)

// TransformTransposed_AVX2_F64x4 returns v.x·m0 + v.y·m1 + v.z·m2 + v.w·m3
// with the rows already in SIMD registers.
func TransformTransposed_AVX2_F64x4(v hwy.Float64x4, m0, m1, m2, m3 archsimd.Float64x4) archsimd.Float64x4 {
	r := archsimd.BroadcastFloat64x4(v[0]).Mul(m0)
	r = archsimd.BroadcastFloat64x4(v[1]).MulAdd(m1, r)
	r = archsimd.BroadcastFloat64x4(v[2]).MulAdd(m2, r)
	return archsimd.BroadcastFloat64x4(v[3]).MulAdd(m3, r)
}

func transformTransposedAVX2(v hwy.Float64x4, m hwy.Matrix4x4) (r hwy.Float64x4) {
	acc := TransformTransposed_AVX2_F64x4(v,
		hwy.Load_AVX2_F64x4(&m[0]), hwy.Load_AVX2_F64x4(&m[1]),
		hwy.Load_AVX2_F64x4(&m[2]), hwy.Load_AVX2_F64x4(&m[3]))
	hwy.Store_AVX2_F64x4(acc, &r)
	return r
}

func multiplyAVX2(a, b hwy.Matrix4x4) (r hwy.Matrix4x4) {
	b0 := hwy.Load_AVX2_F64x4(&b[0])
	b1 := hwy.Load_AVX2_F64x4(&b[1])
	b2 := hwy.Load_AVX2_F64x4(&b[2])
	b3 := hwy.Load_AVX2_F64x4(&b[3])

	for i := range a {
		ai := hwy.Load_AVX2_F64x4(&a[i])
		acc := hwy.Splat_AVX2_F64x4(ai, hwy.LaneX).Mul(b0)
		acc = hwy.Splat_AVX2_F64x4(ai, hwy.LaneY).MulAdd(b1, acc)
		acc = hwy.Splat_AVX2_F64x4(ai, hwy.LaneZ).MulAdd(b2, acc)
		acc = hwy.Splat_AVX2_F64x4(ai, hwy.LaneW).MulAdd(b3, acc)
		hwy.Store_AVX2_F64x4(acc, &r[i])
	}
	return r
}
