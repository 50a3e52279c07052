//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file provides the bridge between the portable register types and
// archsimd vectors, plus the few AVX2 building blocks shared by the
// hwy/contrib kernels. Each helper performs the same per-lane IEEE operation
// as its portable counterpart in ops_base.go and bitops.go.

// Load_AVX2_F64x4 moves a portable register into a SIMD register. The
// register is an array, so the move is a single unaligned 256-bit load.
func Load_AVX2_F64x4(v *Float64x4) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4((*[4]float64)(v))
}

// Store_AVX2_F64x4 moves a SIMD register back into a portable register.
func Store_AVX2_F64x4(v archsimd.Float64x4, dst *Float64x4) {
	v.Store((*[4]float64)(dst))
}

// SignBit_AVX2_F64x4 returns -0.0 in every lane.
func SignBit_AVX2_F64x4() archsimd.Float64x4 {
	return archsimd.BroadcastInt64x4(int64(-0x8000000000000000)).AsFloat64x4()
}

// And_AVX2_F64x4 returns a & b on lane bit patterns.
func And_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.AsInt64x4().And(b.AsInt64x4()).AsFloat64x4()
}

// Or_AVX2_F64x4 returns a | b on lane bit patterns.
func Or_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.AsInt64x4().Or(b.AsInt64x4()).AsFloat64x4()
}

// AndNot_AVX2_F64x4 returns ^a & b on lane bit patterns.
func AndNot_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	allOnes := archsimd.BroadcastInt64x4(-1)
	return a.AsInt64x4().Xor(allOnes).And(b.AsInt64x4()).AsFloat64x4()
}

// Splat_AVX2_F64x4 broadcasts one lane to all four.
func Splat_AVX2_F64x4(v archsimd.Float64x4, lane Lane) archsimd.Float64x4 {
	var tmp [4]float64
	v.Store(&tmp)
	return archsimd.BroadcastFloat64x4(tmp[lane])
}
