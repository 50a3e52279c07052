//go:build amd64 && goexperiment.simd

package matrix

import "github.com/ajroetker/avxmath/hwy"

func init() {
	if !hwy.HasWideRegisters() {
		return
	}
	bindAVX2(hwy.HasFMA())
	hwy.OnFMAChange(bindAVX2)
}

// bindAVX2 installs the AVX2 kernels while multiply-add is fused and the
// portable ones otherwise.
func bindAVX2(fused bool) {
	if !fused {
		TransformTransposed = transformTransposedBase
		Multiply = multiplyBase
		return
	}
	TransformTransposed = transformTransposedAVX2
	Multiply = multiplyAVX2
}
