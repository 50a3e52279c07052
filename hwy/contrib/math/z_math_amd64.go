//go:build amd64 && goexperiment.simd

package math

import "github.com/ajroetker/avxmath/hwy"

func init() {
	if !hwy.HasWideRegisters() {
		return
	}
	bindAVX2(hwy.HasFMA())
	hwy.OnFMAChange(bindAVX2)
}

// bindAVX2 installs the AVX2 kernels while multiply-add is fused and the
// portable ones otherwise. The AVX2 kernels always fuse, so the binding
// keeps results independent of the path taken.
func bindAVX2(fused bool) {
	if !fused {
		bindPortable()
		return
	}
	SinCos4 = sinCos4AVX2
	Sin4 = sin4AVX2
	Cos4 = cos4AVX2
	Tan4 = tan4AVX2
	Cot4 = cot4AVX2
	Tanh4 = tanh4AVX2
	implementation = "avx2"
}
