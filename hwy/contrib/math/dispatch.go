package math

import "github.com/ajroetker/avxmath/hwy"

// 4-wide kernels. Initialised to the portable implementations and replaced
// by z_math_amd64.go while AVX2 and fused multiply-add are available.
var (
	// SinCos4 computes sine and cosine of every lane.
	SinCos4 func(a hwy.Float64x4) (sin, cos hwy.Float64x4)
	// Sin4 computes the sine of every lane.
	Sin4 func(a hwy.Float64x4) hwy.Float64x4
	// Cos4 computes the cosine of every lane.
	Cos4 func(a hwy.Float64x4) hwy.Float64x4
	// Tan4 computes the tangent of every lane.
	Tan4 func(a hwy.Float64x4) hwy.Float64x4
	// Cot4 computes the cotangent of every lane.
	Cot4 func(a hwy.Float64x4) hwy.Float64x4
	// Tanh4 computes the hyperbolic tangent of every lane.
	Tanh4 func(x hwy.Float64x4) hwy.Float64x4
)

// implementation names the kernels bound to the 4-wide function variables.
var implementation = "portable"

func init() {
	// Register base implementations as defaults only if not already set.
	if SinCos4 == nil {
		bindPortable()
	}
}

func bindPortable() {
	SinCos4 = sinCos4Base
	Sin4 = sin4Base
	Cos4 = cos4Base
	Tan4 = tan4Base
	Cot4 = cot4Base
	Tanh4 = tanh4Base
	implementation = "portable"
}

// Implementation reports which kernels back the 4-wide functions:
// "portable" or "avx2".
func Implementation() string {
	return implementation
}
