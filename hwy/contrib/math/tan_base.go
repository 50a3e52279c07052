package math

import (
	"github.com/ajroetker/avxmath/hwy"
)

// tan wraps a/π into [-1/2, 1/2] and evaluates the Padé approximant there.
// The multiplication back by π is folded into the coefficients.

func tan4Base(a hwy.Float64x4) hwy.Float64x4 {
	a = hwy.Mul4(a, invPi4)
	a = hwy.Sub4(a, hwy.Round4(a))
	x2 := hwy.Mul4(a, a)

	mul := hwy.MulAdd4(x2, hwy.Broadcast4(tanMul6), hwy.Broadcast4(tanMul4))
	div := hwy.MulAdd4(x2, hwy.Broadcast4(tanDiv6), hwy.Broadcast4(tanDiv4))

	mul = hwy.MulAdd4(mul, x2, hwy.Broadcast4(tanMul2))
	div = hwy.MulAdd4(div, x2, hwy.Broadcast4(tanDiv2))

	mul = hwy.MulAdd4(mul, x2, hwy.Broadcast4(tanMul0))
	div = hwy.MulAdd4(div, x2, hwy.Broadcast4(tanDiv0))

	return hwy.Div4(hwy.Mul4(mul, a), div)
}

// cot(a) = tan(π/2 - a)
func cot4Base(a hwy.Float64x4) hwy.Float64x4 {
	return tan4Base(hwy.Sub4(halfPi4, a))
}

// Tan2 computes the tangent of both lanes.
func Tan2(a hwy.Float64x2) hwy.Float64x2 {
	return hwy.Float64x2{ScalarTan(a[0]), ScalarTan(a[1])}
}

// Cot2 computes the cotangent of both lanes.
func Cot2(a hwy.Float64x2) hwy.Float64x2 {
	return hwy.Float64x2{ScalarCot(a[0]), ScalarCot(a[1])}
}

// ScalarTan computes tan(a).
func ScalarTan(a float64) float64 {
	a = float64(a * InvPi)
	a -= hwy.Round(a)
	x2 := float64(a * a)

	// Numerator in lane X, denominator in lane Y.
	acc := hwy.MulAdd2(hwy.Broadcast2(x2), hwy.Set2(tanMul6, tanDiv6), hwy.Set2(tanMul4, tanDiv4))
	acc = hwy.MulAdd2(acc, hwy.Broadcast2(x2), hwy.Set2(tanMul2, tanDiv2))
	acc = hwy.MulAdd2(acc, hwy.Broadcast2(x2), hwy.Set2(tanMul0, tanDiv0))

	return float64(acc[0]*a) / acc[1]
}

// ScalarCot computes cot(a) as tan(π/2 - a).
func ScalarCot(a float64) float64 {
	return ScalarTan(HalfPi - a)
}
