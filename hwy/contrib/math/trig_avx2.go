//go:build amd64 && goexperiment.simd

package math

import (
	"simd/archsimd"

	"github.com/ajroetker/avxmath/hwy"
)

// AVX2 vectorized constants for the float64 kernels
var (
	trig64_pi       = archsimd.BroadcastFloat64x4(Pi)
	trig64_halfPi   = archsimd.BroadcastFloat64x4(HalfPi)
	trig64_twoPi    = archsimd.BroadcastFloat64x4(TwoPi)
	trig64_invTwoPi = archsimd.BroadcastFloat64x4(InvTwoPi)
	trig64_invPi    = archsimd.BroadcastFloat64x4(InvPi)
	trig64_zero     = archsimd.BroadcastFloat64x4(0.0)
	trig64_one      = archsimd.BroadcastFloat64x4(1.0)

	trig64_c0 = archsimd.BroadcastFloat64x4(cosSinCoefficients[0][0])
	trig64_c1 = archsimd.BroadcastFloat64x4(cosSinCoefficients[1][0])
	trig64_c2 = archsimd.BroadcastFloat64x4(cosSinCoefficients[2][0])
	trig64_c3 = archsimd.BroadcastFloat64x4(cosSinCoefficients[3][0])
	trig64_c4 = archsimd.BroadcastFloat64x4(cosSinCoefficients[4][0])

	trig64_s0 = archsimd.BroadcastFloat64x4(cosSinCoefficients[0][1])
	trig64_s1 = archsimd.BroadcastFloat64x4(cosSinCoefficients[1][1])
	trig64_s2 = archsimd.BroadcastFloat64x4(cosSinCoefficients[2][1])
	trig64_s3 = archsimd.BroadcastFloat64x4(cosSinCoefficients[3][1])
	trig64_s4 = archsimd.BroadcastFloat64x4(cosSinCoefficients[4][1])

	tan64_mul0 = archsimd.BroadcastFloat64x4(tanMul0)
	tan64_mul2 = archsimd.BroadcastFloat64x4(tanMul2)
	tan64_mul4 = archsimd.BroadcastFloat64x4(tanMul4)
	tan64_mul6 = archsimd.BroadcastFloat64x4(tanMul6)
	tan64_div0 = archsimd.BroadcastFloat64x4(tanDiv0)
	tan64_div2 = archsimd.BroadcastFloat64x4(tanDiv2)
	tan64_div4 = archsimd.BroadcastFloat64x4(tanDiv4)
	tan64_div6 = archsimd.BroadcastFloat64x4(tanDiv6)

	tanh64_600  = archsimd.BroadcastFloat64x4(tanh600)
	tanh64_270  = archsimd.BroadcastFloat64x4(tanh270)
	tanh64_70   = archsimd.BroadcastFloat64x4(tanh70)
	tanh64_11   = archsimd.BroadcastFloat64x4(tanh11)
	tanh64_last = archsimd.BroadcastFloat64x4(tanhLast)
	tanh64_sat  = archsimd.BroadcastFloat64x4(tanhSaturation)
)

// reduce_AVX2_F64x4 maps lanes into [-π/2, π/2]; sign is -0 where the
// cosine must be negated.
func reduce_AVX2_F64x4(a archsimd.Float64x4) (x, sign archsimd.Float64x4) {
	v := a.Mul(trig64_invTwoPi).RoundToEven()
	x = a.Sub(v.Mul(trig64_twoPi))

	neg0 := hwy.SignBit_AVX2_F64x4()
	sign = hwy.And_AVX2_F64x4(x, neg0)
	c := hwy.Or_AVX2_F64x4(trig64_pi, sign) // π with the sign of x
	absx := hwy.AndNot_AVX2_F64x4(sign, x)
	rflx := c.Sub(x)

	// Ordered <=, so NaN lanes take the reflected branch like the portable path.
	keep := absx.Less(trig64_halfPi).Or(absx.Equal(trig64_halfPi))

	// Merge semantics: a.Merge(b, mask) returns a when TRUE, b when FALSE
	x = x.Merge(rflx, keep)
	sign = trig64_zero.Merge(neg0, keep)
	return x, sign
}

func cosPoly_AVX2_F64x4(x2 archsimd.Float64x4) archsimd.Float64x4 {
	r := trig64_c4.MulAdd(x2, trig64_c3)
	r = r.MulAdd(x2, trig64_c2)
	r = r.MulAdd(x2, trig64_c1)
	r = r.MulAdd(x2, trig64_c0)
	return r.MulAdd(x2, trig64_one)
}

func sinPoly_AVX2_F64x4(x2 archsimd.Float64x4) archsimd.Float64x4 {
	r := trig64_s4.MulAdd(x2, trig64_s3)
	r = r.MulAdd(x2, trig64_s2)
	r = r.MulAdd(x2, trig64_s1)
	r = r.MulAdd(x2, trig64_s0)
	return r.MulAdd(x2, trig64_one)
}

// SinCos_AVX2_F64x4 computes sin and cos of a single Float64x4 vector.
//
// Algorithm:
//  1. Wrap into [-π, π]: x = a - round(a/2π)·2π
//  2. Reflect |x| > π/2 through ±π, remembering to negate the cosine
//  3. Evaluate both minimax polynomials in x²
func SinCos_AVX2_F64x4(a archsimd.Float64x4) (sin, cos archsimd.Float64x4) {
	x, sign := reduce_AVX2_F64x4(a)
	x2 := x.Mul(x)
	sin = sinPoly_AVX2_F64x4(x2).Mul(x)
	cos = hwy.Or_AVX2_F64x4(cosPoly_AVX2_F64x4(x2), sign)
	return sin, cos
}

// Sin_AVX2_F64x4 computes sin(x) for a single Float64x4 vector.
func Sin_AVX2_F64x4(a archsimd.Float64x4) archsimd.Float64x4 {
	x, _ := reduce_AVX2_F64x4(a)
	return sinPoly_AVX2_F64x4(x.Mul(x)).Mul(x)
}

// Cos_AVX2_F64x4 computes cos(x) for a single Float64x4 vector.
func Cos_AVX2_F64x4(a archsimd.Float64x4) archsimd.Float64x4 {
	x, sign := reduce_AVX2_F64x4(a)
	return hwy.Or_AVX2_F64x4(cosPoly_AVX2_F64x4(x.Mul(x)), sign)
}

// Tan_AVX2_F64x4 computes tan(x) for a single Float64x4 vector.
func Tan_AVX2_F64x4(a archsimd.Float64x4) archsimd.Float64x4 {
	a = a.Mul(trig64_invPi)
	a = a.Sub(a.RoundToEven())
	x2 := a.Mul(a)

	mul := x2.MulAdd(tan64_mul6, tan64_mul4)
	div := x2.MulAdd(tan64_div6, tan64_div4)

	mul = mul.MulAdd(x2, tan64_mul2)
	div = div.MulAdd(x2, tan64_div2)

	mul = mul.MulAdd(x2, tan64_mul0)
	div = div.MulAdd(x2, tan64_div0)

	return mul.Mul(a).Div(div)
}

// Cot_AVX2_F64x4 computes cot(x) = tan(π/2 - x) for a single Float64x4 vector.
func Cot_AVX2_F64x4(a archsimd.Float64x4) archsimd.Float64x4 {
	return Tan_AVX2_F64x4(trig64_halfPi.Sub(a))
}

// Tanh_AVX2_F64x4 computes tanh(x) for a single Float64x4 vector.
func Tanh_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	x2 := x.Mul(x)
	den := x2.MulAdd(tanh64_270, tanh64_600)
	x4 := x2.Mul(x2)
	num := x4.Add(tanh64_600)
	x6 := x4.Mul(x2)
	den = x4.MulAdd(tanh64_11, den)
	num = x2.MulAdd(tanh64_70, num)
	den = x6.MulAdd(tanh64_last, den)
	num = num.Mul(x)
	r := num.Div(den)

	sign := hwy.SignBit_AVX2_F64x4()
	absx := hwy.AndNot_AVX2_F64x4(sign, x)
	big := absx.Greater(tanh64_sat).Or(absx.Equal(tanh64_sat))
	sat := hwy.Or_AVX2_F64x4(trig64_one, hwy.And_AVX2_F64x4(x, sign))
	return sat.Merge(r, big)
}

// Adapters binding the AVX2 kernels to the hwy register type. They are
// installed only while fused multiply-add is enabled (see z_math_amd64.go).

func sinCos4AVX2(a hwy.Float64x4) (sin, cos hwy.Float64x4) {
	s, c := SinCos_AVX2_F64x4(hwy.Load_AVX2_F64x4(&a))
	hwy.Store_AVX2_F64x4(s, &sin)
	hwy.Store_AVX2_F64x4(c, &cos)
	return sin, cos
}

func sin4AVX2(a hwy.Float64x4) (r hwy.Float64x4) {
	hwy.Store_AVX2_F64x4(Sin_AVX2_F64x4(hwy.Load_AVX2_F64x4(&a)), &r)
	return r
}

func cos4AVX2(a hwy.Float64x4) (r hwy.Float64x4) {
	hwy.Store_AVX2_F64x4(Cos_AVX2_F64x4(hwy.Load_AVX2_F64x4(&a)), &r)
	return r
}

func tan4AVX2(a hwy.Float64x4) (r hwy.Float64x4) {
	hwy.Store_AVX2_F64x4(Tan_AVX2_F64x4(hwy.Load_AVX2_F64x4(&a)), &r)
	return r
}

func cot4AVX2(a hwy.Float64x4) (r hwy.Float64x4) {
	hwy.Store_AVX2_F64x4(Cot_AVX2_F64x4(hwy.Load_AVX2_F64x4(&a)), &r)
	return r
}

func tanh4AVX2(x hwy.Float64x4) (r hwy.Float64x4) {
	hwy.Store_AVX2_F64x4(Tanh_AVX2_F64x4(hwy.Load_AVX2_F64x4(&x)), &r)
	return r
}
