package math

import (
	stdmath "math"

	"github.com/ajroetker/avxmath/hwy"
)

// ModAngles4 wraps each lane into [-π, π] as a - round(a/2π)·2π.
// NaN and ±Inf produce NaN.
func ModAngles4(a hwy.Float64x4) hwy.Float64x4 {
	v := hwy.Round4(hwy.Mul4(a, invTwoPi4))
	return hwy.Sub4(a, hwy.Mul4(v, twoPi4))
}

// ModAngles2 is the 2-wide form of ModAngles4.
func ModAngles2(a hwy.Float64x2) hwy.Float64x2 {
	v := hwy.Round2(hwy.Mul2(a, hwy.Broadcast2(InvTwoPi)))
	return hwy.Sub2(a, hwy.Mul2(v, hwy.Broadcast2(TwoPi)))
}

// ModAngle is the scalar form of ModAngles4.
func ModAngle(a float64) float64 {
	v := hwy.Round(float64(a * InvTwoPi))
	return a - float64(v*TwoPi)
}

// reduce4 maps each lane into [-π/2, π/2] keeping the sine. The returned sign
// is -0 in lanes where the cosine must be negated and +0 elsewhere, ready to
// be OR-ed into the cosine.
func reduce4(a hwy.Float64x4) (x, sign hwy.Float64x4) {
	x = ModAngles4(a)

	neg0 := hwy.SignMask4()
	sign = hwy.And4(x, neg0)
	c := hwy.Or4(pi4, sign) // π with the sign of x
	absx := hwy.AndNot4(sign, x)
	rflx := hwy.Sub4(c, x)
	keep := hwy.Le4(absx, halfPi4)

	x = hwy.IfThenElse4(keep, x, rflx)
	sign = hwy.IfThenElse4(keep, hwy.Zero4(), neg0)
	return x, sign
}

func reduce2(a hwy.Float64x2) (x, sign hwy.Float64x2) {
	x = ModAngles2(a)

	neg0 := hwy.SignMask2()
	sign = hwy.And2(x, neg0)
	c := hwy.Or2(hwy.Broadcast2(Pi), sign)
	absx := hwy.AndNot2(sign, x)
	rflx := hwy.Sub2(c, x)
	keep := hwy.Le2(absx, hwy.Broadcast2(HalfPi))

	x = hwy.IfThenElse2(keep, x, rflx)
	sign = hwy.IfThenElse2(keep, hwy.Zero2(), neg0)
	return x, sign
}

func reduce(a float64) (x, sign float64) {
	x = ModAngle(a)

	signBits := stdmath.Float64bits(x) & hwy.SignBit
	if stdmath.Float64frombits(stdmath.Float64bits(x)&^hwy.SignBit) <= HalfPi {
		return x, 0
	}
	c := stdmath.Float64frombits(stdmath.Float64bits(Pi) | signBits)
	return c - x, stdmath.Copysign(0, -1)
}

// Reduce4 maps each lane into [-π/2, π/2] so that sin(reduced) = sin(a) and
// cos(a) = cosSign·cos(reduced). cosSign is +1 or -1. Lanes with |a mod 2π|
// exactly π/2 take the non-reflected branch.
func Reduce4(a hwy.Float64x4) (reduced, cosSign hwy.Float64x4) {
	x, sign := reduce4(a)
	return x, hwy.Or4(one4, sign)
}

// Reduce is the scalar form of Reduce4.
func Reduce(a float64) (reduced, cosSign float64) {
	x, sign := reduce(a)
	return x, hwy.OrSign(1, sign)
}
