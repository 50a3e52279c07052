package math

import (
	stdmath "math"

	"github.com/ajroetker/avxmath/hwy"
)

func tanh4Base(x hwy.Float64x4) hwy.Float64x4 {
	x2 := hwy.Mul4(x, x)
	den := hwy.MulAdd4(x2, hwy.Broadcast4(tanh270), hwy.Broadcast4(tanh600)) // 600 + 270x²

	x4 := hwy.Mul4(x2, x2)
	num := hwy.Add4(x4, hwy.Broadcast4(tanh600)) // x⁴ + 600

	x6 := hwy.Mul4(x4, x2)
	den = hwy.MulAdd4(x4, hwy.Broadcast4(tanh11), den) // + 11x⁴
	num = hwy.MulAdd4(x2, hwy.Broadcast4(tanh70), num) // + 70x²
	den = hwy.MulAdd4(x6, hwy.Broadcast4(tanhLast), den) // + x⁶/24
	num = hwy.Mul4(num, x)

	r := hwy.Div4(num, den)

	// Past the saturation point the rational form drifts and x⁶ eventually
	// overflows, so pin to ±1. NaN fails the compare and propagates.
	sign := hwy.SignMask4()
	big := hwy.Le4(hwy.Broadcast4(tanhSaturation), hwy.AndNot4(sign, x))
	return hwy.IfThenElse4(big, hwy.Or4(one4, hwy.And4(x, sign)), r)
}

// Tanh2 computes the hyperbolic tangent of both lanes.
func Tanh2(x hwy.Float64x2) hwy.Float64x2 {
	return hwy.Float64x2{ScalarTanh(x[0]), ScalarTanh(x[1])}
}

// ScalarTanh computes tanh(x).
func ScalarTanh(x float64) float64 {
	if stdmath.Float64frombits(stdmath.Float64bits(x)&^hwy.SignBit) >= tanhSaturation {
		return stdmath.Copysign(1, x)
	}
	x2 := float64(x * x)
	den := hwy.MulAdd(x2, tanh270, tanh600)
	x4 := float64(x2 * x2)
	num := x4 + tanh600
	x6 := float64(x4 * x2)
	den = hwy.MulAdd(x4, tanh11, den)
	num = hwy.MulAdd(x2, tanh70, num)
	den = hwy.MulAdd(x6, tanhLast, den)
	num = float64(num * x)
	return num / den
}
