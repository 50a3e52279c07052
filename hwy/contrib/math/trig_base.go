package math

import (
	"github.com/ajroetker/avxmath/hwy"
)

// Polynomials in x² on the reduced argument. The sequence of multiply-adds is
// shared by every width so that all forms round identically.

func cosPoly4(x2 hwy.Float64x4) hwy.Float64x4 {
	r := hwy.Broadcast4(cosSinCoefficients[4][0])
	for i := 3; i >= 0; i-- {
		r = hwy.MulAdd4(r, x2, hwy.Broadcast4(cosSinCoefficients[i][0]))
	}
	return hwy.MulAdd4(r, x2, one4)
}

func sinPoly4(x2 hwy.Float64x4) hwy.Float64x4 {
	r := hwy.Broadcast4(cosSinCoefficients[4][1])
	for i := 3; i >= 0; i-- {
		r = hwy.MulAdd4(r, x2, hwy.Broadcast4(cosSinCoefficients[i][1]))
	}
	return hwy.MulAdd4(r, x2, one4)
}

// cosSinPoly2 evaluates cos in lane X and sin in lane Y of one register.
func cosSinPoly2(x2 hwy.Float64x2) hwy.Float64x2 {
	r := cosSinCoefficients[4]
	for i := 3; i >= 0; i-- {
		r = hwy.MulAdd2(r, x2, cosSinCoefficients[i])
	}
	return hwy.MulAdd2(r, x2, hwy.Broadcast2(1))
}

func cosPoly(x2 float64) float64 {
	r := cosSinCoefficients[4][0]
	for i := 3; i >= 0; i-- {
		r = hwy.MulAdd(r, x2, cosSinCoefficients[i][0])
	}
	return hwy.MulAdd(r, x2, 1)
}

func sinPoly(x2 float64) float64 {
	r := cosSinCoefficients[4][1]
	for i := 3; i >= 0; i-- {
		r = hwy.MulAdd(r, x2, cosSinCoefficients[i][1])
	}
	return hwy.MulAdd(r, x2, 1)
}

func sinCos4Base(a hwy.Float64x4) (sin, cos hwy.Float64x4) {
	x, sign := reduce4(a)
	x2 := hwy.Mul4(x, x)
	sin = hwy.Mul4(sinPoly4(x2), x)
	cos = hwy.Or4(cosPoly4(x2), sign)
	return sin, cos
}

func sin4Base(a hwy.Float64x4) hwy.Float64x4 {
	x, _ := reduce4(a)
	return hwy.Mul4(sinPoly4(hwy.Mul4(x, x)), x)
}

func cos4Base(a hwy.Float64x4) hwy.Float64x4 {
	x, sign := reduce4(a)
	return hwy.Or4(cosPoly4(hwy.Mul4(x, x)), sign)
}

// SinCos2 computes sine and cosine of both lanes.
func SinCos2(a hwy.Float64x2) (sin, cos hwy.Float64x2) {
	x, sign := reduce2(a)
	x2 := hwy.Mul2(x, x)
	for i := range 2 {
		cs := cosSinPoly2(hwy.Broadcast2(x2[i]))
		sin[i] = float64(cs[1] * x[i])
		cos[i] = hwy.OrSign(cs[0], sign[i])
	}
	return sin, cos
}

// Sin2 computes the sine of both lanes.
func Sin2(a hwy.Float64x2) hwy.Float64x2 {
	sin, _ := SinCos2(a)
	return sin
}

// Cos2 computes the cosine of both lanes.
func Cos2(a hwy.Float64x2) hwy.Float64x2 {
	_, cos := SinCos2(a)
	return cos
}

// ScalarSinCos returns [cos(a), sin(a)] in lanes X and Y.
func ScalarSinCos(a float64) hwy.Float64x2 {
	x, sign := reduce(a)
	cs := cosSinPoly2(hwy.Broadcast2(float64(x * x)))
	return hwy.Float64x2{hwy.OrSign(cs[0], sign), float64(cs[1] * x)}
}

// ScalarSin computes sin(a).
func ScalarSin(a float64) float64 {
	x, _ := reduce(a)
	return float64(sinPoly(float64(x*x)) * x)
}

// ScalarCos computes cos(a).
func ScalarCos(a float64) float64 {
	x, sign := reduce(a)
	return hwy.OrSign(cosPoly(float64(x*x)), sign)
}
