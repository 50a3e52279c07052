package math

import "github.com/ajroetker/avxmath/hwy"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return float64(deg * radiansPerDegree)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return float64(rad * degreesPerRadian)
}

// Radians4 converts each lane from degrees to radians.
func Radians4(deg hwy.Float64x4) hwy.Float64x4 {
	return hwy.Mul4(deg, hwy.Broadcast4(radiansPerDegree))
}

// Degrees4 converts each lane from radians to degrees.
func Degrees4(rad hwy.Float64x4) hwy.Float64x4 {
	return hwy.Mul4(rad, hwy.Broadcast4(degreesPerRadian))
}

// Radians2 converts both lanes from degrees to radians.
func Radians2(deg hwy.Float64x2) hwy.Float64x2 {
	return hwy.Mul2(deg, hwy.Broadcast2(radiansPerDegree))
}

// Degrees2 converts both lanes from radians to degrees.
func Degrees2(rad hwy.Float64x2) hwy.Float64x2 {
	return hwy.Mul2(rad, hwy.Broadcast2(degreesPerRadian))
}
