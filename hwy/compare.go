package hwy

import "math"

// Equal4 reports whether all four lanes are numerically equal. -0 equals +0;
// a NaN lane makes the registers unequal.
func Equal4(a, b Float64x4) bool {
	return Eq4(a, b).AllTrue()
}

// Equal3 is Equal4 ignoring lane W.
func Equal3(a, b Float64x4) bool {
	m := Eq4(a, b)
	return m[0] && m[1] && m[2]
}

// Equal2 reports whether both lanes are numerically equal.
func Equal2(a, b Float64x2) bool {
	return Eq2(a, b).AllTrue()
}

// Less4 orders registers lexicographically with lane W most significant: the
// highest lane where a and b differ decides. Lanes holding NaN compare as
// equal, so the order is total only on non-NaN input.
func Less4(a, b Float64x4) bool {
	return Lt4(a, b).Bits() > Lt4(b, a).Bits()
}

// Less3 is Less4 ignoring lane W.
func Less3(a, b Float64x4) bool {
	const xyz = 0b0111
	return Lt4(a, b).Bits()&xyz > Lt4(b, a).Bits()&xyz
}

// Less2 orders narrow registers with lane Y most significant.
func Less2(a, b Float64x2) bool {
	return Lt2(a, b).Bits() > Lt2(b, a).Bits()
}

// BitwiseEqual4 reports whether all lanes have identical bit patterns, so
// -0 differs from +0 and a NaN equals the same NaN.
func BitwiseEqual4(a, b Float64x4) bool {
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}

// BitwiseEqual3 is BitwiseEqual4 ignoring lane W.
func BitwiseEqual3(a, b Float64x4) bool {
	a[3], b[3] = 0, 0
	return BitwiseEqual4(a, b)
}

// BitwiseEqual2 compares the bit patterns of both lanes.
func BitwiseEqual2(a, b Float64x2) bool {
	return math.Float64bits(a[0]) == math.Float64bits(b[0]) &&
		math.Float64bits(a[1]) == math.Float64bits(b[1])
}

// BitwiseEqualMatrix compares all sixteen lanes bit for bit.
func BitwiseEqualMatrix(a, b Matrix4x4) bool {
	for i := range a {
		if !BitwiseEqual4(a[i], b[i]) {
			return false
		}
	}
	return true
}
