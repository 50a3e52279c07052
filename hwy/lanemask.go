package hwy

//go:generate go run ../cmd/lanegen -output lanemask_gen.go -pkg hwy

// NegateLanes negates the lanes selected by M, computing 0 - v in those
// lanes. An invalid selector is a compile error because M must be one of the
// generated Lanes* types.
//
//	q := hwy.NegateLanes[hwy.LanesXYZ](q) // quaternion conjugate
func NegateLanes[M LaneMask](v Float64x4) Float64x4 {
	var m M
	bits := m.Bits()
	for i := range v {
		if bits&(1<<i) != 0 {
			v[i] = 0 - v[i]
		}
	}
	return v
}

// Blend4 takes the lanes selected by M from b and the rest from a.
//
//	hwy.Blend4[hwy.LanesYW](a, b) // a0, b1, a2, b3
func Blend4[M LaneMask](a, b Float64x4) Float64x4 {
	var m M
	bits := m.Bits()
	for i := range a {
		if bits&(1<<i) != 0 {
			a[i] = b[i]
		}
	}
	return a
}

// LaneBits returns the bit pattern of selector M.
func LaneBits[M LaneMask]() uint8 {
	var m M
	return m.Bits()
}
