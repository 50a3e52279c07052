// Package hwy provides fixed-width float64 register types and the lane algebra
// used by the vector, matrix, quaternion and transcendental kernels in
// hwy/contrib.
//
// A Float64x4 models a 256-bit register holding four doubles (lanes X, Y, Z, W);
// a Float64x2 models a 128-bit register holding two (lanes X, Y). Both are plain
// values: every operation takes registers by value and returns a new register,
// so kernels are free of shared state and safe for concurrent use.
//
// Basic usage:
//
//	import "github.com/ajroetker/avxmath/hwy"
//
//	a := hwy.Set4(1, 2, 3, 4)
//	b := hwy.Broadcast4(0.5)
//	c := hwy.MulAdd4(a, b, hwy.SplatW(a)) // a*b + a.W per lane
//
// When the CPU supports fused multiply-add (see HasFMA), MulAdd4 rounds once;
// otherwise it rounds after the multiply and after the add. The two modes may
// differ by 1 ULP per operation.
package hwy

// Lane names a position inside a register.
type Lane int

const (
	LaneX Lane = iota
	LaneY
	LaneZ
	LaneW
)

// String returns the lane letter.
func (l Lane) String() string {
	switch l {
	case LaneX:
		return "X"
	case LaneY:
		return "Y"
	case LaneZ:
		return "Z"
	case LaneW:
		return "W"
	default:
		return "?"
	}
}

// Float64x4 is a 4-wide register of doubles. Index 0 is lane X.
type Float64x4 [4]float64

// Float64x2 is a 2-wide register of doubles. Index 0 is lane X.
type Float64x2 [2]float64

// Matrix4x4 holds one register per row. Whether a matrix is read row-major or
// transposed is decided by the transform applied to it, not by its storage.
type Matrix4x4 [4]Float64x4

// Mask4 is the per-lane result of a 4-wide comparison.
type Mask4 [4]bool

// Mask2 is the per-lane result of a 2-wide comparison.
type Mask2 [2]bool

// X returns lane 0.
func (v Float64x4) X() float64 { return v[0] }

// Y returns lane 1.
func (v Float64x4) Y() float64 { return v[1] }

// Z returns lane 2.
func (v Float64x4) Z() float64 { return v[2] }

// W returns lane 3.
func (v Float64x4) W() float64 { return v[3] }

// Lo returns lanes X and Y as a narrow register.
func (v Float64x4) Lo() Float64x2 { return Float64x2{v[0], v[1]} }

// Hi returns lanes Z and W as a narrow register.
func (v Float64x4) Hi() Float64x2 { return Float64x2{v[2], v[3]} }

// X returns lane 0.
func (v Float64x2) X() float64 { return v[0] }

// Y returns lane 1.
func (v Float64x2) Y() float64 { return v[1] }

// AllTrue reports whether every lane is set.
func (m Mask4) AllTrue() bool { return m[0] && m[1] && m[2] && m[3] }

// AnyTrue reports whether at least one lane is set.
func (m Mask4) AnyTrue() bool { return m[0] || m[1] || m[2] || m[3] }

// AllFalse reports whether no lane is set.
func (m Mask4) AllFalse() bool { return !m.AnyTrue() }

// Bits packs the mask into the low four bits, lane X in bit 0.
func (m Mask4) Bits() uint8 {
	var b uint8
	for i, set := range m {
		if set {
			b |= 1 << i
		}
	}
	return b
}

// AllTrue reports whether both lanes are set.
func (m Mask2) AllTrue() bool { return m[0] && m[1] }

// AnyTrue reports whether at least one lane is set.
func (m Mask2) AnyTrue() bool { return m[0] || m[1] }

// AllFalse reports whether no lane is set.
func (m Mask2) AllFalse() bool { return !m.AnyTrue() }

// Bits packs the mask into the low two bits, lane X in bit 0.
func (m Mask2) Bits() uint8 {
	var b uint8
	if m[0] {
		b |= 1
	}
	if m[1] {
		b |= 2
	}
	return b
}
