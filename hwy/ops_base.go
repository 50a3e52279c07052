// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides the portable lane-by-lane implementations of the
// register operations. Accelerated kernels (*_avx2.go) must produce the same
// per-lane results, so every operation here maps to exactly one IEEE
// operation per lane.

// Set4 creates a register from four lane values.
func Set4(x, y, z, w float64) Float64x4 {
	return Float64x4{x, y, z, w}
}

// Broadcast4 creates a register with all lanes set to value.
func Broadcast4(value float64) Float64x4 {
	return Float64x4{value, value, value, value}
}

// Zero4 returns a register with all lanes +0.
func Zero4() Float64x4 {
	return Float64x4{}
}

// Set2 creates a narrow register from two lane values.
func Set2(x, y float64) Float64x2 {
	return Float64x2{x, y}
}

// Broadcast2 creates a narrow register with both lanes set to value.
func Broadcast2(value float64) Float64x2 {
	return Float64x2{value, value}
}

// Zero2 returns a narrow register with both lanes +0.
func Zero2() Float64x2 {
	return Float64x2{}
}

// Combine4 joins two narrow registers: lo fills X,Y and hi fills Z,W.
func Combine4(lo, hi Float64x2) Float64x4 {
	return Float64x4{lo[0], lo[1], hi[0], hi[1]}
}

// Dup2 repeats a narrow register in both halves of a wide one.
func Dup2(v Float64x2) Float64x4 {
	return Float64x4{v[0], v[1], v[0], v[1]}
}

// Add4 performs lane-wise addition.
func Add4(a, b Float64x4) Float64x4 {
	return Float64x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub4 performs lane-wise subtraction.
func Sub4(a, b Float64x4) Float64x4 {
	return Float64x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul4 performs lane-wise multiplication. Products are converted explicitly
// so the compiler never fuses them into a later add.
func Mul4(a, b Float64x4) Float64x4 {
	return Float64x4{float64(a[0] * b[0]), float64(a[1] * b[1]), float64(a[2] * b[2]), float64(a[3] * b[3])}
}

// Div4 performs lane-wise division.
func Div4(a, b Float64x4) Float64x4 {
	return Float64x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Sqrt4 computes the square root of each lane.
func Sqrt4(v Float64x4) Float64x4 {
	return Float64x4{math.Sqrt(v[0]), math.Sqrt(v[1]), math.Sqrt(v[2]), math.Sqrt(v[3])}
}

// Min4 returns the lane-wise minimum with MINPD semantics: when either lane is
// NaN, or both are zero, the lane from b is returned.
func Min4(a, b Float64x4) Float64x4 {
	return Float64x4{minLane(a[0], b[0]), minLane(a[1], b[1]), minLane(a[2], b[2]), minLane(a[3], b[3])}
}

// Max4 returns the lane-wise maximum with MAXPD semantics: when either lane is
// NaN, or both are zero, the lane from b is returned.
func Max4(a, b Float64x4) Float64x4 {
	return Float64x4{maxLane(a[0], b[0]), maxLane(a[1], b[1]), maxLane(a[2], b[2]), maxLane(a[3], b[3])}
}

func minLane(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxLane(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Neg4 computes 0 - v per lane. Unlike a sign flip, Neg4(+0) is +0.
func Neg4(v Float64x4) Float64x4 {
	return Sub4(Float64x4{}, v)
}

// Abs4 computes Max4(v, Neg4(v)). NaN lanes stay NaN.
func Abs4(v Float64x4) Float64x4 {
	return Max4(v, Neg4(v))
}

// MulAdd4 computes a*b + c per lane, fused when HasFMA reports true.
func MulAdd4(a, b, c Float64x4) Float64x4 {
	if hasFMA {
		return FusedMulAdd4(a, b, c)
	}
	return RoundedMulAdd4(a, b, c)
}

// FusedMulAdd4 computes a*b + c per lane with a single rounding.
func FusedMulAdd4(a, b, c Float64x4) Float64x4 {
	return Float64x4{
		math.FMA(a[0], b[0], c[0]),
		math.FMA(a[1], b[1], c[1]),
		math.FMA(a[2], b[2], c[2]),
		math.FMA(a[3], b[3], c[3]),
	}
}

// RoundedMulAdd4 computes a*b + c per lane, rounding the product before the
// add. The explicit conversions keep the compiler from fusing.
func RoundedMulAdd4(a, b, c Float64x4) Float64x4 {
	return Float64x4{
		float64(a[0]*b[0]) + c[0],
		float64(a[1]*b[1]) + c[1],
		float64(a[2]*b[2]) + c[2],
		float64(a[3]*b[3]) + c[3],
	}
}

// Round4 rounds each lane to the nearest integer, ties to even.
func Round4(v Float64x4) Float64x4 {
	return Float64x4{math.RoundToEven(v[0]), math.RoundToEven(v[1]), math.RoundToEven(v[2]), math.RoundToEven(v[3])}
}

// Eq4 compares lanes for numeric equality. NaN compares unequal.
func Eq4(a, b Float64x4) Mask4 {
	return Mask4{a[0] == b[0], a[1] == b[1], a[2] == b[2], a[3] == b[3]}
}

// Lt4 reports a < b per lane. NaN lanes are false.
func Lt4(a, b Float64x4) Mask4 {
	return Mask4{a[0] < b[0], a[1] < b[1], a[2] < b[2], a[3] < b[3]}
}

// Le4 reports a <= b per lane. NaN lanes are false.
func Le4(a, b Float64x4) Mask4 {
	return Mask4{a[0] <= b[0], a[1] <= b[1], a[2] <= b[2], a[3] <= b[3]}
}

// IfThenElse4 selects lanes from yes where mask is set, from no otherwise.
func IfThenElse4(mask Mask4, yes, no Float64x4) Float64x4 {
	var r Float64x4
	for i := range r {
		if mask[i] {
			r[i] = yes[i]
		} else {
			r[i] = no[i]
		}
	}
	return r
}

// InBounds4 reports whether -bounds <= v <= bounds holds in every lane.
// Boundary values are in bounds; a NaN lane is out of bounds.
func InBounds4(v, bounds Float64x4) bool {
	return Le4(Abs4(v), bounds).AllTrue()
}

// Add2 performs lane-wise addition.
func Add2(a, b Float64x2) Float64x2 {
	return Float64x2{a[0] + b[0], a[1] + b[1]}
}

// Sub2 performs lane-wise subtraction.
func Sub2(a, b Float64x2) Float64x2 {
	return Float64x2{a[0] - b[0], a[1] - b[1]}
}

// Mul2 performs lane-wise multiplication.
func Mul2(a, b Float64x2) Float64x2 {
	return Float64x2{float64(a[0] * b[0]), float64(a[1] * b[1])}
}

// Div2 performs lane-wise division.
func Div2(a, b Float64x2) Float64x2 {
	return Float64x2{a[0] / b[0], a[1] / b[1]}
}

// Sqrt2 computes the square root of each lane.
func Sqrt2(v Float64x2) Float64x2 {
	return Float64x2{math.Sqrt(v[0]), math.Sqrt(v[1])}
}

// Min2 is the narrow form of Min4.
func Min2(a, b Float64x2) Float64x2 {
	return Float64x2{minLane(a[0], b[0]), minLane(a[1], b[1])}
}

// Max2 is the narrow form of Max4.
func Max2(a, b Float64x2) Float64x2 {
	return Float64x2{maxLane(a[0], b[0]), maxLane(a[1], b[1])}
}

// Neg2 computes 0 - v per lane.
func Neg2(v Float64x2) Float64x2 {
	return Sub2(Float64x2{}, v)
}

// Abs2 computes Max2(v, Neg2(v)).
func Abs2(v Float64x2) Float64x2 {
	return Max2(v, Neg2(v))
}

// MulAdd2 computes a*b + c per lane, fused when HasFMA reports true.
func MulAdd2(a, b, c Float64x2) Float64x2 {
	if hasFMA {
		return Float64x2{math.FMA(a[0], b[0], c[0]), math.FMA(a[1], b[1], c[1])}
	}
	return Float64x2{float64(a[0]*b[0]) + c[0], float64(a[1]*b[1]) + c[1]}
}

// Round2 rounds each lane to the nearest integer, ties to even.
func Round2(v Float64x2) Float64x2 {
	return Float64x2{math.RoundToEven(v[0]), math.RoundToEven(v[1])}
}

// Eq2 compares lanes for numeric equality.
func Eq2(a, b Float64x2) Mask2 {
	return Mask2{a[0] == b[0], a[1] == b[1]}
}

// Lt2 reports a < b per lane.
func Lt2(a, b Float64x2) Mask2 {
	return Mask2{a[0] < b[0], a[1] < b[1]}
}

// Le2 reports a <= b per lane.
func Le2(a, b Float64x2) Mask2 {
	return Mask2{a[0] <= b[0], a[1] <= b[1]}
}

// IfThenElse2 selects lanes from yes where mask is set, from no otherwise.
func IfThenElse2(mask Mask2, yes, no Float64x2) Float64x2 {
	r := no
	if mask[0] {
		r[0] = yes[0]
	}
	if mask[1] {
		r[1] = yes[1]
	}
	return r
}

// InBounds2 is the narrow form of InBounds4.
func InBounds2(v, bounds Float64x2) bool {
	return Le2(Abs2(v), bounds).AllTrue()
}

// MulAdd computes a*b + c, fused when HasFMA reports true.
func MulAdd(a, b, c float64) float64 {
	if hasFMA {
		return math.FMA(a, b, c)
	}
	return float64(a*b) + c
}

// Round rounds to the nearest integer, ties to even.
func Round(x float64) float64 {
	return math.RoundToEven(x)
}

// LRound rounds to the nearest integer, ties to even, and converts to int64.
// Out-of-range values and NaN give an implementation-specific result.
func LRound(x float64) int64 {
	return int64(math.RoundToEven(x))
}

// IRound is LRound for int.
func IRound(x float64) int {
	return int(math.RoundToEven(x))
}
