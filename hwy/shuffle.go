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

// Lane permutations. These are pure data movement and never change a lane's
// bit pattern.

// GetLane4 returns the value of one lane.
func GetLane4(v Float64x4, lane Lane) float64 {
	return v[lane]
}

// Splat4 broadcasts one lane to all four.
func Splat4(v Float64x4, lane Lane) Float64x4 {
	return Broadcast4(v[lane])
}

// SplatX broadcasts lane X.
func SplatX(v Float64x4) Float64x4 { return Broadcast4(v[0]) }

// SplatY broadcasts lane Y.
func SplatY(v Float64x4) Float64x4 { return Broadcast4(v[1]) }

// SplatZ broadcasts lane Z.
func SplatZ(v Float64x4) Float64x4 { return Broadcast4(v[2]) }

// SplatW broadcasts lane W.
func SplatW(v Float64x4) Float64x4 { return Broadcast4(v[3]) }

// SwapPairs4 exchanges neighbours within each half: XYZW -> YXWZ.
func SwapPairs4(v Float64x4) Float64x4 {
	return Float64x4{v[1], v[0], v[3], v[2]}
}

// SwapHalves4 exchanges the 128-bit halves: XYZW -> ZWXY.
func SwapHalves4(v Float64x4) Float64x4 {
	return Float64x4{v[2], v[3], v[0], v[1]}
}

// Reverse4 reverses lane order: XYZW -> WZYX.
func Reverse4(v Float64x4) Float64x4 {
	return Float64x4{v[3], v[2], v[1], v[0]}
}

// RotateYZX4 cycles the first three lanes: XYZW -> YZXW.
func RotateYZX4(v Float64x4) Float64x4 {
	return Float64x4{v[1], v[2], v[0], v[3]}
}

// RotateZXY4 cycles the first three lanes the other way: XYZW -> ZXYW.
func RotateZXY4(v Float64x4) Float64x4 {
	return Float64x4{v[2], v[0], v[1], v[3]}
}

// InterleaveEven4 returns a0, b0, a2, b2 (UNPCKLPD within each half).
func InterleaveEven4(a, b Float64x4) Float64x4 {
	return Float64x4{a[0], b[0], a[2], b[2]}
}

// InterleaveOdd4 returns a1, b1, a3, b3 (UNPCKHPD within each half).
func InterleaveOdd4(a, b Float64x4) Float64x4 {
	return Float64x4{a[1], b[1], a[3], b[3]}
}

// ConcatLowerLower4 returns the low half of a followed by the low half of b:
// a0, a1, b0, b1.
func ConcatLowerLower4(a, b Float64x4) Float64x4 {
	return Float64x4{a[0], a[1], b[0], b[1]}
}

// ConcatUpperUpper4 returns the high half of a followed by the high half of b:
// a2, a3, b2, b3.
func ConcatUpperUpper4(a, b Float64x4) Float64x4 {
	return Float64x4{a[2], a[3], b[2], b[3]}
}

// SwapLanes2 exchanges the two lanes: XY -> YX.
func SwapLanes2(v Float64x2) Float64x2 {
	return Float64x2{v[1], v[0]}
}

// SplatX2 broadcasts lane X of a narrow register.
func SplatX2(v Float64x2) Float64x2 { return Broadcast2(v[0]) }

// SplatY2 broadcasts lane Y of a narrow register.
func SplatY2(v Float64x2) Float64x2 { return Broadcast2(v[1]) }

// SetLane4 returns v with one lane replaced.
func SetLane4(v Float64x4, lane Lane, value float64) Float64x4 {
	v[lane] = value
	return v
}
