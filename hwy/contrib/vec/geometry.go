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

package vec

import "github.com/ajroetker/avxmath/hwy"

// Cross3 returns the 3D cross product a × b as a.yzx·b.zxy - a.zxy·b.yzx.
//
// The W lane of the result is a.w·b.w - a.w·b.w, which is 0 for finite
// inputs but NaN when either W lane holds Inf or NaN.
func Cross3(a, b hwy.Float64x4) hwy.Float64x4 {
	l := hwy.Mul4(hwy.RotateYZX4(a), hwy.RotateZXY4(b))
	r := hwy.Mul4(hwy.RotateZXY4(a), hwy.RotateYZX4(b))
	return hwy.Sub4(l, r)
}

// Cross2 returns the 2D cross product a.x·b.y - a.y·b.x in both lanes.
func Cross2(a, b hwy.Float64x2) hwy.Float64x2 {
	p := hwy.Mul2(a, hwy.SwapLanes2(b))
	return hwy.SplatX2(hwy.Sub2(p, hwy.SwapLanes2(p)))
}

// Homogeneous3 returns v with W set to 1.
func Homogeneous3(v hwy.Float64x4) hwy.Float64x4 {
	return hwy.SetLane4(v, hwy.LaneW, 1)
}

// Cartesian4 divides every lane of v by its W lane. W becomes exactly 1 when
// it was finite and nonzero.
func Cartesian4(v hwy.Float64x4) hwy.Float64x4 {
	return hwy.Div4(v, hwy.SplatW(v))
}

// Saturate4 clamps every lane to [0, 1]. Lanes holding NaN stay NaN.
func Saturate4(v hwy.Float64x4) hwy.Float64x4 {
	// Max then Min with the input in the second operand: the x86-style
	// min/max return the second operand when either is NaN.
	return hwy.Min4(hwy.Broadcast4(1), hwy.Max4(hwy.Zero4(), v))
}

// Saturate2 clamps both lanes to [0, 1]. Lanes holding NaN stay NaN.
func Saturate2(v hwy.Float64x2) hwy.Float64x2 {
	return hwy.Min2(hwy.Broadcast2(1), hwy.Max2(hwy.Zero2(), v))
}

// InBounds4 reports whether |v| <= bounds in every lane.
func InBounds4(v, bounds hwy.Float64x4) bool {
	return hwy.InBounds4(v, bounds)
}

// InBounds3 reports whether |v| <= bounds in lanes X, Y and Z.
func InBounds3(v, bounds hwy.Float64x4) bool {
	const xyz = 0b0111
	return hwy.Le4(hwy.Abs4(v), bounds).Bits()&xyz == xyz
}

// InBounds2 reports whether |v| <= bounds in both lanes.
func InBounds2(v, bounds hwy.Float64x2) bool {
	return hwy.InBounds2(v, bounds)
}
