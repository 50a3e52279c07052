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

// Package vec provides 2D, 3D and 4D vector algebra on hwy registers.
//
// Vectors are hwy.Float64x4 values with lanes X, Y, Z, W; 3D functions ignore
// the W lane of their inputs, so callers may leave anything there. 2D
// functions take hwy.Float64x2. Results that are scalars (dot products,
// lengths) are broadcast to every lane so they can feed further register
// arithmetic without extraction.
//
// Example:
//
//	a := hwy.Set4(1, 2, 3, 4)
//	b := hwy.Set4(5, 6, 7, 8)
//	vec.Dot4(a, b) // [70 70 70 70]
//	vec.Dot3(a, b) // [38 38 38 38]
package vec

import "github.com/ajroetker/avxmath/hwy"

// Dot4x2 returns the 4D dot product of a and b in both lanes of a narrow
// register.
func Dot4x2(a, b hwy.Float64x4) hwy.Float64x2 {
	p := hwy.Mul4(a, b)
	s := hwy.Add2(p.Lo(), p.Hi()) // x+z, y+w
	return hwy.Add2(s, hwy.SwapLanes2(s))
}

// Dot4 returns the 4D dot product of a and b in every lane.
func Dot4(a, b hwy.Float64x4) hwy.Float64x4 {
	return hwy.Dup2(Dot4x2(a, b))
}

// Dot3x2 returns the 3D dot product of a and b in both lanes. The W lanes do
// not take part, even when they hold Inf or NaN.
func Dot3x2(a, b hwy.Float64x4) hwy.Float64x2 {
	p := hwy.Mul4(a, b)
	s := p[0] + p[2]
	s += p[1]
	return hwy.Broadcast2(s)
}

// Dot3 returns the 3D dot product of a and b in every lane.
func Dot3(a, b hwy.Float64x4) hwy.Float64x4 {
	return hwy.Dup2(Dot3x2(a, b))
}

// Dot2 returns the 2D dot product of a and b in both lanes.
func Dot2(a, b hwy.Float64x2) hwy.Float64x2 {
	p := hwy.Mul2(a, b)
	return hwy.Add2(p, hwy.SwapLanes2(p))
}

// LengthSq4 returns the squared 4D length of v in every lane.
func LengthSq4(v hwy.Float64x4) hwy.Float64x4 { return Dot4(v, v) }

// LengthSq3 returns the squared 3D length of v in every lane.
func LengthSq3(v hwy.Float64x4) hwy.Float64x4 { return Dot3(v, v) }

// LengthSq2 returns the squared 2D length of v in both lanes.
func LengthSq2(v hwy.Float64x2) hwy.Float64x2 { return Dot2(v, v) }

// Length4 returns the 4D length of v in every lane.
func Length4(v hwy.Float64x4) hwy.Float64x4 { return hwy.Sqrt4(Dot4(v, v)) }

// Length3 returns the 3D length of v in every lane.
func Length3(v hwy.Float64x4) hwy.Float64x4 { return hwy.Sqrt4(Dot3(v, v)) }

// Length2 returns the 2D length of v in both lanes.
func Length2(v hwy.Float64x2) hwy.Float64x2 { return hwy.Sqrt2(Dot2(v, v)) }
