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

package matrix

import (
	"github.com/ajroetker/avxmath/hwy"
	"github.com/ajroetker/avxmath/hwy/contrib/vec"
)

// Kernels with an accelerated form. Initialised to the portable versions
// and replaced by z_matrix_amd64.go while AVX2 and fused multiply-add are
// available.
var (
	// TransformTransposed returns v·m = v.x·m[0] + v.y·m[1] + v.z·m[2] + v.w·m[3].
	TransformTransposed func(v hwy.Float64x4, m hwy.Matrix4x4) hwy.Float64x4
	// Multiply returns a·b: row i is the sum over k of a[i][k]·b[k].
	// Multiplying by Identity on either side returns the other operand bit
	// for bit, except that -0 entries come back as +0.
	Multiply func(a, b hwy.Matrix4x4) hwy.Matrix4x4
)

func init() {
	if TransformTransposed == nil {
		TransformTransposed = transformTransposedBase
	}
	if Multiply == nil {
		Multiply = multiplyBase
	}
}

// Transform returns m·v: lane i holds the dot product of v and row i.
//
// The four dot products are reduced together: each row product is folded
// pairwise, then X/Z-lane and Y/W-lane partial sums from the four rows are
// blended and added, so no lane is extracted.
func Transform(v hwy.Float64x4, m hwy.Matrix4x4) hwy.Float64x4 {
	a := hwy.Mul4(v, m[0])
	b := hwy.Mul4(v, m[1])
	c := hwy.Mul4(v, m[2])
	d := hwy.Mul4(v, m[3])

	// p0+p1 in lanes X, Y and p2+p3 in lanes Z, W.
	a = hwy.Add4(a, hwy.SwapPairs4(a))
	b = hwy.Add4(b, hwy.SwapPairs4(b))
	c = hwy.Add4(c, hwy.SwapPairs4(c))
	d = hwy.Add4(d, hwy.SwapPairs4(d))

	ab := hwy.Blend4[hwy.LanesYW](a, b) // a01 b01 a23 b23
	cd := hwy.Blend4[hwy.LanesYW](c, d) // c01 d01 c23 d23
	return hwy.Add4(hwy.ConcatLowerLower4(ab, cd), hwy.ConcatUpperUpper4(ab, cd))
}

// Transform3 is Transform with the W lane of v taken as 1, for points.
func Transform3(v hwy.Float64x4, m hwy.Matrix4x4) hwy.Float64x4 {
	return Transform(vec.Homogeneous3(v), m)
}

func transformTransposedBase(v hwy.Float64x4, m hwy.Matrix4x4) hwy.Float64x4 {
	r := hwy.Mul4(hwy.SplatX(v), m[0])
	r = hwy.MulAdd4(hwy.SplatY(v), m[1], r)
	r = hwy.MulAdd4(hwy.SplatZ(v), m[2], r)
	return hwy.MulAdd4(hwy.SplatW(v), m[3], r)
}

func multiplyBase(a, b hwy.Matrix4x4) hwy.Matrix4x4 {
	var r hwy.Matrix4x4
	for i, row := range a {
		r[i] = transformTransposedBase(row, b)
	}
	return r
}
