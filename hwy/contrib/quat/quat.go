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

// Package quat provides quaternion algebra on hwy registers.
//
// A quaternion is a hwy.Float64x4 whose X, Y and Z lanes hold the vector
// part and whose W lane holds the scalar part. Rotation quaternions must
// have unit length; the constructors in this package guarantee it up to
// rounding, but quaternions supplied by callers are not checked.
//
// Rotations follow the q ⊗ v ⊗ q* convention: composing a ⊗ b rotates by b
// first, then by a.
package quat

import (
	"github.com/ajroetker/avxmath/hwy"
	"github.com/ajroetker/avxmath/hwy/contrib/vec"
)

// Identity returns the identity rotation [0, 0, 0, 1].
func Identity() hwy.Float64x4 {
	return hwy.Set4(0, 0, 0, 1)
}

// Multiply returns the Hamilton product a ⊗ b:
//
//	xyz = a.w·b.xyz + b.w·a.xyz + a.xyz × b.xyz
//	w   = a.w·b.w - a.xyz·b.xyz
//
// It is built from the four lane splats of b, each scaling a permutation of
// a with a fixed sign pattern, accumulated with multiply-add.
func Multiply(a, b hwy.Float64x4) hwy.Float64x4 {
	res := hwy.Mul4(hwy.SplatW(b), a)

	// a.wzyx with z, w negated
	p := hwy.NegateLanes[hwy.LanesZW](hwy.SwapPairs4(hwy.SwapHalves4(a)))
	res = hwy.MulAdd4(hwy.SplatX(b), p, res)

	// a.zwxy with x, w negated
	p = hwy.NegateLanes[hwy.LanesXW](hwy.SwapHalves4(a))
	res = hwy.MulAdd4(hwy.SplatY(b), p, res)

	// a.yxwz with y, w negated
	p = hwy.NegateLanes[hwy.LanesYW](hwy.SwapPairs4(a))
	return hwy.MulAdd4(hwy.SplatZ(b), p, res)
}

// Conjugate negates the vector part of q, leaving W unchanged.
func Conjugate(q hwy.Float64x4) hwy.Float64x4 {
	return hwy.NegateLanes[hwy.LanesXYZ](q)
}

// Normalize scales q to unit length with the same policy as vec.Normalize4:
// a zero quaternion stays zero and an infinite one becomes all NaN.
func Normalize(q hwy.Float64x4) hwy.Float64x4 {
	return vec.Normalize4(q)
}

// LengthSq returns the squared norm of q in every lane.
func LengthSq(q hwy.Float64x4) hwy.Float64x4 {
	return vec.Dot4(q, q)
}
