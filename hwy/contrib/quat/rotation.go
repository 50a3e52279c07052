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

package quat

import (
	"github.com/ajroetker/avxmath/hwy"
	"github.com/ajroetker/avxmath/hwy/contrib/math"
	"github.com/ajroetker/avxmath/hwy/contrib/vec"
)

var half4 = hwy.Broadcast4(0.5)

// RollPitchYaw builds a rotation from Euler angles in radians stored as
// X = pitch, Y = yaw, Z = roll. W is ignored.
//
// The result equals qYaw ⊗ qPitch ⊗ qRoll: a rotated vector is turned by
// roll about Z first, then by pitch about X, then by yaw about Y. All six
// half-angle sines and cosines come from one math.SinCos4 call.
func RollPitchYaw(angles hwy.Float64x4) hwy.Float64x4 {
	s, c := math.SinCos4(hwy.Mul4(angles, half4))

	// x = sx·cy·cz + cx·sy·sz
	// y = cx·sy·cz - sx·cy·sz
	// z = cx·cy·sz - sx·sy·cz
	// w = cx·cy·cz + sx·sy·sz
	p0 := hwy.Blend4[hwy.LanesX](hwy.SplatX(c), hwy.SplatX(s))
	p1 := hwy.Blend4[hwy.LanesY](hwy.SplatY(c), hwy.SplatY(s))
	p2 := hwy.Blend4[hwy.LanesZ](hwy.SplatZ(c), hwy.SplatZ(s))
	q0 := hwy.Blend4[hwy.LanesX](hwy.SplatX(s), hwy.SplatX(c))
	q1 := hwy.Blend4[hwy.LanesY](hwy.SplatY(s), hwy.SplatY(c))
	q2 := hwy.Blend4[hwy.LanesZ](hwy.SplatZ(s), hwy.SplatZ(c))

	lhs := hwy.Mul4(hwy.Mul4(p0, p1), p2)
	rhs := hwy.NegateLanes[hwy.LanesYZ](hwy.Mul4(q0, q1))
	return hwy.MulAdd4(rhs, q2, lhs)
}

// RotationNormal returns the rotation by angle radians about axis, which
// must already have unit 3D length: [sin(θ/2)·axis.xyz, cos(θ/2)].
func RotationNormal(axis hwy.Float64x4, angle float64) hwy.Float64x4 {
	cs := math.ScalarSinCos(float64(angle * 0.5))
	return hwy.SetLane4(hwy.Mul4(axis, hwy.Broadcast4(cs.Y())), hwy.LaneW, cs.X())
}

// RotationAxis is RotationNormal for an axis of any nonzero length.
func RotationAxis(axis hwy.Float64x4, angle float64) hwy.Float64x4 {
	return RotationNormal(vec.Normalize3(axis), angle)
}

// Rotate returns v rotated by the unit quaternion q, computed as q ⊗ v ⊗ q*
// with v taken as a pure quaternion. The W lanes of v and of the result are 0.
func Rotate(v, q hwy.Float64x4) hwy.Float64x4 {
	p := hwy.Blend4[hwy.LanesW](v, hwy.Zero4())
	r := Multiply(Multiply(q, p), Conjugate(q))
	return hwy.Blend4[hwy.LanesW](r, hwy.Zero4())
}

// InverseRotate undoes Rotate: it computes q* ⊗ v ⊗ q.
func InverseRotate(v, q hwy.Float64x4) hwy.Float64x4 {
	p := hwy.Blend4[hwy.LanesW](v, hwy.Zero4())
	r := Multiply(Multiply(Conjugate(q), p), q)
	return hwy.Blend4[hwy.LanesW](r, hwy.Zero4())
}
