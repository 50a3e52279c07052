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

// Package matrix provides 4x4 matrix algebra on hwy.Matrix4x4 values.
//
// A hwy.Matrix4x4 holds four row registers. The storage says nothing about
// convention; the transform applied to it does:
//
//   - Transform(v, m) computes m·v, lane i being v·m[i].
//   - TransformTransposed(v, m) computes v·m, the sum of m[i] scaled by v[i].
//     It needs no horizontal reduction and is the cheaper of the two.
//
// Transform(v, m) == TransformTransposed(v, Transpose(m)) up to rounding.
// The builders (Translation, Scaling, RotationQuaternion) produce matrices in
// the row-vector convention used by TransformTransposed and Multiply, so
// TransformTransposed(v, Multiply(a, b)) applies a first, then b.
package matrix

import "github.com/ajroetker/avxmath/hwy"

// Identity returns the 4x4 identity matrix.
func Identity() hwy.Matrix4x4 {
	return hwy.Matrix4x4{
		hwy.Set4(1, 0, 0, 0),
		hwy.Set4(0, 1, 0, 0),
		hwy.Set4(0, 0, 1, 0),
		hwy.Set4(0, 0, 0, 1),
	}
}

// Transpose returns the transpose of m.
func Transpose(m hwy.Matrix4x4) hwy.Matrix4x4 {
	a := hwy.InterleaveEven4(m[0], m[1]) // m00 m10 m02 m12
	b := hwy.InterleaveOdd4(m[0], m[1])  // m01 m11 m03 m13
	c := hwy.InterleaveEven4(m[2], m[3]) // m20 m30 m22 m32
	d := hwy.InterleaveOdd4(m[2], m[3])  // m21 m31 m23 m33
	return hwy.Matrix4x4{
		hwy.ConcatLowerLower4(a, c),
		hwy.ConcatLowerLower4(b, d),
		hwy.ConcatUpperUpper4(a, c),
		hwy.ConcatUpperUpper4(b, d),
	}
}

// TransposeInPlace transposes *m. All four rows are computed before any is
// written back.
func TransposeInPlace(m *hwy.Matrix4x4) {
	*m = Transpose(*m)
}

// Translation returns the matrix that moves a point by (x, y, z) under
// TransformTransposed.
func Translation(x, y, z float64) hwy.Matrix4x4 {
	m := Identity()
	m[3] = hwy.Set4(x, y, z, 1)
	return m
}

// Scaling returns the matrix that scales X, Y and Z independently.
func Scaling(x, y, z float64) hwy.Matrix4x4 {
	return hwy.Matrix4x4{
		hwy.Set4(x, 0, 0, 0),
		hwy.Set4(0, y, 0, 0),
		hwy.Set4(0, 0, z, 0),
		hwy.Set4(0, 0, 0, 1),
	}
}

// RotationQuaternion returns the rotation matrix of the quaternion q.
// Row i is the image of basis vector i, so TransformTransposed(v, m) rotates
// v the same way quat.Rotate(v, q) does, and Transform(v, m) the same way as
// quat.InverseRotate. The homogeneous form is used, so like quat.Rotate the
// matrix also scales by |q|² when q is not exactly unit length.
func RotationQuaternion(q hwy.Float64x4) hwy.Matrix4x4 {
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W()
	xx, yy, zz, ww := float64(x*x), float64(y*y), float64(z*z), float64(w*w)
	x2, y2, z2 := x+x, y+y, z+z
	xy, xz, yz := float64(x*y2), float64(x*z2), float64(y*z2)
	wx, wy, wz := float64(w*x2), float64(w*y2), float64(w*z2)

	return hwy.Matrix4x4{
		hwy.Set4((ww+xx)-(yy+zz), xy+wz, xz-wy, 0),
		hwy.Set4(xy-wz, (ww-xx)+(yy-zz), yz+wx, 0),
		hwy.Set4(xz+wy, yz-wx, (ww-xx)-(yy-zz), 0),
		hwy.Set4(0, 0, 0, 1),
	}
}
