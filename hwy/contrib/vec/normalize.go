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

import (
	stdmath "math"

	"github.com/ajroetker/avxmath/hwy"
)

// UnitTolerance is how far a squared length may be from 1 for a vector to be
// treated as already normalized and returned unchanged by Normalize2,
// Normalize3 and Normalize4, instead of being divided by its length.
const UnitTolerance = 1e-14

// Normalize4 returns v scaled to unit 4D length.
//
//   - squared length exactly 0: the zero vector
//   - squared length +Inf: NaN in every lane
//   - squared length within UnitTolerance of 1: v unchanged
//   - otherwise v / length(v); NaN inputs give NaN
//
// Normalize4(Normalize4(v)) equals Normalize4(v) bit for bit.
func Normalize4(v hwy.Float64x4) hwy.Float64x4 {
	return normalize4(v, Dot4(v, v)[0])
}

// Normalize3 is Normalize4 using the 3D length. The W lane is divided like
// the others, so callers that need it preserved should restore it. A vector
// whose squared 3D length is within UnitTolerance of 1 is returned
// unchanged, W included.
func Normalize3(v hwy.Float64x4) hwy.Float64x4 {
	return normalize4(v, Dot3x2(v, v)[0])
}

func normalize4(v hwy.Float64x4, lengthSq float64) hwy.Float64x4 {
	switch {
	case lengthSq == 0:
		return hwy.Zero4()
	case stdmath.IsInf(lengthSq, 1):
		return hwy.Broadcast4(stdmath.NaN())
	case stdmath.Abs(lengthSq-1) <= UnitTolerance:
		return v
	}
	return hwy.Div4(v, hwy.Sqrt4(hwy.Broadcast4(lengthSq)))
}

// Normalize2 is Normalize4 for 2D vectors: zero stays zero, an infinite
// length gives NaN, a squared length within UnitTolerance of 1 returns v
// unchanged, and anything else is divided by its length.
func Normalize2(v hwy.Float64x2) hwy.Float64x2 {
	lengthSq := Dot2(v, v)[0]
	switch {
	case lengthSq == 0:
		return hwy.Zero2()
	case stdmath.IsInf(lengthSq, 1):
		return hwy.Broadcast2(stdmath.NaN())
	case stdmath.Abs(lengthSq-1) <= UnitTolerance:
		return v
	}
	return hwy.Div2(v, hwy.Sqrt2(hwy.Broadcast2(lengthSq)))
}
