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

// Bitwise operations on the IEEE-754 bit patterns of each lane.

// SignBit is the IEEE-754 sign bit of a float64.
const SignBit uint64 = 1 << 63

// SignMask4 returns -0.0 in every lane (only the sign bit set).
func SignMask4() Float64x4 {
	n := math.Copysign(0, -1)
	return Float64x4{n, n, n, n}
}

// SignMask2 returns -0.0 in both lanes.
func SignMask2() Float64x2 {
	n := math.Copysign(0, -1)
	return Float64x2{n, n}
}

// And4 returns a & b on lane bit patterns.
func And4(a, b Float64x4) Float64x4 {
	return Float64x4{
		math.Float64frombits(math.Float64bits(a[0]) & math.Float64bits(b[0])),
		math.Float64frombits(math.Float64bits(a[1]) & math.Float64bits(b[1])),
		math.Float64frombits(math.Float64bits(a[2]) & math.Float64bits(b[2])),
		math.Float64frombits(math.Float64bits(a[3]) & math.Float64bits(b[3])),
	}
}

// Or4 returns a | b on lane bit patterns.
func Or4(a, b Float64x4) Float64x4 {
	return Float64x4{
		math.Float64frombits(math.Float64bits(a[0]) | math.Float64bits(b[0])),
		math.Float64frombits(math.Float64bits(a[1]) | math.Float64bits(b[1])),
		math.Float64frombits(math.Float64bits(a[2]) | math.Float64bits(b[2])),
		math.Float64frombits(math.Float64bits(a[3]) | math.Float64bits(b[3])),
	}
}

// Xor4 returns a ^ b on lane bit patterns.
func Xor4(a, b Float64x4) Float64x4 {
	return Float64x4{
		math.Float64frombits(math.Float64bits(a[0]) ^ math.Float64bits(b[0])),
		math.Float64frombits(math.Float64bits(a[1]) ^ math.Float64bits(b[1])),
		math.Float64frombits(math.Float64bits(a[2]) ^ math.Float64bits(b[2])),
		math.Float64frombits(math.Float64bits(a[3]) ^ math.Float64bits(b[3])),
	}
}

// AndNot4 returns ^a & b on lane bit patterns (ANDNPD operand order).
func AndNot4(a, b Float64x4) Float64x4 {
	return Float64x4{
		math.Float64frombits(math.Float64bits(b[0]) &^ math.Float64bits(a[0])),
		math.Float64frombits(math.Float64bits(b[1]) &^ math.Float64bits(a[1])),
		math.Float64frombits(math.Float64bits(b[2]) &^ math.Float64bits(a[2])),
		math.Float64frombits(math.Float64bits(b[3]) &^ math.Float64bits(a[3])),
	}
}

// And2 returns a & b on lane bit patterns.
func And2(a, b Float64x2) Float64x2 {
	return Float64x2{
		math.Float64frombits(math.Float64bits(a[0]) & math.Float64bits(b[0])),
		math.Float64frombits(math.Float64bits(a[1]) & math.Float64bits(b[1])),
	}
}

// Or2 returns a | b on lane bit patterns.
func Or2(a, b Float64x2) Float64x2 {
	return Float64x2{
		math.Float64frombits(math.Float64bits(a[0]) | math.Float64bits(b[0])),
		math.Float64frombits(math.Float64bits(a[1]) | math.Float64bits(b[1])),
	}
}

// Xor2 returns a ^ b on lane bit patterns.
func Xor2(a, b Float64x2) Float64x2 {
	return Float64x2{
		math.Float64frombits(math.Float64bits(a[0]) ^ math.Float64bits(b[0])),
		math.Float64frombits(math.Float64bits(a[1]) ^ math.Float64bits(b[1])),
	}
}

// AndNot2 returns ^a & b on lane bit patterns.
func AndNot2(a, b Float64x2) Float64x2 {
	return Float64x2{
		math.Float64frombits(math.Float64bits(b[0]) &^ math.Float64bits(a[0])),
		math.Float64frombits(math.Float64bits(b[1]) &^ math.Float64bits(a[1])),
	}
}

// OrSign sets the sign bit of x when sign has it set. sign is expected to be
// +0 or -0.
func OrSign(x, sign float64) float64 {
	return math.Float64frombits(math.Float64bits(x) | math.Float64bits(sign)&SignBit)
}
