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

import "fmt"

// Load and store helpers. Short slices panic with an index error, the same as
// slice indexing would.

// Load4 reads four doubles.
func Load4(src []float64) Float64x4 {
	_ = src[3]
	return Float64x4{src[0], src[1], src[2], src[3]}
}

// Load3 reads three doubles and sets W to 0.
func Load3(src []float64) Float64x4 {
	_ = src[2]
	return Float64x4{src[0], src[1], src[2], 0}
}

// Load2 reads two doubles into a narrow register.
func Load2(src []float64) Float64x2 {
	_ = src[1]
	return Float64x2{src[0], src[1]}
}

// Store4 writes four doubles.
func Store4(v Float64x4, dst []float64) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// Store3 writes lanes X, Y, Z.
func Store3(v Float64x4, dst []float64) {
	_ = dst[2]
	dst[0], dst[1], dst[2] = v[0], v[1], v[2]
}

// Store2 writes a narrow register.
func Store2(v Float64x2, dst []float64) {
	_ = dst[1]
	dst[0], dst[1] = v[0], v[1]
}

// LoadMatrix reads 16 row-major doubles, one register per row.
func LoadMatrix(src []float64) Matrix4x4 {
	_ = src[15]
	return Matrix4x4{Load4(src[0:]), Load4(src[4:]), Load4(src[8:]), Load4(src[12:])}
}

// StoreMatrix writes 16 row-major doubles.
func StoreMatrix(m Matrix4x4, dst []float64) {
	_ = dst[15]
	for i, row := range m {
		Store4(row, dst[i*4:])
	}
}

// LoadMatrixTransposed reads a 4x4 block whose rows start stride doubles apart
// and returns its transpose. The result is bit-identical to loading the block
// and transposing it. It panics if stride < 4.
func LoadMatrixTransposed(src []float64, stride int) Matrix4x4 {
	if stride < 4 {
		panic(fmt.Sprintf("hwy: LoadMatrixTransposed stride %d < 4", stride))
	}
	_ = src[3*stride+3]
	var m Matrix4x4
	for col := range 4 {
		m[col] = Float64x4{src[col], src[stride+col], src[2*stride+col], src[3*stride+col]}
	}
	return m
}
