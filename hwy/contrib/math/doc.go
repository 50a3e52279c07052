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

// Package math provides fast double-precision approximations of sin, cos,
// tan, cot and tanh on hwy registers.
//
// # Accuracy
//
// Angles are first wrapped into [-π, π] and then reflected into [-π/2, π/2].
// sin and cos use a degree-11 / degree-10 minimax polynomial evaluated with
// multiply-add; tan uses a Padé 7/6 approximant with π folded into the
// coefficients; tanh uses a rational approximation that saturates to ±1 for
// |x| >= 5. Maximum absolute errors against the Go math package:
//
//   - sin: SinMaxError
//   - cos: CosMaxError
//   - tanh: TanhMaxError
//
// tan has a relative error below TanRelError for |x| <= 1.4. Errors grow
// with |x| since reduction uses a single-double 2π.
//
// # Forms
//
// Every function exists in a 4-wide form (Sin4, SinCos4, ...), a 2-wide form
// (Sin2, SinCos2, ...) and a scalar form (ScalarSin, ScalarSinCos, ...). All
// forms run the same per-lane operation sequence, so they agree bit for bit,
// and SinCos matches Sin and Cos computed separately.
//
// The 4-wide forms are function variables. They default to the portable
// implementations and are replaced at init by AVX2 kernels when the binary is
// built with GOEXPERIMENT=simd and the CPU supports AVX2 and FMA.
//
// # Low-Level SIMD Functions
//
// Float64x4 functions (AVX2, GOEXPERIMENT=simd):
//   - SinCos_AVX2_F64x4(x Float64x4) (sin, cos Float64x4)
//   - Sin_AVX2_F64x4(x Float64x4) Float64x4
//   - Cos_AVX2_F64x4(x Float64x4) Float64x4
//   - Tan_AVX2_F64x4(x Float64x4) Float64x4
//   - Cot_AVX2_F64x4(x Float64x4) Float64x4
//   - Tanh_AVX2_F64x4(x Float64x4) Float64x4
package math
