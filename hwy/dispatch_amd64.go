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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled. The register types are
// always evaluated lane by lane here; FMA is still used by the portable
// kernels when the CPU has it.

func init() {
	hasFMA = cpu.X86.HasFMA && !NoFMAEnv()

	// Without GOEXPERIMENT=simd there is no archsimd path to dispatch to,
	// so the level stays scalar whatever the CPU supports.
	setScalarMode()
}
