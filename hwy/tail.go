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

// Lanes4 is the number of float64 lanes in a Float64x4.
const Lanes4 = 4

// ProcessWithTail4 is a helper for processing float64 slices four lanes at a
// time that handles the remainder automatically.
//
// It calls:
//   - fullFn(offset) for each full group of four (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of four
//
// Example:
//
//	hwy.ProcessWithTail4(len(data),
//	    func(offset int) {
//	        v := hwy.Load4(data[offset:])
//	        hwy.Store4(hwy.Add4(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail4(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	// Process full groups
	fullGroups := size / Lanes4
	for i := range fullGroups {
		fullFn(i * Lanes4)
	}

	// Process tail if any
	remaining := size % Lanes4
	if remaining > 0 {
		tailFn(fullGroups*Lanes4, remaining)
	}
}

// AlignedSize4 rounds size up to the next multiple of four.
func AlignedSize4(size int) int {
	return (size + Lanes4 - 1) / Lanes4 * Lanes4
}
