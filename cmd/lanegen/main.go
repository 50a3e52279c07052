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

// Command lanegen generates the compile-time lane selector types used by
// hwy.NegateLanes and hwy.Blend4.
//
// Usage:
//
//	lanegen -output lanemask_gen.go -pkg hwy
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/lanegen -output lanemask_gen.go
//
// One empty struct type is emitted per subset of the lanes X, Y, Z, W, plus
// the LaneMask constraint whose type set is exactly those sixteen types, so a
// selector outside the set is rejected by the compiler.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "lanemask_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "hwy", "Output package name")
)

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		Package:    *packageOut,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d lane selector types in %s\n", len(maskTypes()), *outputFile)
}
