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

// Command trigerr measures the error of the sin, cos, tan and tanh
// approximations in hwy/contrib/math against the Go math package.
//
// Usage:
//
//	trigerr -range 100 -samples 1000000 -workers 8
//
// Angles are sampled evenly over [-range, range]. Sine and cosine report
// absolute error, tangent reports relative error over (-1.4, 1.4) and tanh
// reports absolute error. The exit status is 1 when a kernel exceeds its
// documented bound.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/ajroetker/avxmath/hwy"
)

var (
	angleRange = flag.Float64("range", 100, "Sample angles in [-range, range] radians")
	samples    = flag.Int("samples", 1<<20, "Number of samples per kernel")
	workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "Number of worker goroutines")
	noFMA      = flag.Bool("nofma", false, "Disable fused multiply-add")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	hwy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *noFMA {
		hwy.SetFMA(false)
	}

	cfg := Config{
		Range:   *angleRange,
		Samples: *samples,
		Workers: *workers,
	}
	report, err := Sweep(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, r := range report {
		fmt.Println(r)
	}
	if err := report.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
