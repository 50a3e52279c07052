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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/avxmath/hwy"
)

func TestDot(t *testing.T) {
	a := hwy.Set4(1, 2, 3, 4)
	b := hwy.Set4(5, 6, 7, 8)

	if diff := cmp.Diff(hwy.Broadcast4(70), Dot4(a, b)); diff != "" {
		t.Errorf("Dot4 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(hwy.Broadcast2(70), Dot4x2(a, b)); diff != "" {
		t.Errorf("Dot4x2 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(hwy.Broadcast4(38), Dot3(a, b)); diff != "" {
		t.Errorf("Dot3 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(hwy.Broadcast2(17), Dot2(a.Lo(), b.Lo())); diff != "" {
		t.Errorf("Dot2 mismatch (-want +got):\n%s", diff)
	}
}

func TestDot3IgnoresW(t *testing.T) {
	tests := []struct {
		name string
		w    float64
	}{
		{"zero", 0},
		{"large", 1e300},
		{"inf", math.Inf(1)},
		{"nan", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := hwy.Set4(1, 2, 3, tt.w)
			b := hwy.Set4(5, 6, 7, tt.w)
			if got := Dot3x2(a, b); got != hwy.Broadcast2(38) {
				t.Errorf("Dot3x2 = %v, want 38", got)
			}
		})
	}
}

func TestLength(t *testing.T) {
	if got := Length3(hwy.Set4(3, 4, 12, 100)); got != hwy.Broadcast4(13) {
		t.Errorf("Length3 = %v, want 13", got)
	}
	if got := Length4(hwy.Set4(1, 1, 1, 1)); got != hwy.Broadcast4(2) {
		t.Errorf("Length4 = %v, want 2", got)
	}
	if got := Length2(hwy.Set2(3, 4)); got != hwy.Broadcast2(5) {
		t.Errorf("Length2 = %v, want 5", got)
	}
	if got := LengthSq4(hwy.Set4(1, 2, 3, 4)); got != hwy.Broadcast4(30) {
		t.Errorf("LengthSq4 = %v, want 30", got)
	}
	if got := LengthSq3(hwy.Set4(1, 2, 3, 4)); got != hwy.Broadcast4(14) {
		t.Errorf("LengthSq3 = %v, want 14", got)
	}
	if got := LengthSq2(hwy.Set2(1, 2)); got != hwy.Broadcast2(5) {
		t.Errorf("LengthSq2 = %v, want 5", got)
	}
}

func TestCross3(t *testing.T) {
	tests := []struct {
		name string
		a, b hwy.Float64x4
		want hwy.Float64x4
	}{
		{"x cross y", hwy.Set4(1, 0, 0, 0), hwy.Set4(0, 1, 0, 0), hwy.Set4(0, 0, 1, 0)},
		{"y cross z", hwy.Set4(0, 1, 0, 0), hwy.Set4(0, 0, 1, 0), hwy.Set4(1, 0, 0, 0)},
		{"z cross x", hwy.Set4(0, 0, 1, 0), hwy.Set4(1, 0, 0, 0), hwy.Set4(0, 1, 0, 0)},
		{"y cross x", hwy.Set4(0, 1, 0, 0), hwy.Set4(1, 0, 0, 0), hwy.Set4(0, 0, -1, 0)},
		{"general", hwy.Set4(1, 2, 3, 7), hwy.Set4(4, 5, 6, 9), hwy.Set4(-3, 6, -3, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Cross3(tt.a, tt.b)); diff != "" {
				t.Errorf("Cross3 mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Inf in W leaks into the result's W lane only.
	got := Cross3(hwy.Set4(1, 0, 0, math.Inf(1)), hwy.Set4(0, 1, 0, 1))
	if got.X() != 0 || got.Y() != 0 || got.Z() != 1 || !math.IsNaN(got.W()) {
		t.Errorf("Cross3 with infinite W = %v, want [0 0 1 NaN]", got)
	}
}

func TestCross2(t *testing.T) {
	if got := Cross2(hwy.Set2(1, 0), hwy.Set2(0, 1)); got != hwy.Broadcast2(1) {
		t.Errorf("Cross2(x, y) = %v, want 1", got)
	}
	if got := Cross2(hwy.Set2(2, 3), hwy.Set2(4, 5)); got != hwy.Broadcast2(-2) {
		t.Errorf("Cross2 = %v, want -2", got)
	}
}

func TestNormalize4(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		in   hwy.Float64x4
		want hwy.Float64x4
	}{
		{"zero", hwy.Zero4(), hwy.Zero4()},
		{"infinite", hwy.Set4(math.Inf(1), 0, 0, 0), hwy.Broadcast4(nan)},
		{"overflowing", hwy.Set4(1e200, 1e200, 0, 0), hwy.Broadcast4(nan)},
		{"nan propagates", hwy.Set4(nan, 1, 0, 0), hwy.Broadcast4(nan)},
		{"axis", hwy.Set4(0, 0, 5, 0), hwy.Set4(0, 0, 1, 0)},
		{"pythagorean", hwy.Set4(3, 0, 4, 0), hwy.Set4(0.6, 0, 0.8, 0)},
		{"unit unchanged", hwy.Set4(0, 1, 0, 0), hwy.Set4(0, 1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize4(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs(), cmpopts.EquateApprox(0, 1e-15)); diff != "" {
				t.Errorf("Normalize4(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []hwy.Float64x4{
		hwy.Set4(1, 2, 3, 4),
		hwy.Set4(-0.3, 1e-3, 7, 0),
		hwy.Set4(1e-150, 2e-150, 0, 0),
		hwy.Set4(123456, -654321, 0.5, 9),
		hwy.Set4(1, 1, 1, 1),
	}
	for _, v := range inputs {
		once := Normalize4(v)
		if twice := Normalize4(once); !hwy.BitwiseEqual4(once, twice) {
			t.Errorf("Normalize4 not idempotent for %v: %v then %v", v, once, twice)
		}
		once3 := Normalize3(v)
		if twice := Normalize3(once3); !hwy.BitwiseEqual3(once3, twice) {
			t.Errorf("Normalize3 not idempotent for %v: %v then %v", v, once3, twice)
		}
		if l := Length4(once)[0]; math.Abs(l-1) > 1e-15 {
			t.Errorf("|Normalize4(%v)| = %v, want 1", v, l)
		}
	}

	once2 := Normalize2(hwy.Set2(3, -7))
	if twice := Normalize2(once2); !hwy.BitwiseEqual2(once2, twice) {
		t.Errorf("Normalize2 not idempotent: %v then %v", once2, twice)
	}
}

func TestNormalize3IgnoresW(t *testing.T) {
	got := Normalize3(hwy.Set4(0, 3, 4, 1e300))
	if got.X() != 0 || got.Y() != 0.6 || got.Z() != 0.8 {
		t.Errorf("Normalize3 = %v, want xyz [0 0.6 0.8]", got)
	}
	if got := Normalize3(hwy.Set4(0, 0, 0, 5)); got != hwy.Zero4() {
		t.Errorf("Normalize3 of zero xyz = %v, want zero", got)
	}
}

func TestNormalize2Policy(t *testing.T) {
	if got := Normalize2(hwy.Zero2()); got != hwy.Zero2() {
		t.Errorf("Normalize2(0) = %v, want 0", got)
	}
	if got := Normalize2(hwy.Set2(0, math.Inf(-1))); !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Errorf("Normalize2(-Inf) = %v, want NaN", got)
	}
	if got := Normalize2(hwy.Set2(-6, 8)); got != hwy.Set2(-0.6, 0.8) {
		t.Errorf("Normalize2 = %v, want [-0.6 0.8]", got)
	}
}

func TestNormalizeUnitTolerance(t *testing.T) {
	// Squared length 1+2e-15 is inside the tolerance: returned as is.
	near := hwy.Set4(1+1e-15, 0, 0, 7)
	if got := Normalize3(near); !hwy.BitwiseEqual4(got, near) {
		t.Errorf("Normalize3(%v) = %v, want input unchanged", near, got)
	}
	near4 := hwy.Set4(0, 1+1e-15, 0, 0)
	if got := Normalize4(near4); !hwy.BitwiseEqual4(got, near4) {
		t.Errorf("Normalize4(%v) = %v, want input unchanged", near4, got)
	}
	near2 := hwy.Set2(0, -(1 + 1e-15))
	if got := Normalize2(near2); !hwy.BitwiseEqual2(got, near2) {
		t.Errorf("Normalize2(%v) = %v, want input unchanged", near2, got)
	}

	// Squared length 1+2e-12 is outside: divided by the length.
	far := hwy.Set4(1+1e-12, 0, 0, 0)
	got := Normalize4(far)
	if got.X() == far.X() {
		t.Errorf("Normalize4(%v) returned input unchanged", far)
	}
	if math.Abs(got.X()-1) > 1e-15 {
		t.Errorf("Normalize4(%v).X = %v, want 1", far, got.X())
	}
}

func TestHomogeneous(t *testing.T) {
	if got := Homogeneous3(hwy.Set4(1, 2, 3, 9)); got != hwy.Set4(1, 2, 3, 1) {
		t.Errorf("Homogeneous3 = %v", got)
	}
	if got := Cartesian4(hwy.Set4(2, 4, 6, 2)); got != hwy.Set4(1, 2, 3, 1) {
		t.Errorf("Cartesian4 = %v", got)
	}
	got := Cartesian4(hwy.Set4(1, 0, -1, 0))
	if !math.IsInf(got[0], 1) || !math.IsNaN(got[1]) || !math.IsInf(got[2], -1) || !math.IsNaN(got[3]) {
		t.Errorf("Cartesian4 with W=0 = %v, want [+Inf NaN -Inf NaN]", got)
	}
}

func TestSaturate(t *testing.T) {
	nan := math.NaN()
	got := Saturate4(hwy.Set4(-2, 0.25, 7, nan))
	if diff := cmp.Diff(hwy.Set4(0, 0.25, 1, nan), got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("Saturate4 mismatch (-want +got):\n%s", diff)
	}
	got2 := Saturate2(hwy.Set2(nan, math.Inf(-1)))
	if !math.IsNaN(got2[0]) || got2[1] != 0 {
		t.Errorf("Saturate2 = %v, want [NaN 0]", got2)
	}
}

func TestInBounds(t *testing.T) {
	bounds := hwy.Set4(1, 2, 3, 0)
	tests := []struct {
		name    string
		v       hwy.Float64x4
		want3   bool
		want4   bool
		wantLo2 bool
	}{
		{"inside", hwy.Set4(0.5, -2, 3, 0), true, true, true},
		{"w outside", hwy.Set4(0.5, -2, 3, 4), true, false, true},
		{"x outside", hwy.Set4(-1.5, 0, 0, 0), false, false, false},
		{"nan", hwy.Set4(0, 0, math.NaN(), 0), false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBounds3(tt.v, bounds); got != tt.want3 {
				t.Errorf("InBounds3 = %v, want %v", got, tt.want3)
			}
			if got := InBounds4(tt.v, bounds); got != tt.want4 {
				t.Errorf("InBounds4 = %v, want %v", got, tt.want4)
			}
			if got := InBounds2(tt.v.Lo(), bounds.Lo()); got != tt.wantLo2 {
				t.Errorf("InBounds2 = %v, want %v", got, tt.wantLo2)
			}
		})
	}
}
