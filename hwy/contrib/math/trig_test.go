package math

import (
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/avxmath/hwy"
)

// sweep returns n evenly spaced samples over [lo, hi].
func sweep(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

// withFMA runs fn once with fused multiply-add enabled and once disabled.
func withFMA(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, enabled := range []bool{true, false} {
		name := "fma"
		if !enabled {
			name = "nofma"
		}
		t.Run(name, func(t *testing.T) {
			prev := hwy.SetFMA(enabled)
			defer hwy.SetFMA(prev)
			fn(t)
		})
	}
}

func TestSinCosSpecialValues(t *testing.T) {
	sin, cos := SinCos4(hwy.Zero4())
	if diff := cmp.Diff(hwy.Zero4(), sin); diff != "" {
		t.Errorf("sin(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(hwy.Broadcast4(1), cos); diff != "" {
		t.Errorf("cos(0) mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name     string
		in       float64
		sin, cos float64
	}{
		{"pi/2", HalfPi, 1, 0},
		{"-pi/2", -HalfPi, -1, 0},
		{"pi", Pi, 0, -1},
		{"pi/6", Pi / 6, 0.5, stdmath.Sqrt(3) / 2},
		{"3pi/4", 3 * Pi / 4, stdmath.Sqrt2 / 2, -stdmath.Sqrt2 / 2},
		{"-2", -2, stdmath.Sin(-2), stdmath.Cos(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := ScalarSinCos(tt.in)
			if stdmath.Abs(cs.Y()-tt.sin) > SinMaxError {
				t.Errorf("sin(%v) = %v, want %v", tt.in, cs.Y(), tt.sin)
			}
			if stdmath.Abs(cs.X()-tt.cos) > CosMaxError {
				t.Errorf("cos(%v) = %v, want %v", tt.in, cs.X(), tt.cos)
			}
		})
	}
}

func TestSinCosAccuracy(t *testing.T) {
	withFMA(t, func(t *testing.T) {
		xs := sweep(-100, 100, 100_003)
		var maxSin, maxCos, maxPyth float64
		hwy.ProcessWithTail4(len(xs), func(offset int) {
			a := hwy.Load4(xs[offset:])
			sin, cos := SinCos4(a)
			for i := range 4 {
				maxSin = max(maxSin, stdmath.Abs(sin[i]-stdmath.Sin(a[i])))
				maxCos = max(maxCos, stdmath.Abs(cos[i]-stdmath.Cos(a[i])))
				maxPyth = max(maxPyth, stdmath.Abs(sin[i]*sin[i]+cos[i]*cos[i]-1))
			}
		}, func(offset, count int) {})

		if maxSin > SinMaxError {
			t.Errorf("max sin error %g > %g", maxSin, SinMaxError)
		}
		if maxCos > CosMaxError {
			t.Errorf("max cos error %g > %g", maxCos, CosMaxError)
		}
		if maxPyth > 1e-9 {
			t.Errorf("max |sin²+cos²-1| %g > 1e-9", maxPyth)
		}
	})
}

func TestSinCosCombinedMatchesStandalone(t *testing.T) {
	withFMA(t, func(t *testing.T) {
		for _, x := range sweep(-50, 50, 4001) {
			a := hwy.Set4(x, -x, x*0.5, x+1)
			sin, cos := SinCos4(a)
			if got := Sin4(a); !hwy.BitwiseEqual4(sin, got) {
				t.Fatalf("Sin4(%v) = %v, SinCos4 sin = %v", a, got, sin)
			}
			if got := Cos4(a); !hwy.BitwiseEqual4(cos, got) {
				t.Fatalf("Cos4(%v) = %v, SinCos4 cos = %v", a, got, cos)
			}
		}
	})
}

func TestFormsAgreeBitwise(t *testing.T) {
	withFMA(t, func(t *testing.T) {
		xs := sweep(-20, 20, 2001)
		xs = append(xs, 0, stdmath.Copysign(0, -1), HalfPi, -HalfPi, Pi, 1e6, -1e-300)
		for _, x := range xs {
			a4 := hwy.Broadcast4(x)
			a2 := hwy.Broadcast2(x)

			sin4, cos4 := SinCos4(a4)
			sin2, cos2 := SinCos2(a2)
			cs := ScalarSinCos(x)

			checks := []struct {
				name      string
				v4, v2, s float64
			}{
				{"sin", sin4[2], sin2[1], ScalarSin(x)},
				{"cos", cos4[1], cos2[0], ScalarCos(x)},
				{"sincos.sin", sin4[3], Sin2(a2)[0], cs.Y()},
				{"sincos.cos", cos4[0], Cos2(a2)[1], cs.X()},
				{"tan", Tan4(a4)[0], Tan2(a2)[1], ScalarTan(x)},
				{"cot", Cot4(a4)[3], Cot2(a2)[0], ScalarCot(x)},
				{"tanh", Tanh4(a4)[1], Tanh2(a2)[0], ScalarTanh(x)},
			}
			for _, c := range checks {
				b4, b2, bs := stdmath.Float64bits(c.v4), stdmath.Float64bits(c.v2), stdmath.Float64bits(c.s)
				if b4 != bs || b2 != bs {
					t.Fatalf("%s(%v): 4-wide %v, 2-wide %v, scalar %v", c.name, x, c.v4, c.v2, c.s)
				}
			}
		}
	})
}

func TestPortableMatchesDispatched(t *testing.T) {
	withFMA(t, func(t *testing.T) {
		for _, x := range sweep(-30, 30, 3001) {
			a := hwy.Set4(x, x*0.25, -x*3, x-0.5)
			s, c := SinCos4(a)
			bs, bc := sinCos4Base(a)
			if !hwy.BitwiseEqual4(s, bs) || !hwy.BitwiseEqual4(c, bc) {
				t.Fatalf("%s SinCos4(%v) = %v, %v; portable %v, %v", Implementation(), a, s, c, bs, bc)
			}
			if got, want := Tan4(a), tan4Base(a); !hwy.BitwiseEqual4(got, want) {
				t.Fatalf("%s Tan4(%v) = %v, portable %v", Implementation(), a, got, want)
			}
			if got, want := Tanh4(a), tanh4Base(a); !hwy.BitwiseEqual4(got, want) {
				t.Fatalf("%s Tanh4(%v) = %v, portable %v", Implementation(), a, got, want)
			}
		}
	})
}

func TestSinCosPeriodicity(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, x := range sweep(-3, 3, 301) {
		a := hwy.Set4(x, x, x, x)
		b := hwy.Set4(x+TwoPi, x-TwoPi, x+4*TwoPi, x-3*TwoPi)
		sa, ca := SinCos4(a)
		sb, cb := SinCos4(b)
		if diff := cmp.Diff(sa, sb, approx); diff != "" {
			t.Fatalf("sin(%v + 2πk) mismatch (-want +got):\n%s", x, diff)
		}
		if diff := cmp.Diff(ca, cb, approx); diff != "" {
			t.Fatalf("cos(%v + 2πk) mismatch (-want +got):\n%s", x, diff)
		}
	}
}

func TestSinCosNonFinite(t *testing.T) {
	in := hwy.Set4(stdmath.NaN(), stdmath.Inf(1), stdmath.Inf(-1), 0)
	sin, cos := SinCos4(in)
	want := hwy.Set4(stdmath.NaN(), stdmath.NaN(), stdmath.NaN(), 0)
	if diff := cmp.Diff(want, sin, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("sin mismatch (-want +got):\n%s", diff)
	}
	want[3] = 1
	if diff := cmp.Diff(want, cos, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("cos mismatch (-want +got):\n%s", diff)
	}
}

func TestSinOdd(t *testing.T) {
	for _, x := range sweep(0, 10, 1001) {
		if s, n := ScalarSin(x), ScalarSin(-x); s != -n {
			t.Fatalf("sin(%v) = %v, sin(-%v) = %v", x, s, x, n)
		}
	}
}

func TestAngles(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-15, 0)
	got := Radians4(hwy.Set4(0, 90, 180, -360))
	want := hwy.Set4(0, HalfPi, Pi, -TwoPi)
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Radians4 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(hwy.Set4(0, 90, 180, -360), Degrees4(got), approx); diff != "" {
		t.Errorf("Degrees4 mismatch (-want +got):\n%s", diff)
	}
	if got := Radians2(hwy.Set2(45, -45)); !cmp.Equal(got, hwy.Set2(Pi/4, -Pi/4), approx) {
		t.Errorf("Radians2 = %v", got)
	}
	if got := Degrees2(hwy.Set2(Pi/4, -Pi/4)); !cmp.Equal(got, hwy.Set2(45, -45), approx) {
		t.Errorf("Degrees2 = %v", got)
	}
	if got := Degrees(Radians(30)); stdmath.Abs(got-30) > 1e-12 {
		t.Errorf("Degrees(Radians(30)) = %v", got)
	}
}

func TestImplementation(t *testing.T) {
	switch impl := Implementation(); impl {
	case "portable", "avx2":
	default:
		t.Errorf("Implementation() = %q", impl)
	}
}
