package math

import (
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/avxmath/hwy"
)

func TestTanhAccuracy(t *testing.T) {
	withFMA(t, func(t *testing.T) {
		var worst, at float64
		for _, x := range sweep(-20, 20, 80_001) {
			if err := stdmath.Abs(ScalarTanh(x) - stdmath.Tanh(x)); err > worst {
				worst, at = err, x
			}
		}
		if worst > TanhMaxError {
			t.Errorf("max tanh error %g at %v > %g", worst, at, TanhMaxError)
		}
	})
}

func TestTanhSaturation(t *testing.T) {
	tests := []struct {
		name string
		in   hwy.Float64x4
		want hwy.Float64x4
	}{
		{
			name: "threshold",
			in:   hwy.Set4(5, -5, 6, -1e300),
			want: hwy.Set4(1, -1, 1, -1),
		},
		{
			name: "infinities",
			in:   hwy.Set4(stdmath.Inf(1), stdmath.Inf(-1), 1e10, -1e10),
			want: hwy.Set4(1, -1, 1, -1),
		},
		{
			name: "nan propagates",
			in:   hwy.Set4(stdmath.NaN(), 0, stdmath.NaN(), 0),
			want: hwy.Set4(stdmath.NaN(), 0, stdmath.NaN(), 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tanh4(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("Tanh4(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTanhOddAndBounded(t *testing.T) {
	for _, x := range sweep(0, 8, 801) {
		p, n := ScalarTanh(x), ScalarTanh(-x)
		if p != -n {
			t.Fatalf("tanh(%v) = %v, tanh(-%v) = %v", x, p, x, n)
		}
		if p < 0 || p > 1 {
			t.Fatalf("tanh(%v) = %v outside [0, 1]", x, p)
		}
	}
}

func TestTanhSmallArguments(t *testing.T) {
	for _, x := range []float64{1e-8, 1e-4, 0.01, 0.1} {
		if got := ScalarTanh(x); stdmath.Abs(got-stdmath.Tanh(x)) > 1e-9*max(x, 1e-8) {
			t.Errorf("tanh(%v) = %v, want %v", x, got, stdmath.Tanh(x))
		}
	}
}
