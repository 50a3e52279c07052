package hwy

import (
	"math"
	"testing"
)

func TestShuffles(t *testing.T) {
	a := Set4(1, 2, 3, 4)
	b := Set4(5, 6, 7, 8)

	tests := []struct {
		name string
		got  Float64x4
		want Float64x4
	}{
		{"SwapPairs4", SwapPairs4(a), Set4(2, 1, 4, 3)},
		{"SwapHalves4", SwapHalves4(a), Set4(3, 4, 1, 2)},
		{"Reverse4", Reverse4(a), Set4(4, 3, 2, 1)},
		{"RotateYZX4", RotateYZX4(a), Set4(2, 3, 1, 4)},
		{"RotateZXY4", RotateZXY4(a), Set4(3, 1, 2, 4)},
		{"InterleaveEven4", InterleaveEven4(a, b), Set4(1, 5, 3, 7)},
		{"InterleaveOdd4", InterleaveOdd4(a, b), Set4(2, 6, 4, 8)},
		{"ConcatLowerLower4", ConcatLowerLower4(a, b), Set4(1, 2, 5, 6)},
		{"ConcatUpperUpper4", ConcatUpperUpper4(a, b), Set4(3, 4, 7, 8)},
		{"SplatX", SplatX(a), Broadcast4(1)},
		{"SplatY", SplatY(a), Broadcast4(2)},
		{"SplatZ", SplatZ(a), Broadcast4(3)},
		{"SplatW", SplatW(a), Broadcast4(4)},
		{"Splat4", Splat4(a, LaneZ), Broadcast4(3)},
		{"SetLane4", SetLane4(a, LaneW, 9), Set4(1, 2, 3, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if got, want := SwapLanes2(Set2(1, 2)), Set2(2, 1); got != want {
		t.Errorf("SwapLanes2: got %v, want %v", got, want)
	}
	if got, want := SplatY2(Set2(1, 2)), Broadcast2(2); got != want {
		t.Errorf("SplatY2: got %v, want %v", got, want)
	}
	if got := GetLane4(a, LaneY); got != 2 {
		t.Errorf("GetLane4: got %v, want 2", got)
	}
}

func TestShufflesPreserveBits(t *testing.T) {
	nan := math.Float64frombits(0x7ff8_0000_dead_beef)
	negZero := math.Copysign(0, -1)
	v := Set4(nan, negZero, 1, -1)

	got := SwapHalves4(SwapPairs4(v))
	if math.Float64bits(got[3]) != math.Float64bits(nan) {
		t.Errorf("NaN payload changed: got %#x", math.Float64bits(got[3]))
	}
	if !math.Signbit(got[2]) {
		t.Errorf("sign of -0 lost: got %v", got[2])
	}
}

func TestLaneString(t *testing.T) {
	for lane, want := range map[Lane]string{LaneX: "X", LaneY: "Y", LaneZ: "Z", LaneW: "W", Lane(7): "?"} {
		if got := lane.String(); got != want {
			t.Errorf("Lane(%d).String(): got %q, want %q", int(lane), got, want)
		}
	}
}
