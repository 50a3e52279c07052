package hwy

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
	if HasWideRegisters() && CurrentLevel() != DispatchAVX2 && CurrentLevel() != DispatchAVX512 {
		t.Errorf("HasWideRegisters() true at level %v", CurrentLevel())
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_FMA", tt.value)
		if got := NoFMAEnv(); got != tt.want {
			t.Errorf("NoFMAEnv() with %q = %v, want %v", tt.value, got, tt.want)
		}
		t.Setenv("HWY_NO_SIMD", tt.value)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSetFMALogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	prev := SetFMA(!HasFMA())
	defer SetFMA(prev)

	if HasFMA() == prev {
		t.Fatalf("SetFMA did not change the setting")
	}
	if !strings.Contains(buf.String(), "fused multiply-add changed") {
		t.Errorf("expected a debug record, got %q", buf.String())
	}

	buf.Reset()
	SetFMA(HasFMA())
	if buf.Len() != 0 {
		t.Errorf("unchanged setting should not log, got %q", buf.String())
	}
}

func TestOnFMAChange(t *testing.T) {
	var calls []bool
	OnFMAChange(func(enabled bool) { calls = append(calls, enabled) })
	defer func() {
		fmaMu.Lock()
		fmaHooks = fmaHooks[:len(fmaHooks)-1]
		fmaMu.Unlock()
	}()

	prev := HasFMA()
	SetFMA(!prev)
	SetFMA(!prev) // unchanged: no call
	SetFMA(prev)

	if len(calls) != 2 || calls[0] != !prev || calls[1] != prev {
		t.Errorf("hook calls = %v, want [%v %v]", calls, !prev, prev)
	}
}

func TestLoggerDefaultsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
