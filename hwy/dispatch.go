package hwy

import (
	"os"
	"strconv"
	"sync"
)

// DispatchLevel represents the instruction set the kernels run on.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions. The 4-wide kernels use
	// their AVX2 form at this level.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// hasFMA selects fused multiply-add in MulAdd, MulAdd2 and MulAdd4.
// Set by init() in dispatch_*.go files, overridable with SetFMA.
var hasFMA bool

var (
	fmaMu    sync.Mutex
	fmaHooks []func(enabled bool)
)

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// HasWideRegisters reports whether 256-bit float64 kernels can run natively.
func HasWideRegisters() bool {
	return currentLevel == DispatchAVX2 || currentLevel == DispatchAVX512
}

// HasFMA reports whether multiply-add operations are fused (single rounding).
func HasFMA() bool {
	return hasFMA
}

// SetFMA enables or disables fused multiply-add in the portable kernels and
// returns the previous setting. Packages that bind kernels at init rebind
// them through the hooks registered with OnFMAChange, so accelerated kernels
// that always fuse are swapped for the portable ones while fusion is
// disabled.
//
// The setting is read without synchronization by every multiply-add, so
// SetFMA must not run concurrently with kernels. It is meant for tests and
// tools that fix the mode before starting work.
func SetFMA(enabled bool) (previous bool) {
	fmaMu.Lock()
	defer fmaMu.Unlock()

	previous = hasFMA
	if previous == enabled {
		return previous
	}
	hasFMA = enabled
	for _, hook := range fmaHooks {
		hook(enabled)
	}
	Logger().Debug("hwy: fused multiply-add changed", "enabled", enabled, "level", currentName, "hooks", len(fmaHooks))
	return previous
}

// OnFMAChange registers hook to run with the new setting each time SetFMA
// changes it. Kernel packages call it from init to keep their dispatch
// variables consistent with HasFMA.
func OnFMAChange(hook func(enabled bool)) {
	fmaMu.Lock()
	defer fmaMu.Unlock()
	fmaHooks = append(fmaHooks, hook)
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar level is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envBool("HWY_NO_SIMD")
}

// NoFMAEnv checks if the HWY_NO_FMA environment variable is set.
// When set, multiply-add rounds after the multiply and again after the add.
func NoFMAEnv() bool {
	return envBool("HWY_NO_FMA")
}

func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}
