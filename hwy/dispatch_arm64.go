//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// FMADD is part of the ARMv8-A base architecture.
	hasFMA = !NoFMAEnv()

	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// Note: cpu.ARM64.HasASIMD is always true for ARMv8+
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentName = "neon"
	} else {
		setScalarMode()
	}
}
