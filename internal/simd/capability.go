package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the pure Go implementation (no SIMD).
	Generic ISA = iota
	// SSE2 represents x86-64 SSE2 (128-bit SIMD, baseline on amd64).
	SSE2
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse2":
		return SSE2, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected SIMD implementation.
	activeISA ISA

	// hasOverride is true if U16SET_SIMD was set.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasSSE2  bool // x86-64 SSE2
	hasASIMD bool // ARM64 NEON
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	defer selectKernels()

	// Check for environment override
	if override := os.Getenv("U16SET_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			// Validate the override is available
			if isISAAvailable(isa) {
				activeISA = isa
				return
			}
			// Invalid override - fall through to auto-detection
		}
	}

	// Auto-select best ISA
	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE2:
		return hasSSE2
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "amd64":
		if hasSSE2 {
			return SSE2
		}
	case "arm64":
		if hasASIMD {
			return NEON
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if U16SET_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE2 returns true if x86-64 SSE2 is available.
func HasSSE2() bool {
	return hasSSE2
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
