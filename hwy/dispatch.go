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

package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the widest SIMD instruction set detected.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
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
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Detected state. Written by init() in dispatch_*.go files, read-only after.
var (
	currentLevel DispatchLevel
	currentWidth int

	// hasPopCount: single-instruction population count (POPCNT, NEON CNT).
	hasPopCount bool

	// hasBitScan: leading/trailing zero count instructions that are defined
	// for zero (LZCNT+TZCNT, CLZ+RBIT).
	hasBitScan bool

	// hasBitField: isolate/clear lowest bit and bit-field extract
	// (BMI1 BLSI/BLSR/BLSMSK/BEXTR, ARM64 UBFX).
	hasBitField bool

	// hasBitDeposit: parallel bit deposit/extract (BMI2 PDEP/PEXT).
	hasBitDeposit bool

	// hasHalfConvert: hardware float32 <-> float16 conversion (F16C, ARM FPHP).
	hasHalfConvert bool
)

// CurrentLevel returns the SIMD instruction set detected at startup.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// HasPopCount reports whether population count is a single instruction.
func HasPopCount() bool {
	return hasPopCount
}

// HasBitScan reports whether leading and trailing zero counts are
// single instructions.
func HasBitScan() bool {
	return hasBitScan
}

// HasBitField reports whether BMI1-style lowest-bit and bit-field
// instructions are available.
func HasBitField() bool {
	return hasBitField
}

// HasBitDeposit reports whether parallel bit deposit/extract (PDEP/PEXT)
// is available.
func HasBitDeposit() bool {
	return hasBitDeposit
}

// HasHalfConvert reports whether the CPU converts between float32 and
// float16 in hardware.
func HasHalfConvert() bool {
	return hasHalfConvert
}

// Feature is a named capability flag, used for diagnostics.
type Feature struct {
	Name    string
	Present bool
}

// Features lists every capability flag in a stable order.
func Features() []Feature {
	return []Feature{
		{"popcount", hasPopCount},
		{"bitscan", hasBitScan},
		{"bitfield", hasBitField},
		{"bitdeposit", hasBitDeposit},
		{"halfconvert", hasHalfConvert},
	}
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, every kernel uses its portable implementation regardless of
// CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
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
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	hasPopCount = false
	hasBitScan = false
	hasBitField = false
	hasBitDeposit = false
	hasHalfConvert = false
}
