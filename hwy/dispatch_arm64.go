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

//go:build arm64

package hwy

import (
	"os"

	"golang.org/x/sys/cpu"
)

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)

		// SVE vectors are at least 128 bits; the actual length is only
		// known to SVE code, so report the minimum.
		if cpu.ARM64.HasSVE && os.Getenv("HWY_NO_SVE") == "" {
			currentLevel = DispatchSVE
		}
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		currentLevel = DispatchScalar
		currentWidth = 16
	}

	// CLZ, RBIT and UBFX are base A64 instructions. Population count goes
	// through the NEON CNT instruction.
	hasBitScan = true
	hasBitField = true
	hasPopCount = cpu.ARM64.HasASIMD

	// BDEP/BEXT only exist in SVE2 BitPerm, which Go cannot emit.
	hasBitDeposit = false

	hasHalfConvert = cpu.ARM64.HasFPHP
}
