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

// Package hwy detects the bit-manipulation capabilities of the running CPU
// and exposes them to the kernels under hwy/contrib.
//
// Detection runs once in init(). The kernels read the result to decide
// between their portable bit-trick implementations and the ones built on
// hardware instructions (POPCNT, LZCNT/TZCNT, BMI1, BMI2 on x86-64;
// CNT, CLZ, RBIT on ARM64).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-bitkernel/hwy"
//
//	if hwy.HasBitScan() {
//		// hardware bit scans are available
//	}
//	fmt.Println(hwy.CurrentLevel())
//
// Setting HWY_NO_SIMD in the environment disables every hardware path.
// On ARM64, HWY_NO_SVE keeps the dispatch level at NEON.
package hwy

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}
