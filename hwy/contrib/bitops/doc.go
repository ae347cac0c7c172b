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

// Package bitops provides bit-level queries and transforms on 32-bit and
// 64-bit unsigned integers: bit scans, population count, power-of-two
// rounding, Morton interleaving, byte swapping and branchless select.
//
// # Two implementations
//
// Every operation exists twice:
//   - Base32/Base64: portable bit tricks (SWAR popcount, de Bruijn
//     multiply-and-lookup, shift cascades). No instruction set assumptions.
//   - Hardware32/Hardware64: built on math/bits, which the compiler lowers to
//     POPCNT, LZCNT/TZCNT, BSWAP on x86-64 and CNT, CLZ, RBIT, REV on ARM64.
//
// Both satisfy the Bits32/Bits64 interfaces and produce bit-identical
// results for every input, including zero. The package-level functions
// (CountBits32, IndexOfMSB64, ...) forward to the implementation selected
// at startup from the capabilities reported by package hwy.
//
// # Zero inputs
//
// Bit scans have no natural answer for zero. Both implementations agree on:
//
//	TZCnt(0) = LZCnt(0) = width
//	IndexOfLSB(0) = IndexOfMSB(0) = Log2(0) = -1
//	MSB(0) = FloorPowerOfTwo(0) = CeilPowerOfTwo(0) = 0
//
// ExpandLSB(0) is all ones and IsPowerOfTwo(0) is true; both follow directly
// from the bit identities they are built on.
//
// # Selecting an implementation
//
// HWY_NO_SIMD forces the portable path. HWY_BITOPS=base or HWY_BITOPS=hardware
// picks one explicitly. Any other HWY_BITOPS value falls back to CPU
// detection, and EnvError reports it. Use switches at runtime and is meant
// for tests and program start.
//
// # Example
//
//	import "github.com/ajroetker/go-bitkernel/hwy/contrib/bitops"
//
//	n := bitops.CountBits32(0xF0F0)          // 8
//	p := bitops.CeilPowerOfTwo32(17)         // 32
//	z := bitops.InterleavePair32(x, y)       // Morton code of (x, y)
//	x = bitops.DeinterleaveBits32(z)         // even bits back out
package bitops
