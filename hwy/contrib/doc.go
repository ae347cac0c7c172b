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

// Package contrib holds the kernels built on top of package hwy.
//
// # Subpackages
//
//   - bitops: bit scans, population count, byte and bit reversal, Morton
//     interleaving and power-of-two rounding on uint32 and uint64, in a
//     portable and a hardware implementation that agree bit for bit.
//   - floatbits: sign/exponent/mantissa views of float16, float32 and
//     float64 values, and packing of float32 into arbitrary narrow float
//     formats (half, bfloat16, FP8, unsigned 10/11-bit).
//   - workerpool: a persistent worker pool for splitting large slice
//     conversions across cores.
//
// # Bit Operations (hwy/contrib/bitops)
//
//	import "github.com/ajroetker/go-bitkernel/hwy/contrib/bitops"
//
//	bitops.CountBits32(0xF0F0)          // 8
//	bitops.IndexOfMSB64(1 << 40)        // 40
//	bitops.InterleavePair32(x, y)       // Morton code of (x, y)
//	bitops.CeilPowerOfTwo32(100)        // 128
//
// The package-level functions use the implementation chosen at startup.
// Use bitops.For32 or bitops.For64 to pick one explicitly.
//
// # Float Encodings (hwy/contrib/floatbits)
//
//	import "github.com/ajroetker/go-bitkernel/hwy/contrib/floatbits"
//
//	h := floatbits.F32ToF16(3.14)       // Half 0x4248
//	f := h.Float32()                    // 3.140625
//	b := floatbits.FP8E5M2Format.FromFloat32(1.5)
package contrib
