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

package floatbits

import (
	"math"

	"github.com/ajroetker/go-bitkernel/hwy/contrib/workerpool"
)

// F32ToF16 converts f to half precision, rounding to nearest with ties
// away from zero. Values at or above 65520 become infinity.
func F32ToF16(f float32) Half {
	return Half(HalfFormat.Pack(FloatOf(f)))
}

// F16ToF32 converts h to float32. Every half value is exactly representable,
// so F32ToF16(F16ToF32(h)) == h for all h that are not NaN.
func F16ToF32(h Half) float32 {
	return HalfFormat.Unpack(uint32(h.Sign()), uint32(h.Exponent()), uint32(h.Mantissa())).Float32()
}

// F32ToF16Even converts f to half precision with IEEE round-to-nearest-even.
// It matches F32ToF16 except when f lies exactly halfway between two half
// values, where it picks the one with an even mantissa.
func F32ToF16Even(f float32) Half {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	abs := b & 0x7FFFFFFF

	switch {
	case abs > floatInf:
		// NaN: quiet, keep the top payload bits.
		return Half(sign | 0x7E00 | uint16((abs&floatMantissaMask)>>13))
	case abs >= 0x477FF000:
		// 65520 and up round to infinity.
		return Half(sign | 0x7C00)
	case abs >= 0x38800000:
		// Normal half: re-bias, then round on bit 12 with the tie going to
		// the even result.
		v := abs - (floatBias-15)<<floatMantissaBits
		return Half(sign | uint16((v+0xFFF+(v>>13)&1)>>13))
	case abs <= 0x33000000:
		// At most half the smallest denormal.
		return Half(sign)
	}

	// Denormal half.
	e := abs >> floatMantissaBits
	m := abs&floatMantissaMask | 1<<floatMantissaBits
	shift := 126 - e
	h := m >> shift
	rem := m & (1<<shift - 1)
	halfway := uint32(1) << (shift - 1)
	if rem > halfway || rem == halfway && h&1 != 0 {
		h++
	}
	return Half(sign | uint16(h))
}

// u32Bias is 1.5*2^52. Its mantissa has room for a uint32 below the top
// mantissa bit, so bias+i is exact for every uint32 i.
const u32Bias = 1.5 * (1 << 52)

// U32ToF64 converts i to float64. The result is exact.
func U32ToF64(i uint32) float64 {
	return math.Float64frombits(math.Float64bits(u32Bias)|uint64(i)) - u32Bias
}

// F64ToU32 converts d to uint32. For integral d in [0, 2^32) the result is
// exact. Fractions round to nearest even. Values outside the range keep
// only the low 32 bits of the rounded mantissa.
func F64ToU32(d float64) uint32 {
	return uint32(math.Float64bits(d + u32Bias))
}

// F32ToF16Slice converts min(len(dst), len(src)) values and returns the
// count.
func F32ToF16Slice(dst []Half, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = F32ToF16(src[i])
	}
	return n
}

// F16ToF32Slice converts min(len(dst), len(src)) values and returns the
// count.
func F16ToF32Slice(dst []float32, src []Half) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = F16ToF32(src[i])
	}
	return n
}

// minParallelLen is the slice length below which the parallel converters
// run on the calling goroutine.
const minParallelLen = 1 << 14

// ParallelF32ToF16 is F32ToF16Slice split across the workers of pool.
// A nil pool converts sequentially.
func ParallelF32ToF16(pool *workerpool.Pool, dst []Half, src []float32) int {
	n := min(len(dst), len(src))
	if pool == nil || n < minParallelLen {
		return F32ToF16Slice(dst[:n], src[:n])
	}
	pool.ParallelFor(n, func(start, end int) {
		F32ToF16Slice(dst[start:end], src[start:end])
	})
	return n
}

// ParallelF16ToF32 is F16ToF32Slice split across the workers of pool.
// A nil pool converts sequentially.
func ParallelF16ToF32(pool *workerpool.Pool, dst []float32, src []Half) int {
	n := min(len(dst), len(src))
	if pool == nil || n < minParallelLen {
		return F16ToF32Slice(dst[:n], src[:n])
	}
	pool.ParallelFor(n, func(start, end int) {
		F16ToF32Slice(dst[start:end], src[start:end])
	})
	return n
}
