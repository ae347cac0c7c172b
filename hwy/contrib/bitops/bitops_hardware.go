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

package bitops

import "math/bits"

// This file provides the implementations backed by math/bits. The compiler
// lowers those calls to single instructions (POPCNT, LZCNT, TZCNT, BSWAP on
// x86-64; CNT, CLZ, RBIT, REV on ARM64). Operations that already compile to
// one BMI1 instruction from their bit identity (ClearLSB, LSB, ExpandLSB)
// are inherited from the Base types.
//
// Go cannot emit PDEP/PEXT, so interleaving uses byte tables built from the
// PDEP/PEXT reference semantics below.

var (
	// mortonSpread8[b] deposits the 8 bits of b into the even bits of a uint16.
	mortonSpread8 [256]uint16

	// mortonCompact8[b] extracts the 4 even bits of b into a nibble.
	mortonCompact8 [256]uint8
)

func init() {
	for i := range 256 {
		mortonSpread8[i] = uint16(ParallelDeposit32(uint32(i), 0x5555))
		mortonCompact8[i] = uint8(ParallelExtract32(uint32(i), 0x55))
	}
}

// ParallelDeposit64 scatters the low bits of src to the set bit positions
// of mask, lowest first (BMI2 PDEP semantics).
func ParallelDeposit64(src, mask uint64) uint64 {
	var dst uint64
	for bb := uint64(1); mask != 0; bb += bb {
		if src&bb != 0 {
			dst |= mask & -mask
		}
		mask &= mask - 1
	}
	return dst
}

// ParallelExtract64 gathers the bits of src at the set positions of mask
// into the low bits of the result (BMI2 PEXT semantics).
func ParallelExtract64(src, mask uint64) uint64 {
	var dst uint64
	for bb := uint64(1); mask != 0; bb += bb {
		if src&mask&-mask != 0 {
			dst |= bb
		}
		mask &= mask - 1
	}
	return dst
}

// ParallelDeposit32 is the 32-bit version of ParallelDeposit64.
func ParallelDeposit32(src, mask uint32) uint32 {
	return uint32(ParallelDeposit64(uint64(src), uint64(mask)))
}

// ParallelExtract32 is the 32-bit version of ParallelExtract64.
func ParallelExtract32(src, mask uint32) uint32 {
	return uint32(ParallelExtract64(uint64(src), uint64(mask)))
}

// Hardware32 implements Bits32 on top of math/bits.
type Hardware32 struct {
	Base32
}

// ByteSwap reverses the byte order of v.
func (Hardware32) ByteSwap(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// TZCnt counts trailing zero bits; zero gives the width.
func (Hardware32) TZCnt(v uint32) int {
	return bits.TrailingZeros32(v)
}

// IndexOfLSB returns the index of the lowest set bit, or -1 for zero.
func (Hardware32) IndexOfLSB(v uint32) int {
	if v == 0 {
		return -1
	}
	return bits.TrailingZeros32(v)
}

// LZCnt counts leading zero bits; zero gives the width.
func (Hardware32) LZCnt(v uint32) int {
	return bits.LeadingZeros32(v)
}

// IndexOfMSB returns the index of the highest set bit, or -1 for zero.
func (Hardware32) IndexOfMSB(v uint32) int {
	return bits.Len32(v) - 1
}

// MSB isolates the highest set bit of v.
func (Hardware32) MSB(v uint32) uint32 {
	if v == 0 {
		return 0
	}
	return 1 << (31 - bits.LeadingZeros32(v))
}

// Log2 returns floor(log2(v)), or -1 for zero.
func (Hardware32) Log2(v uint32) int {
	return bits.Len32(v) - 1
}

// ReverseBits reverses the bit order of v.
func (Hardware32) ReverseBits(v uint32) uint32 {
	return bits.Reverse32(v)
}

// CountBits returns the number of set bits in v.
func (Hardware32) CountBits(v uint32) int {
	return bits.OnesCount32(v)
}

// ExtractBits follows BEXTR: a start past the word yields zero and a length
// past the word keeps everything above start.
func (Hardware32) ExtractBits(v uint32, offset, size int) uint32 {
	if offset >= 32 {
		return 0
	}
	v >>= uint(offset)
	if size >= 32 {
		return v
	}
	return v & (1<<uint(size) - 1)
}

// DeinterleaveBits gathers the even bits of v into the low half.
func (Hardware32) DeinterleaveBits(v uint32) uint32 {
	return uint32(mortonCompact8[v&0xff]) |
		uint32(mortonCompact8[(v>>8)&0xff])<<4 |
		uint32(mortonCompact8[(v>>16)&0xff])<<8 |
		uint32(mortonCompact8[v>>24])<<12
}

// InterleaveBits spreads the low half of v onto the even bits.
func (Hardware32) InterleaveBits(v uint32) uint32 {
	return uint32(mortonSpread8[v&0xff]) |
		uint32(mortonSpread8[(v>>8)&0xff])<<16
}

// InterleavePair interleaves x onto the even bits and y onto the odd bits.
func (h Hardware32) InterleavePair(x, y uint32) uint32 {
	return h.InterleaveBits(x) | h.InterleaveBits(y)<<1
}

// IsPowerOfTwo reports whether v has at most one bit set.
func (Hardware32) IsPowerOfTwo(v uint32) bool {
	return bits.OnesCount32(v) <= 1
}

// FloorPowerOfTwo returns the largest power of two not above v, or 0 for zero.
func (h Hardware32) FloorPowerOfTwo(v uint32) uint32 {
	return h.MSB(v)
}

// CeilPowerOfTwo returns the smallest power of two not below v; it wraps to 0 on overflow.
func (Hardware32) CeilPowerOfTwo(v uint32) uint32 {
	// Len32(0-1) is 32 and the shift wraps to zero, as in the portable path.
	return 1 << bits.Len32(v-1)
}

// Hardware64 implements Bits64 on top of math/bits.
type Hardware64 struct {
	Base64
}

// ByteSwap reverses the byte order of v.
func (Hardware64) ByteSwap(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// TZCnt counts trailing zero bits; zero gives the width.
func (Hardware64) TZCnt(v uint64) int {
	return bits.TrailingZeros64(v)
}

// IndexOfLSB returns the index of the lowest set bit, or -1 for zero.
func (Hardware64) IndexOfLSB(v uint64) int {
	if v == 0 {
		return -1
	}
	return bits.TrailingZeros64(v)
}

// LZCnt counts leading zero bits; zero gives the width.
func (Hardware64) LZCnt(v uint64) int {
	return bits.LeadingZeros64(v)
}

// IndexOfMSB returns the index of the highest set bit, or -1 for zero.
func (Hardware64) IndexOfMSB(v uint64) int {
	return bits.Len64(v) - 1
}

// MSB isolates the highest set bit of v.
func (Hardware64) MSB(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	return 1 << (63 - bits.LeadingZeros64(v))
}

// Log2 returns floor(log2(v)), or -1 for zero.
func (Hardware64) Log2(v uint64) int {
	return bits.Len64(v) - 1
}

// ReverseBits reverses the bit order of v.
func (Hardware64) ReverseBits(v uint64) uint64 {
	return bits.Reverse64(v)
}

// CountBits returns the number of set bits in v.
func (Hardware64) CountBits(v uint64) int {
	return bits.OnesCount64(v)
}

// ExtractBits returns the size bits of v starting at offset.
func (Hardware64) ExtractBits(v uint64, offset, size int) uint64 {
	if offset >= 64 {
		return 0
	}
	v >>= uint(offset)
	if size >= 64 {
		return v
	}
	return v & (1<<uint(size) - 1)
}

// DeinterleaveBits gathers the even bits of v into the low half.
func (Hardware64) DeinterleaveBits(v uint64) uint32 {
	var r uint32
	for i := range 8 {
		r |= uint32(mortonCompact8[(v>>(8*i))&0xff]) << (4 * i)
	}
	return r
}

// InterleaveBits spreads the low half of v onto the even bits.
func (Hardware64) InterleaveBits(v uint64) uint64 {
	return uint64(mortonSpread8[v&0xff]) |
		uint64(mortonSpread8[(v>>8)&0xff])<<16 |
		uint64(mortonSpread8[(v>>16)&0xff])<<32 |
		uint64(mortonSpread8[(v>>24)&0xff])<<48
}

// InterleavePair interleaves x onto the even bits and y onto the odd bits.
func (h Hardware64) InterleavePair(x, y uint64) uint64 {
	return h.InterleaveBits(x) | h.InterleaveBits(y)<<1
}

// IsPowerOfTwo reports whether v has at most one bit set.
func (Hardware64) IsPowerOfTwo(v uint64) bool {
	return bits.OnesCount64(v) <= 1
}

// FloorPowerOfTwo returns the largest power of two not above v, or 0 for zero.
func (h Hardware64) FloorPowerOfTwo(v uint64) uint64 {
	return h.MSB(v)
}

// CeilPowerOfTwo returns the smallest power of two not below v; it wraps to 0 on overflow.
func (Hardware64) CeilPowerOfTwo(v uint64) uint64 {
	return 1 << bits.Len64(v-1)
}
