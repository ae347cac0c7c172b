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

// De Bruijn lookup tables. index: (bit * debruijn) >> (width-5|6) for an
// isolated bit; expanded: the same for a mask of the form 2^(k+1)-1.
var (
	deBruijnIndex32 = [32]uint8{
		0, 1, 28, 2, 29, 14, 24, 3, 30, 22, 20, 15, 25, 17, 4, 8,
		31, 27, 13, 23, 21, 19, 16, 7, 26, 12, 18, 6, 11, 5, 10, 9,
	}

	deBruijnExpanded32 = [32]uint8{
		0, 9, 1, 10, 13, 21, 2, 29, 11, 14, 16, 18, 22, 25, 3, 30,
		8, 12, 20, 28, 15, 17, 24, 7, 19, 27, 23, 6, 26, 5, 4, 31,
	}

	deBruijnIndex64 = [64]uint8{
		0, 1, 2, 53, 3, 7, 54, 27,
		4, 38, 41, 8, 34, 55, 48, 28,
		62, 5, 39, 46, 44, 42, 22, 9,
		24, 35, 59, 56, 49, 18, 29, 11,
		63, 52, 6, 26, 37, 40, 33, 47,
		61, 45, 43, 21, 23, 58, 17, 10,
		51, 25, 36, 32, 60, 20, 57, 16,
		50, 31, 19, 15, 30, 14, 13, 12,
	}

	deBruijnExpanded64 = [64]uint8{
		0, 47, 1, 56, 48, 27, 2, 60,
		57, 49, 41, 37, 28, 16, 3, 61,
		54, 58, 35, 52, 50, 42, 21, 44,
		38, 32, 29, 23, 17, 11, 4, 62,
		46, 55, 26, 59, 40, 36, 15, 53,
		34, 51, 20, 43, 31, 22, 10, 45,
		25, 39, 14, 33, 19, 30, 9, 24,
		13, 18, 8, 12, 7, 6, 5, 63,
	}
)

const (
	deBruijn32       = 0x077cb531
	deBruijnExpand32 = 0x07c4acdd
	deBruijn64       = 0x022fdd63cc95386d
	deBruijnExpand64 = 0x03f79d71b4cb0a89

	lowBytes32 = 0x01010101
	highBits32 = 0x80808080
	lowBytes64 = 0x0101010101010101
	highBits64 = 0x8080808080808080

	evenBits32 = 0x55555555
	evenBits64 = 0x5555555555555555
	halfMask32 = 0x0000ffff
	halfMask64 = 0x00000000ffffffff
)

// IndexOfBit32 returns the position (0..31) of the single set bit in bit.
// The result is unspecified unless bit is a power of two.
func IndexOfBit32(bit uint32) int {
	return int(deBruijnIndex32[(bit*deBruijn32)>>27])
}

// IndexOfExpandedBit32 returns the position of the top bit of a mask whose
// bits at and below that position are all set, e.g. the result of ExpandMSB.
// The result is unspecified for other inputs.
func IndexOfExpandedBit32(mask uint32) int {
	return int(deBruijnExpanded32[(mask*deBruijnExpand32)>>27])
}

// IndexOfBit64 is the 64-bit version of IndexOfBit32.
func IndexOfBit64(bit uint64) int {
	return int(deBruijnIndex64[(bit*deBruijn64)>>58])
}

// IndexOfExpandedBit64 is the 64-bit version of IndexOfExpandedBit32.
func IndexOfExpandedBit64(mask uint64) int {
	return int(deBruijnExpanded64[(mask*deBruijnExpand64)>>58])
}

// Base32 implements Bits32 with portable bit tricks only.
type Base32 struct{}

// ByteSwap reverses the byte order of v.
func (Base32) ByteSwap(v uint32) uint32 {
	return (v >> 24) | ((v >> 8) & 0x0000ff00) | ((v << 8) & 0x00ff0000) | (v << 24)
}

// ClearLSB clears the lowest set bit.
func (Base32) ClearLSB(v uint32) uint32 {
	// v:     xxxxx100000
	// v - 1: xxxxx011111
	return v & (v - 1)
}

// ExpandLSB sets every bit at and below the lowest set bit. Zero expands
// to all ones.
func (Base32) ExpandLSB(v uint32) uint32 {
	return v ^ (v - 1)
}

// LSB isolates the lowest set bit.
func (Base32) LSB(v uint32) uint32 {
	return v & -v
}

// ExpandHighLSB sets every bit from the lowest set bit upward.
func (Base32) ExpandHighLSB(v uint32) uint32 {
	return v | -v
}

// ExpandMSB sets every bit at and below the highest set bit.
func (Base32) ExpandMSB(v uint32) uint32 {
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v
}

// TZCnt counts trailing zero bits; zero gives the width.
func (b Base32) TZCnt(v uint32) int {
	if v == 0 {
		return 32
	}
	return IndexOfBit32(b.LSB(v))
}

// IndexOfLSB returns the index of the lowest set bit, or -1 for zero.
func (b Base32) IndexOfLSB(v uint32) int {
	if v == 0 {
		return -1
	}
	return IndexOfBit32(b.LSB(v))
}

// LZCnt counts leading zero bits; zero gives the width.
func (b Base32) LZCnt(v uint32) int {
	if v == 0 {
		return 32
	}
	return 31 - IndexOfExpandedBit32(b.ExpandMSB(v))
}

// IndexOfMSB finds the highest set bit with a five step binary search over
// alternating masks.
func (Base32) IndexOfMSB(v uint32) int {
	if v == 0 {
		return -1
	}
	base := 0
	if t := v & 0xffff0000; t != 0 {
		base |= 16
		v = t
	}
	if t := v & 0xff00ff00; t != 0 {
		base |= 8
		v = t
	}
	if t := v & 0xf0f0f0f0; t != 0 {
		base |= 4
		v = t
	}
	if t := v & 0xcccccccc; t != 0 {
		base |= 2
		v = t
	}
	if v&0xaaaaaaaa != 0 {
		base |= 1
	}
	return base
}

// MSB isolates the highest set bit of v.
func (b Base32) MSB(v uint32) uint32 {
	m := b.ExpandMSB(v)
	return m ^ (m >> 1)
}

// Log2 returns floor(log2(v)), or -1 for zero.
func (b Base32) Log2(v uint32) int {
	if v == 0 {
		return -1
	}
	return IndexOfExpandedBit32(b.ExpandMSB(v))
}

// ReverseBits reverses the bit order of v.
func (Base32) ReverseBits(v uint32) uint32 {
	v = ((v >> 1) & 0x55555555) | ((v << 1) & 0xaaaaaaaa)
	v = ((v >> 2) & 0x33333333) | ((v << 2) & 0xcccccccc)
	v = ((v >> 4) & 0x0f0f0f0f) | ((v << 4) & 0xf0f0f0f0)
	v = ((v >> 8) & 0x00ff00ff) | ((v << 8) & 0xff00ff00)
	return (v >> 16) | (v << 16)
}

// CountBits is the SWAR population count.
func (Base32) CountBits(v uint32) int {
	v -= (v >> 1) & 0x55555555
	v = (v & 0x33333333) + ((v >> 2) & 0x33333333)
	v = (v + (v >> 4)) & 0x0f0f0f0f
	return int((v * lowBytes32) >> 24)
}

// ExtractBits returns size bits of v starting at offset, right aligned.
// The caller guarantees offset+size <= 32.
func (Base32) ExtractBits(v uint32, offset, size int) uint32 {
	return (v >> uint(offset)) & (uint32(1)<<uint(size) - 1)
}

// DeinterleaveBits gathers the even bits of v into the low 16 bits.
func (Base32) DeinterleaveBits(v uint32) uint32 {
	v &= evenBits32
	v = (v ^ (v >> 1)) & 0x33333333
	v = (v ^ (v >> 2)) & 0x0f0f0f0f
	v = (v ^ (v >> 4)) & 0x00ff00ff
	v = (v ^ (v >> 8)) & 0x0000ffff
	return v
}

// InterleaveBits spreads the low 16 bits of v into the even bit positions.
func (Base32) InterleaveBits(v uint32) uint32 {
	v &= halfMask32
	v = (v | (v << 8)) & 0x00ff00ff
	v = (v | (v << 4)) & 0x0f0f0f0f
	v = (v | (v << 2)) & 0x33333333
	v = (v | (v << 1)) & 0x55555555
	return v
}

// InterleavePair places the low 16 bits of x in the even and of y in the
// odd bit positions (a 2D Morton code).
func (b Base32) InterleavePair(x, y uint32) uint32 {
	return b.InterleaveBits(x) | (b.InterleaveBits(y) << 1)
}

// Select returns, bit by bit, mask ? a : b.
func (Base32) Select(mask, a, b uint32) uint32 {
	return (mask & (a ^ b)) ^ b
}

// HasZeroByte reports whether any of the four bytes of v is zero.
func (Base32) HasZeroByte(v uint32) bool {
	return ((v - lowBytes32) & ^v & highBits32) != 0
}

// IsPowerOfTwo reports whether at most one bit is set; zero counts.
func (b Base32) IsPowerOfTwo(v uint32) bool {
	return b.ClearLSB(v) == 0
}

// FloorPowerOfTwo returns the largest power of two not above v, or 0 for zero.
func (b Base32) FloorPowerOfTwo(v uint32) uint32 {
	return b.MSB(v)
}

// CeilPowerOfTwo returns the smallest power of two not below v; it wraps to 0 on overflow.
func (b Base32) CeilPowerOfTwo(v uint32) uint32 {
	return b.ExpandMSB(v-1) + 1
}

// Base64 implements Bits64 with portable bit tricks only.
type Base64 struct{}

// ByteSwap reverses the byte order of v.
func (Base64) ByteSwap(v uint64) uint64 {
	var b Base32
	lo := b.ByteSwap(uint32(v))
	hi := b.ByteSwap(uint32(v >> 32))
	return uint64(lo)<<32 | uint64(hi)
}

// ClearLSB clears the lowest set bit of v.
func (Base64) ClearLSB(v uint64) uint64 {
	return v & (v - 1)
}

// ExpandLSB sets every bit at and below the lowest set bit of v.
func (Base64) ExpandLSB(v uint64) uint64 {
	return v ^ (v - 1)
}

// LSB isolates the lowest set bit of v.
func (Base64) LSB(v uint64) uint64 {
	return v & -v
}

// ExpandHighLSB sets every bit from the lowest set bit of v upward.
func (Base64) ExpandHighLSB(v uint64) uint64 {
	return v | -v
}

// ExpandMSB sets every bit at and below the highest set bit of v.
func (Base64) ExpandMSB(v uint64) uint64 {
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v
}

// TZCnt counts trailing zero bits; zero gives the width.
func (b Base64) TZCnt(v uint64) int {
	if v == 0 {
		return 64
	}
	return IndexOfBit64(b.LSB(v))
}

// IndexOfLSB returns the index of the lowest set bit, or -1 for zero.
func (b Base64) IndexOfLSB(v uint64) int {
	if v == 0 {
		return -1
	}
	return IndexOfBit64(b.LSB(v))
}

// LZCnt counts leading zero bits; zero gives the width.
func (b Base64) LZCnt(v uint64) int {
	if v == 0 {
		return 64
	}
	return 63 - IndexOfExpandedBit64(b.ExpandMSB(v))
}

// IndexOfMSB returns the index of the highest set bit, or -1 for zero.
func (b Base64) IndexOfMSB(v uint64) int {
	if v == 0 {
		return -1
	}
	return IndexOfExpandedBit64(b.ExpandMSB(v))
}

// MSB isolates the highest set bit of v.
func (b Base64) MSB(v uint64) uint64 {
	m := b.ExpandMSB(v)
	return m ^ (m >> 1)
}

// Log2 returns floor(log2(v)), or -1 for zero.
func (b Base64) Log2(v uint64) int {
	return b.IndexOfMSB(v)
}

// ReverseBits reverses the bit order of v.
func (Base64) ReverseBits(v uint64) uint64 {
	v = ((v >> 1) & 0x5555555555555555) | ((v << 1) & 0xaaaaaaaaaaaaaaaa)
	v = ((v >> 2) & 0x3333333333333333) | ((v << 2) & 0xcccccccccccccccc)
	v = ((v >> 4) & 0x0f0f0f0f0f0f0f0f) | ((v << 4) & 0xf0f0f0f0f0f0f0f0)
	v = ((v >> 8) & 0x00ff00ff00ff00ff) | ((v << 8) & 0xff00ff00ff00ff00)
	v = ((v >> 16) & 0x0000ffff0000ffff) | ((v << 16) & 0xffff0000ffff0000)
	return (v >> 32) | (v << 32)
}

// CountBits returns the number of set bits in v.
func (Base64) CountBits(v uint64) int {
	const c = 0x3333333333333333
	v -= (v >> 1) & 0x5555555555555555
	v = (v & c) + ((v >> 2) & c)
	v = (v + (v >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((v * lowBytes64) >> 56)
}

// ExtractBits returns size bits of v starting at offset, right aligned.
// The caller guarantees offset+size <= 64.
func (Base64) ExtractBits(v uint64, offset, size int) uint64 {
	return (v >> uint(offset)) & (uint64(1)<<uint(size) - 1)
}

// DeinterleaveBits gathers the 32 even bits of v into a uint32.
func (Base64) DeinterleaveBits(v uint64) uint32 {
	v &= evenBits64
	v = (v ^ (v >> 1)) & 0x3333333333333333
	v = (v ^ (v >> 2)) & 0x0f0f0f0f0f0f0f0f
	v = (v ^ (v >> 4)) & 0x00ff00ff00ff00ff
	v = (v ^ (v >> 8)) & 0x0000ffff0000ffff
	v = (v ^ (v >> 16)) & 0x00000000ffffffff
	return uint32(v)
}

// InterleaveBits spreads the low 32 bits of v into the even bit positions.
func (Base64) InterleaveBits(v uint64) uint64 {
	v &= halfMask64
	v = (v | (v << 16)) & 0x0000ffff0000ffff
	v = (v | (v << 8)) & 0x00ff00ff00ff00ff
	v = (v | (v << 4)) & 0x0f0f0f0f0f0f0f0f
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555
	return v
}

// InterleavePair interleaves x onto the even bits and y onto the odd bits.
func (b Base64) InterleavePair(x, y uint64) uint64 {
	return b.InterleaveBits(x) | (b.InterleaveBits(y) << 1)
}

// Select takes bits of a where mask is set and bits of b elsewhere.
func (Base64) Select(mask, a, b uint64) uint64 {
	return (mask & (a ^ b)) ^ b
}

// HasZeroByte reports whether any byte of v is zero.
func (Base64) HasZeroByte(v uint64) bool {
	return (^v & (v - lowBytes64) & highBits64) != 0
}

// IsPowerOfTwo reports whether v has at most one bit set.
func (b Base64) IsPowerOfTwo(v uint64) bool {
	return b.ClearLSB(v) == 0
}

// FloorPowerOfTwo returns the largest power of two not above v, or 0 for zero.
func (b Base64) FloorPowerOfTwo(v uint64) uint64 {
	return b.MSB(v)
}

// CeilPowerOfTwo returns the smallest power of two not below v; it wraps to 0 on overflow.
func (b Base64) CeilPowerOfTwo(v uint64) uint64 {
	return b.ExpandMSB(v-1) + 1
}
