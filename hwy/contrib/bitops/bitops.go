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

import (
	"fmt"
	"os"
	"strings"

	"github.com/ajroetker/go-bitkernel/hwy"
)

// Bits32 is the set of bit operations on uint32. Implementations must agree
// bit for bit on every input.
type Bits32 interface {
	ByteSwap(v uint32) uint32
	ClearLSB(v uint32) uint32
	ExpandLSB(v uint32) uint32
	LSB(v uint32) uint32
	ExpandHighLSB(v uint32) uint32
	ExpandMSB(v uint32) uint32
	TZCnt(v uint32) int
	IndexOfLSB(v uint32) int
	LZCnt(v uint32) int
	IndexOfMSB(v uint32) int
	MSB(v uint32) uint32
	Log2(v uint32) int
	ReverseBits(v uint32) uint32
	CountBits(v uint32) int
	ExtractBits(v uint32, offset, size int) uint32
	DeinterleaveBits(v uint32) uint32
	InterleaveBits(v uint32) uint32
	InterleavePair(x, y uint32) uint32
	Select(mask, a, b uint32) uint32
	HasZeroByte(v uint32) bool
	IsPowerOfTwo(v uint32) bool
	FloorPowerOfTwo(v uint32) uint32
	CeilPowerOfTwo(v uint32) uint32
}

// Bits64 is the set of bit operations on uint64. DeinterleaveBits halves the
// width and returns a uint32.
type Bits64 interface {
	ByteSwap(v uint64) uint64
	ClearLSB(v uint64) uint64
	ExpandLSB(v uint64) uint64
	LSB(v uint64) uint64
	ExpandHighLSB(v uint64) uint64
	ExpandMSB(v uint64) uint64
	TZCnt(v uint64) int
	IndexOfLSB(v uint64) int
	LZCnt(v uint64) int
	IndexOfMSB(v uint64) int
	MSB(v uint64) uint64
	Log2(v uint64) int
	ReverseBits(v uint64) uint64
	CountBits(v uint64) int
	ExtractBits(v uint64, offset, size int) uint64
	DeinterleaveBits(v uint64) uint32
	InterleaveBits(v uint64) uint64
	InterleavePair(x, y uint64) uint64
	Select(mask, a, b uint64) uint64
	HasZeroByte(v uint64) bool
	IsPowerOfTwo(v uint64) bool
	FloorPowerOfTwo(v uint64) uint64
	CeilPowerOfTwo(v uint64) uint64
}

// Impl names one of the two implementations.
type Impl int

const (
	// ImplBase is the portable bit-trick implementation.
	ImplBase Impl = iota

	// ImplHardware is the math/bits implementation.
	ImplHardware
)

// String returns the name accepted by ParseImpl.
func (i Impl) String() string {
	switch i {
	case ImplBase:
		return "base"
	case ImplHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseImpl parses "base" or "hardware" (case-insensitive).
func ParseImpl(s string) (Impl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base", "portable", "scalar":
		return ImplBase, nil
	case "hardware", "hw":
		return ImplHardware, nil
	}
	return ImplBase, fmt.Errorf("bitops: unknown implementation %q (want base or hardware)", s)
}

// Implementations lists every implementation, for conformance testing.
func Implementations() []Impl {
	return []Impl{ImplBase, ImplHardware}
}

// For32 returns the Bits32 implementation for i.
func For32(i Impl) Bits32 {
	if i == ImplHardware {
		return Hardware32{}
	}
	return Base32{}
}

// For64 returns the Bits64 implementation for i.
func For64(i Impl) Bits64 {
	if i == ImplHardware {
		return Hardware64{}
	}
	return Base64{}
}

// Active implementation. Written in init() and by Use.
var (
	active   Impl
	active32 Bits32 = Base32{}
	active64 Bits64 = Base64{}

	envErr error
)

func init() {
	i, err := selectImpl(hwy.NoSimdEnv(), os.Getenv("HWY_BITOPS"), hwy.HasPopCount() && hwy.HasBitScan())
	envErr = err
	Use(i)
}

// selectImpl picks hardware when the CPU has single-instruction popcount
// and bit scans, unless noSimd or a valid env name say otherwise. An
// unrecognised env name is returned as the error and detection decides.
func selectImpl(noSimd bool, env string, fastScans bool) (Impl, error) {
	var err error
	if env != "" {
		i, parseErr := ParseImpl(env)
		if parseErr == nil && !noSimd {
			return i, nil
		}
		err = parseErr
	}
	if fastScans && !noSimd {
		return ImplHardware, err
	}
	return ImplBase, err
}

// EnvError returns the error for a HWY_BITOPS value that could not be
// parsed at startup, or nil. When it is non-nil the implementation was
// chosen from the detected CPU features instead.
func EnvError() error {
	return envErr
}

// Use switches the implementation behind the package-level functions.
// It is not safe to call concurrently with them.
func Use(i Impl) {
	active = i
	active32 = For32(i)
	active64 = For64(i)
}

// Active returns the implementation behind the package-level functions.
func Active() Impl {
	return active
}

// Impl32 returns the active Bits32 implementation.
func Impl32() Bits32 {
	return active32
}

// Impl64 returns the active Bits64 implementation.
func Impl64() Bits64 {
	return active64
}

// 32-bit operations, forwarding to the active implementation.

// ByteSwap32 reverses the byte order of v.
func ByteSwap32(v uint32) uint32 { return active32.ByteSwap(v) }

// ClearLSB32 clears the lowest set bit of v.
func ClearLSB32(v uint32) uint32 { return active32.ClearLSB(v) }

// ExpandLSB32 sets every bit at and below the lowest set bit of v.
func ExpandLSB32(v uint32) uint32 { return active32.ExpandLSB(v) }

// LSB32 isolates the lowest set bit of v.
func LSB32(v uint32) uint32 { return active32.LSB(v) }

// ExpandHighLSB32 sets every bit from the lowest set bit of v upward.
func ExpandHighLSB32(v uint32) uint32 { return active32.ExpandHighLSB(v) }

// ExpandMSB32 sets every bit at and below the highest set bit of v.
func ExpandMSB32(v uint32) uint32 { return active32.ExpandMSB(v) }

// TZCnt32 counts trailing zero bits; zero gives the width.
func TZCnt32(v uint32) int { return active32.TZCnt(v) }

// IndexOfLSB32 returns the index of the lowest set bit, or -1 for zero.
func IndexOfLSB32(v uint32) int { return active32.IndexOfLSB(v) }

// LZCnt32 counts leading zero bits; zero gives the width.
func LZCnt32(v uint32) int { return active32.LZCnt(v) }

// IndexOfMSB32 returns the index of the highest set bit, or -1 for zero.
func IndexOfMSB32(v uint32) int { return active32.IndexOfMSB(v) }

// MSB32 isolates the highest set bit of v.
func MSB32(v uint32) uint32 { return active32.MSB(v) }

// Log2_32 returns floor(log2(v)), or -1 for zero.
func Log2_32(v uint32) int { return active32.Log2(v) }

// ReverseBits32 reverses the bit order of v.
func ReverseBits32(v uint32) uint32 { return active32.ReverseBits(v) }

// CountBits32 returns the number of set bits in v.
func CountBits32(v uint32) int { return active32.CountBits(v) }

// ExtractBits32 returns the size bits of v starting at offset.
func ExtractBits32(v uint32, offset, size int) uint32 { return active32.ExtractBits(v, offset, size) }

// DeinterleaveBits32 gathers the even bits of v into the low half.
func DeinterleaveBits32(v uint32) uint32 { return active32.DeinterleaveBits(v) }

// InterleaveBits32 spreads the low half of v onto the even bits.
func InterleaveBits32(v uint32) uint32 { return active32.InterleaveBits(v) }

// InterleavePair32 interleaves x onto the even bits and y onto the odd bits.
func InterleavePair32(x, y uint32) uint32 { return active32.InterleavePair(x, y) }

// Select32 takes bits of a where mask is set and bits of b elsewhere.
func Select32(mask, a, b uint32) uint32 { return active32.Select(mask, a, b) }

// HasZeroByte32 reports whether any byte of v is zero.
func HasZeroByte32(v uint32) bool { return active32.HasZeroByte(v) }

// IsPowerOfTwo32 reports whether v has at most one bit set.
func IsPowerOfTwo32(v uint32) bool { return active32.IsPowerOfTwo(v) }

// FloorPowerOfTwo32 returns the largest power of two not above v, or 0 for zero.
func FloorPowerOfTwo32(v uint32) uint32 { return active32.FloorPowerOfTwo(v) }

// CeilPowerOfTwo32 returns the smallest power of two not below v; it wraps to 0 on overflow.
func CeilPowerOfTwo32(v uint32) uint32 { return active32.CeilPowerOfTwo(v) }

// 64-bit operations, forwarding to the active implementation.

// ByteSwap64 reverses the byte order of v.
func ByteSwap64(v uint64) uint64 { return active64.ByteSwap(v) }

// ClearLSB64 clears the lowest set bit of v.
func ClearLSB64(v uint64) uint64 { return active64.ClearLSB(v) }

// ExpandLSB64 sets every bit at and below the lowest set bit of v.
func ExpandLSB64(v uint64) uint64 { return active64.ExpandLSB(v) }

// LSB64 isolates the lowest set bit of v.
func LSB64(v uint64) uint64 { return active64.LSB(v) }

// ExpandHighLSB64 sets every bit from the lowest set bit of v upward.
func ExpandHighLSB64(v uint64) uint64 { return active64.ExpandHighLSB(v) }

// ExpandMSB64 sets every bit at and below the highest set bit of v.
func ExpandMSB64(v uint64) uint64 { return active64.ExpandMSB(v) }

// TZCnt64 counts trailing zero bits; zero gives the width.
func TZCnt64(v uint64) int { return active64.TZCnt(v) }

// IndexOfLSB64 returns the index of the lowest set bit, or -1 for zero.
func IndexOfLSB64(v uint64) int { return active64.IndexOfLSB(v) }

// LZCnt64 counts leading zero bits; zero gives the width.
func LZCnt64(v uint64) int { return active64.LZCnt(v) }

// IndexOfMSB64 returns the index of the highest set bit, or -1 for zero.
func IndexOfMSB64(v uint64) int { return active64.IndexOfMSB(v) }

// MSB64 isolates the highest set bit of v.
func MSB64(v uint64) uint64 { return active64.MSB(v) }

// Log2_64 returns floor(log2(v)), or -1 for zero.
func Log2_64(v uint64) int { return active64.Log2(v) }

// ReverseBits64 reverses the bit order of v.
func ReverseBits64(v uint64) uint64 { return active64.ReverseBits(v) }

// CountBits64 returns the number of set bits in v.
func CountBits64(v uint64) int { return active64.CountBits(v) }

// ExtractBits64 returns the size bits of v starting at offset.
func ExtractBits64(v uint64, offset, size int) uint64 { return active64.ExtractBits(v, offset, size) }

// DeinterleaveBits64 gathers the even bits of v into the low half.
func DeinterleaveBits64(v uint64) uint32 { return active64.DeinterleaveBits(v) }

// InterleaveBits64 spreads the low half of v onto the even bits.
func InterleaveBits64(v uint64) uint64 { return active64.InterleaveBits(v) }

// InterleavePair64 interleaves x onto the even bits and y onto the odd bits.
func InterleavePair64(x, y uint64) uint64 { return active64.InterleavePair(x, y) }

// Select64 takes bits of a where mask is set and bits of b elsewhere.
func Select64(mask, a, b uint64) uint64 { return active64.Select(mask, a, b) }

// HasZeroByte64 reports whether any byte of v is zero.
func HasZeroByte64(v uint64) bool { return active64.HasZeroByte(v) }

// IsPowerOfTwo64 reports whether v has at most one bit set.
func IsPowerOfTwo64(v uint64) bool { return active64.IsPowerOfTwo(v) }

// FloorPowerOfTwo64 returns the largest power of two not above v, or 0 for zero.
func FloorPowerOfTwo64(v uint64) uint64 { return active64.FloorPowerOfTwo(v) }

// CeilPowerOfTwo64 returns the smallest power of two not below v; it wraps to 0 on overflow.
func CeilPowerOfTwo64(v uint64) uint64 { return active64.CeilPowerOfTwo(v) }
