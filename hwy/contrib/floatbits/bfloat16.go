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

import "math"

// BFloat16 is a Brain Float 16 value: the upper 16 bits of a float32.
//
//	S | EEEEEEEE | MMMMMMM
type BFloat16 uint16

// BFloat16 constants for special values.
const (
	BFloat16Zero     BFloat16 = 0x0000 // Positive zero
	BFloat16One      BFloat16 = 0x3F80 // 1.0
	BFloat16MaxValue BFloat16 = 0x7F7F // ~3.39e38 (max finite value)
	BFloat16Inf      BFloat16 = 0x7F80 // Positive infinity
	BFloat16NegInf   BFloat16 = 0xFF80 // Negative infinity
	BFloat16NaN      BFloat16 = 0x7FC0 // Quiet NaN (canonical)
)

// NewBFloat16 converts f to bfloat16 with round-to-nearest-even on the
// dropped bits. It matches BFloat16Format.FromFloat32 except on exact ties.
func NewBFloat16(f float32) BFloat16 {
	bits := math.Float32bits(f)

	if bits&0x7FFFFFFF > floatInf {
		// NaN: keep sign and payload, force the quiet bit.
		return BFloat16((bits >> 16) | 0x0040)
	}

	// Adding 0x7FFF rounds up anything past the halfway point; the extra
	// bit 16 breaks ties toward even.
	bits += 0x7FFF + (bits>>16)&1
	return BFloat16(bits >> 16)
}

// BFloat16FromBits wraps raw bfloat16 bits.
func BFloat16FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits returns the raw uint16 representation.
func (b BFloat16) Bits() uint16 {
	return uint16(b)
}

// Float32 converts b to float32. The conversion is exact.
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Fields returns the sign, exponent and mantissa of b.
func (b BFloat16) Fields() (sign, exponent, mantissa uint32) {
	return BFloat16Format.Fields(uint32(b))
}

// IsNaN returns true if b is a NaN value.
func (b BFloat16) IsNaN() bool {
	return b&0x7FFF > 0x7F80
}

// IsInf returns true if b is positive or negative infinity.
func (b BFloat16) IsInf() bool {
	return b&0x7FFF == 0x7F80
}
