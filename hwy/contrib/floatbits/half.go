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

import "github.com/ajroetker/go-bitkernel/hwy/contrib/bitops"

// Half is the bit pattern of an IEEE 754 binary16 value.
//
//	S | EEEEE | MMMMMMMMMM
type Half uint16

// Half constants for special values.
const (
	HalfZero      Half = 0x0000 // Positive zero
	HalfNegZero   Half = 0x8000 // Negative zero
	HalfOne       Half = 0x3C00 // 1.0
	HalfNegOne    Half = 0xBC00 // -1.0
	HalfMaxValue  Half = 0x7BFF // 65504 (max finite value)
	HalfMinNormal Half = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	HalfMinValue  Half = 0x0001 // Smallest denormal (~5.96e-8)
	HalfInf       Half = 0x7C00 // Positive infinity
	HalfNegInf    Half = 0xFC00 // Negative infinity
	HalfNaN       Half = 0x7E00 // Quiet NaN (canonical)
)

const (
	halfExponentBits = 5
	halfMantissaBits = 10
	halfExponentMask = 1<<halfExponentBits - 1
	halfMantissaMask = 1<<halfMantissaBits - 1
	halfSignShift    = halfExponentBits + halfMantissaBits
)

// HalfFromBits wraps raw binary16 bits.
func HalfFromBits(bits uint16) Half {
	return Half(bits)
}

// HalfFromFields assembles a Half from its fields. Each field is masked to
// its width.
func HalfFromFields(sign, exponent, mantissa uint16) Half {
	return Half((sign&1)<<halfSignShift | (exponent&halfExponentMask)<<halfMantissaBits | mantissa&halfMantissaMask)
}

// HalfOf converts f to half precision. It is the same as F32ToF16.
func HalfOf(f float32) Half {
	return F32ToF16(f)
}

// Bits returns the raw uint16 representation.
func (h Half) Bits() uint16 {
	return uint16(h)
}

func (h Half) Sign() uint16 {
	return uint16(h) >> halfSignShift
}

func (h Half) Exponent() uint16 {
	return (uint16(h) >> halfMantissaBits) & halfExponentMask
}

func (h Half) Mantissa() uint16 {
	return uint16(h) & halfMantissaMask
}

// WithSign returns h with its sign field replaced.
func (h Half) WithSign(sign uint16) Half {
	return HalfFromFields(sign, h.Exponent(), h.Mantissa())
}

// WithExponent returns h with its exponent field replaced.
func (h Half) WithExponent(exponent uint16) Half {
	return HalfFromFields(h.Sign(), exponent, h.Mantissa())
}

// WithMantissa returns h with its mantissa field replaced.
func (h Half) WithMantissa(mantissa uint16) Half {
	return HalfFromFields(h.Sign(), h.Exponent(), mantissa)
}

// Float32 converts h to float32. The conversion is exact.
func (h Half) Float32() float32 {
	return F16ToF32(h)
}

// Float64 converts h to float64.
func (h Half) Float64() float64 {
	return float64(F16ToF32(h))
}

// ByteSwap reverses the byte order of the stored bits.
func (h Half) ByteSwap() Half {
	return Half(bitops.ByteSwap16(uint16(h)))
}

// IsNaN returns true if h is a NaN value.
func (h Half) IsNaN() bool {
	return h.Exponent() == halfExponentMask && h.Mantissa() != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Half) IsInf() bool {
	return h.Exponent() == halfExponentMask && h.Mantissa() == 0
}

// IsZero returns true if h is positive or negative zero.
func (h Half) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNegative returns true if the sign bit is set.
func (h Half) IsNegative() bool {
	return h&0x8000 != 0
}

// IsDenormal returns true if h is a denormalized number.
func (h Half) IsDenormal() bool {
	return h.Exponent() == 0 && h.Mantissa() != 0
}
