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

	"github.com/ajroetker/go-bitkernel/hwy/contrib/bitops"
)

// Float is the bit pattern of an IEEE 754 binary32 value.
//
//	S | EEEEEEEE | MMMMMMMMMMMMMMMMMMMMMMM
type Float uint32

const (
	floatExponentBits = 8
	floatMantissaBits = 23
	floatExponentMask = 1<<floatExponentBits - 1
	floatMantissaMask = 1<<floatMantissaBits - 1
	floatSignShift    = floatExponentBits + floatMantissaBits
	floatBias         = 127

	// floatInf is the magnitude bit pattern of +Inf.
	floatInf = floatExponentMask << floatMantissaBits
)

// FloatOf returns the bits of f.
func FloatOf(f float32) Float {
	return Float(math.Float32bits(f))
}

// FloatFromBits wraps raw binary32 bits.
func FloatFromBits(bits uint32) Float {
	return Float(bits)
}

// FloatFromFields assembles a Float from its fields. Each field is masked to
// its width.
func FloatFromFields(sign, exponent, mantissa uint32) Float {
	return Float((sign&1)<<floatSignShift | (exponent&floatExponentMask)<<floatMantissaBits | mantissa&floatMantissaMask)
}

// Bits returns the raw uint32 representation.
func (f Float) Bits() uint32 {
	return uint32(f)
}

// Float32 reinterprets the bits as a float32.
func (f Float) Float32() float32 {
	return math.Float32frombits(uint32(f))
}

func (f Float) Sign() uint32 {
	return uint32(f) >> floatSignShift
}

func (f Float) Exponent() uint32 {
	return (uint32(f) >> floatMantissaBits) & floatExponentMask
}

func (f Float) Mantissa() uint32 {
	return uint32(f) & floatMantissaMask
}

func (f Float) WithSign(sign uint32) Float {
	return FloatFromFields(sign, f.Exponent(), f.Mantissa())
}

func (f Float) WithExponent(exponent uint32) Float {
	return FloatFromFields(f.Sign(), exponent, f.Mantissa())
}

func (f Float) WithMantissa(mantissa uint32) Float {
	return FloatFromFields(f.Sign(), f.Exponent(), mantissa)
}

// ByteSwap reverses the byte order of the stored bits.
func (f Float) ByteSwap() Float {
	return Float(bitops.ByteSwap32(uint32(f)))
}
