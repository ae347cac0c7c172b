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

// Double is the bit pattern of an IEEE 754 binary64 value.
type Double uint64

const (
	doubleExponentBits = 11
	doubleMantissaBits = 52
	doubleExponentMask = 1<<doubleExponentBits - 1
	doubleMantissaMask = 1<<doubleMantissaBits - 1
	doubleSignShift    = doubleExponentBits + doubleMantissaBits
)

// DoubleOf returns the bits of d.
func DoubleOf(d float64) Double {
	return Double(math.Float64bits(d))
}

// DoubleFromBits wraps raw binary64 bits.
func DoubleFromBits(bits uint64) Double {
	return Double(bits)
}

// DoubleFromFields assembles a Double from its fields. Each field is masked
// to its width.
func DoubleFromFields(sign, exponent, mantissa uint64) Double {
	return Double((sign&1)<<doubleSignShift | (exponent&doubleExponentMask)<<doubleMantissaBits | mantissa&doubleMantissaMask)
}

// Bits returns the raw uint64 representation.
func (d Double) Bits() uint64 {
	return uint64(d)
}

// Float64 reinterprets the bits as a float64.
func (d Double) Float64() float64 {
	return math.Float64frombits(uint64(d))
}

func (d Double) Sign() uint64 {
	return uint64(d) >> doubleSignShift
}

func (d Double) Exponent() uint64 {
	return (uint64(d) >> doubleMantissaBits) & doubleExponentMask
}

func (d Double) Mantissa() uint64 {
	return uint64(d) & doubleMantissaMask
}

func (d Double) WithSign(sign uint64) Double {
	return DoubleFromFields(sign, d.Exponent(), d.Mantissa())
}

func (d Double) WithExponent(exponent uint64) Double {
	return DoubleFromFields(d.Sign(), exponent, d.Mantissa())
}

func (d Double) WithMantissa(mantissa uint64) Double {
	return DoubleFromFields(d.Sign(), d.Exponent(), mantissa)
}

// ByteSwap reverses the byte order of the stored bits.
func (d Double) ByteSwap() Double {
	return Double(bitops.ByteSwap64(uint64(d)))
}
