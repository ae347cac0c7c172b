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
	"errors"
	"fmt"
	"math"
)

// ErrInvalidFormat is returned by NewFormat for field widths Pack and
// Unpack cannot handle.
var ErrInvalidFormat = errors.New("floatbits: invalid format")

// Format describes a floating-point encoding narrower than float32 by its
// field widths in bits. The exponent bias is 2^(Exponent-1) - 1 and the
// all-ones exponent encodes Inf and NaN, as in IEEE 754.
//
// Formats with Sign == 0 are unsigned. Packing a negative value into one
// drops the sign and keeps the magnitude.
type Format struct {
	Sign     int
	Exponent int
	Mantissa int
}

// Predefined formats.
var (
	// HalfFormat is IEEE 754 binary16.
	HalfFormat = Format{Sign: 1, Exponent: 5, Mantissa: 10}

	// BFloat16Format is the upper half of a float32.
	BFloat16Format = Format{Sign: 1, Exponent: 8, Mantissa: 7}

	// FP8E5M2Format is the 8-bit E5M2 encoding used for ML weights.
	FP8E5M2Format = Format{Sign: 1, Exponent: 5, Mantissa: 2}

	// UFloat11Format and UFloat10Format are the unsigned channel
	// encodings of packed R11G11B10 textures.
	UFloat11Format = Format{Sign: 0, Exponent: 5, Mantissa: 6}
	UFloat10Format = Format{Sign: 0, Exponent: 5, Mantissa: 5}
)

// NewFormat returns the format with the given field widths, or an error
// wrapping ErrInvalidFormat if Validate rejects it.
func NewFormat(sign, exponent, mantissa int) (Format, error) {
	f := Format{Sign: sign, Exponent: exponent, Mantissa: mantissa}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// MustFormat is like NewFormat but panics on an invalid format.
func MustFormat(sign, exponent, mantissa int) Format {
	f, err := NewFormat(sign, exponent, mantissa)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate checks that the format fits inside float32: at most one sign
// bit, 2 to 8 exponent bits and 1 to 22 mantissa bits.
func (f Format) Validate() error {
	switch {
	case f.Sign != 0 && f.Sign != 1:
		return fmt.Errorf("%w: %d sign bits, want 0 or 1", ErrInvalidFormat, f.Sign)
	case f.Exponent < 2 || f.Exponent > floatExponentBits:
		return fmt.Errorf("%w: %d exponent bits, want 2 to %d", ErrInvalidFormat, f.Exponent, floatExponentBits)
	case f.Mantissa < 1 || f.Mantissa >= floatMantissaBits:
		return fmt.Errorf("%w: %d mantissa bits, want 1 to %d", ErrInvalidFormat, f.Mantissa, floatMantissaBits-1)
	}
	return nil
}

// String returns the format as "s1e5m10".
func (f Format) String() string {
	return fmt.Sprintf("s%de%dm%d", f.Sign, f.Exponent, f.Mantissa)
}

// Bits returns the total width of the encoding.
func (f Format) Bits() int {
	return f.Sign + f.Exponent + f.Mantissa
}

// Bias returns the exponent bias.
func (f Format) Bias() int {
	return 1<<(f.Exponent-1) - 1
}

func (f Format) exponentMask() uint32 {
	return 1<<f.Exponent - 1
}

func (f Format) mantissaMask() uint32 {
	return 1<<f.Mantissa - 1
}

// Fields splits an encoded value into its sign, exponent and mantissa.
// Bits above the format width are ignored.
func (f Format) Fields(bits uint32) (sign, exponent, mantissa uint32) {
	mantissa = bits & f.mantissaMask()
	exponent = (bits >> f.Mantissa) & f.exponentMask()
	sign = (bits >> (f.Exponent + f.Mantissa)) & uint32(f.Sign)
	return sign, exponent, mantissa
}

// Compose is the inverse of Fields. Each field is masked to its width.
func (f Format) Compose(sign, exponent, mantissa uint32) uint32 {
	return (sign&uint32(f.Sign))<<(f.Exponent+f.Mantissa) |
		(exponent&f.exponentMask())<<f.Mantissa |
		mantissa&f.mantissaMask()
}

// Pack encodes v in the format f, which must be valid.
//
// Finite values are rounded to nearest with ties away from zero. Normal
// results are re-biased by multiplying with 2^(bias-127) and saturated to
// infinity when too large. Results below the smallest normal are shifted
// straight out of the float32 significand. Inf stays Inf. NaN becomes a
// quiet NaN that keeps the top payload bits.
func (f Format) Pack(v Float) uint32 {
	sign := v.Sign()
	u := uint32(v) & (floatExponentMask<<floatMantissaBits | floatMantissaMask)
	exponentMask := f.exponentMask()

	var r uint32
	if u >= floatInf {
		var mantissa uint32
		if u > floatInf {
			mantissa = (u&floatMantissaMask)>>(floatMantissaBits-f.Mantissa) | 1<<(f.Mantissa-1)
		}
		r = exponentMask<<f.Mantissa | mantissa
	} else if exponent, significand := floatFields(u); exponent-floatBias+f.Bias() <= 0 {
		// Below the smallest normal of f. The float32 multiply would round
		// at 2^-149 first, so shift the significand into place directly.
		s := uint(floatMantissaBits + 1 - f.Mantissa - (exponent - floatBias + f.Bias()))
		if s < 32 {
			r = (significand + 1<<(s-1)) >> s
		}
	} else {
		shift := floatMantissaBits - f.Mantissa
		round := uint32(1) << (shift - 1)

		// Drop the bits below the rounding position so the multiply below
		// cannot round them into it.
		u &^= round - 1
		magic := FloatFromFields(0, uint32(f.Bias()), 0).Float32()
		u = math.Float32bits(float32(math.Float32frombits(u) * magic))
		u += round

		if inf := exponentMask << floatMantissaBits; u > inf {
			u = inf
		}
		r = u >> shift
	}
	return r | (sign&uint32(f.Sign))<<(f.Exponent+f.Mantissa)
}

// Unpack decodes the fields of a value in format f into a float32. The
// result is exact. Fields are masked to their widths.
func (f Format) Unpack(sign, exponent, mantissa uint32) Float {
	exponentMask := f.exponentMask()
	sign &= uint32(f.Sign)
	exponent &= exponentMask
	mantissa &= f.mantissaMask()
	shift := floatMantissaBits - f.Mantissa

	var u uint32
	switch exponent {
	case 0:
		// mantissa * 2^(1-bias-Mantissa): placing the mantissa in the low
		// bits of magic and subtracting magic leaves exactly that.
		magic := FloatFromFields(0, uint32(floatBias+floatMantissaBits+1-f.Bias()-f.Mantissa), 0)
		u = math.Float32bits(float32((magic + Float(mantissa)).Float32() - magic.Float32()))
	case exponentMask:
		u = floatInf | mantissa<<shift
	default:
		u = (exponent+uint32(floatBias-f.Bias()))<<floatMantissaBits | mantissa<<shift
	}
	return Float(u | sign<<floatSignShift)
}

// floatFields returns the biased exponent and the significand of a finite
// non-negative float32 pattern, with the implicit bit made explicit.
// Denormals report exponent 1.
func floatFields(u uint32) (exponent int, significand uint32) {
	exponent = int(u >> floatMantissaBits)
	significand = u & floatMantissaMask
	if exponent == 0 {
		return 1, significand
	}
	return exponent, significand | 1<<floatMantissaBits
}

// FromFloat32 packs v into the format.
func (f Format) FromFloat32(v float32) uint32 {
	return f.Pack(FloatOf(v))
}

// ToFloat32 decodes an encoded value.
func (f Format) ToFloat32(bits uint32) float32 {
	return f.Unpack(f.Fields(bits)).Float32()
}
