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

// Package floatbits provides bit-level views of IEEE 754 floating-point
// values and conversions between float32 and narrower encodings.
//
// # Views
//
// Half, Float and Double hold the raw bits of a 16, 32 or 64-bit float.
// Their Sign, Exponent and Mantissa accessors decompose the same bits, and
// the XFromFields constructors rebuild them exactly:
//
//	h := floatbits.HalfFromBits(0x3C00)
//	h.Exponent() // 15
//	floatbits.HalfFromFields(h.Sign(), h.Exponent(), h.Mantissa()) == h // true
//
// # Narrow formats
//
// A Format describes an encoding with an optional sign bit, 2 to 8 exponent
// bits and 1 to 22 mantissa bits. Pack converts a float32 into the format
// with a magic-multiply re-bias. Unpack goes the other way and is exact.
//
//	bits := floatbits.FP8E5M2Format.FromFloat32(1.5)
//	f := floatbits.FP8E5M2Format.ToFloat32(bits) // 1.5
//
// Packing rounds to nearest with ties away from zero. F32ToF16Even is the
// IEEE round-to-nearest-even conversion to half precision and differs from
// F32ToF16 only on exact ties. Overflow saturates to infinity. NaN inputs
// produce a quiet NaN in every format.
//
// # Integer conversions
//
// U32ToF64 and F64ToU32 move a uint32 through a float64 with the 1.5*2^52
// bias trick. Both are exact for every uint32.
package floatbits
