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
	"math/bits"

	"github.com/ajroetker/go-bitkernel/hwy"
)

// ByteSwap16 reverses the two bytes of v.
func ByteSwap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// ByteSwap reverses the byte order of any unsigned integer. Single bytes are
// returned unchanged.
func ByteSwap[T hwy.UnsignedInts](v T) T {
	switch x := any(v).(type) {
	case uint8:
		return v
	case uint16:
		return T(ByteSwap16(x))
	case uint32:
		return T(ByteSwap32(x))
	case uint64:
		return T(ByteSwap64(x))
	}
	// Named types (~uintN) do not match the cases above; dispatch on size.
	switch bits.Len64(uint64(^T(0))) {
	case 16:
		return T(ByteSwap16(uint16(v)))
	case 32:
		return T(ByteSwap32(uint32(v)))
	case 64:
		return T(ByteSwap64(uint64(v)))
	default:
		return v
	}
}

// ByteClamp clamps v to [0, 255]. Negative values give 0 and values above
// 255 give 255.
func ByteClamp(v int32) uint32 {
	if v&^0xff != 0 {
		// The sign bit of ^v selects 0 or 0xff.
		return uint32((^v)>>31) & 0xff
	}
	return uint32(v)
}
