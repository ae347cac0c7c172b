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

// Uint24 is a 24-bit unsigned integer stored as three little-endian bytes,
// as found in packed pixel and audio formats.
type Uint24 [3]byte

// MaxUint24 is the largest value a Uint24 holds.
const MaxUint24 = 1<<24 - 1

// NewUint24 stores the low 24 bits of v.
func NewUint24(v uint32) Uint24 {
	var u Uint24
	u.Set(v)
	return u
}

// Set stores the low 24 bits of v.
func (u *Uint24) Set(v uint32) {
	u[0] = byte(v)
	u[1] = byte(v >> 8)
	u[2] = byte(v >> 16)
}

// Uint32 returns the stored value.
func (u Uint24) Uint32() uint32 {
	return uint32(u[2])<<16 | uint32(u[1])<<8 | uint32(u[0])
}

// LoadUint24 reads a little-endian Uint24 from the first three bytes of b.
// It panics if len(b) < 3.
func LoadUint24(b []byte) Uint24 {
	_ = b[2] // bounds check hint to compiler
	return Uint24{b[0], b[1], b[2]}
}

// Put writes u to the first three bytes of b. It panics if len(b) < 3.
func (u Uint24) Put(b []byte) {
	_ = b[2] // bounds check hint to compiler
	b[0] = u[0]
	b[1] = u[1]
	b[2] = u[2]
}
