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
	"testing"
)

func TestConcreteScenarios(t *testing.T) {
	for _, impl := range Implementations() {
		b := For32(impl)
		t.Run(impl.String(), func(t *testing.T) {
			if got := b.CountBits(0xFFFFFFFF); got != 32 {
				t.Errorf("CountBits(0xFFFFFFFF): got %d, want 32", got)
			}
			if got := b.IndexOfLSB(0b1000); got != 3 {
				t.Errorf("IndexOfLSB(0b1000): got %d, want 3", got)
			}
			if got := b.CeilPowerOfTwo(17); got != 32 {
				t.Errorf("CeilPowerOfTwo(17): got %d, want 32", got)
			}
			if got := b.FloorPowerOfTwo(17); got != 16 {
				t.Errorf("FloorPowerOfTwo(17): got %d, want 16", got)
			}
			if !b.HasZeroByte(0x00FF00FF) {
				t.Error("HasZeroByte(0x00FF00FF): got false, want true")
			}
			if b.HasZeroByte(0x01010101) {
				t.Error("HasZeroByte(0x01010101): got true, want false")
			}
		})
	}
}

func TestBits32(t *testing.T) {
	tests := []struct {
		name string
		op   func(b Bits32, v uint32) uint32
		in   uint32
		want uint32
	}{
		{"ByteSwap", Bits32.ByteSwap, 0x11223344, 0x44332211},
		{"ClearLSB", Bits32.ClearLSB, 0b101100, 0b101000},
		{"ClearLSB/zero", Bits32.ClearLSB, 0, 0},
		{"ExpandLSB", Bits32.ExpandLSB, 0b101100, 0b000111},
		{"ExpandLSB/zero", Bits32.ExpandLSB, 0, 0xFFFFFFFF},
		{"LSB", Bits32.LSB, 0b101100, 0b000100},
		{"LSB/zero", Bits32.LSB, 0, 0},
		{"ExpandHighLSB", Bits32.ExpandHighLSB, 0b101100, 0xFFFFFFFC},
		{"ExpandMSB", Bits32.ExpandMSB, 0x00402000, 0x007FFFFF},
		{"ExpandMSB/top", Bits32.ExpandMSB, 0x80000000, 0xFFFFFFFF},
		{"MSB", Bits32.MSB, 0x00402000, 0x00400000},
		{"MSB/top", Bits32.MSB, 0x80000001, 0x80000000},
		{"ReverseBits", Bits32.ReverseBits, 0x00000001, 0x80000000},
		{"ReverseBits/pattern", Bits32.ReverseBits, 0x12345678, 0x1E6A2C48},
		{"DeinterleaveBits", Bits32.DeinterleaveBits, 0x55555555, 0xFFFF},
		{"DeinterleaveBits/odd", Bits32.DeinterleaveBits, 0xAAAAAAAA, 0},
		{"InterleaveBits", Bits32.InterleaveBits, 0xFFFF, 0x55555555},
		{"InterleaveBits/high", Bits32.InterleaveBits, 0xFFFF0000, 0},
		{"FloorPowerOfTwo", Bits32.FloorPowerOfTwo, 1000, 512},
		{"CeilPowerOfTwo", Bits32.CeilPowerOfTwo, 1000, 1024},
		{"CeilPowerOfTwo/exact", Bits32.CeilPowerOfTwo, 1024, 1024},
		{"CeilPowerOfTwo/one", Bits32.CeilPowerOfTwo, 1, 1},
		{"CeilPowerOfTwo/wrap", Bits32.CeilPowerOfTwo, 0x80000001, 0},
	}

	for _, impl := range Implementations() {
		b := For32(impl)
		for _, tt := range tests {
			t.Run(impl.String()+"/"+tt.name, func(t *testing.T) {
				got := tt.op(b, tt.in)
				if got != tt.want {
					t.Errorf("%s(0x%08X): got 0x%08X, want 0x%08X", tt.name, tt.in, got, tt.want)
				}
			})
		}
	}
}

func TestBits64(t *testing.T) {
	tests := []struct {
		name string
		op   func(b Bits64, v uint64) uint64
		in   uint64
		want uint64
	}{
		{"ByteSwap", Bits64.ByteSwap, 0x1122334455667788, 0x8877665544332211},
		{"ClearLSB", Bits64.ClearLSB, 0x8000000000000100, 0x8000000000000000},
		{"ExpandLSB/zero", Bits64.ExpandLSB, 0, 0xFFFFFFFFFFFFFFFF},
		{"LSB", Bits64.LSB, 0xF000000000000000, 0x1000000000000000},
		{"ExpandHighLSB", Bits64.ExpandHighLSB, 0x10, 0xFFFFFFFFFFFFFFF0},
		{"ExpandMSB", Bits64.ExpandMSB, 0x0000010000000000, 0x000001FFFFFFFFFF},
		{"MSB", Bits64.MSB, 0x0000013000000000, 0x0000010000000000},
		{"MSB/top", Bits64.MSB, 0xFFFFFFFFFFFFFFFF, 0x8000000000000000},
		{"ReverseBits", Bits64.ReverseBits, 1, 0x8000000000000000},
		{"ReverseBits/pattern", Bits64.ReverseBits, 0x00000000000000F0, 0x0F00000000000000},
		{"InterleaveBits", Bits64.InterleaveBits, 0xFFFFFFFF, 0x5555555555555555},
		{"InterleaveBits/high", Bits64.InterleaveBits, 0xFFFFFFFF00000000, 0},
		{"FloorPowerOfTwo", Bits64.FloorPowerOfTwo, 1 << 40, 1 << 40},
		{"CeilPowerOfTwo", Bits64.CeilPowerOfTwo, 1<<40 + 1, 1 << 41},
		{"CeilPowerOfTwo/wrap", Bits64.CeilPowerOfTwo, 1<<63 + 1, 0},
	}

	for _, impl := range Implementations() {
		b := For64(impl)
		for _, tt := range tests {
			t.Run(impl.String()+"/"+tt.name, func(t *testing.T) {
				got := tt.op(b, tt.in)
				if got != tt.want {
					t.Errorf("%s(0x%016X): got 0x%016X, want 0x%016X", tt.name, tt.in, got, tt.want)
				}
			})
		}
	}
}

func TestBitScans(t *testing.T) {
	for _, impl := range Implementations() {
		b32 := For32(impl)
		b64 := For64(impl)
		t.Run(impl.String(), func(t *testing.T) {
			for k := range 32 {
				v := uint32(1) << k
				if got := b32.TZCnt(v); got != k {
					t.Errorf("TZCnt32(1<<%d): got %d", k, got)
				}
				if got := b32.LZCnt(v); got != 31-k {
					t.Errorf("LZCnt32(1<<%d): got %d, want %d", k, got, 31-k)
				}
				if got := b32.IndexOfMSB(v | 1); got != k {
					t.Errorf("IndexOfMSB32(1<<%d|1): got %d", k, got)
				}
				if got := b32.Log2(v); got != k {
					t.Errorf("Log2_32(1<<%d): got %d", k, got)
				}
			}
			for k := range 64 {
				v := uint64(1) << k
				if got := b64.TZCnt(v); got != k {
					t.Errorf("TZCnt64(1<<%d): got %d", k, got)
				}
				if got := b64.LZCnt(v); got != 63-k {
					t.Errorf("LZCnt64(1<<%d): got %d, want %d", k, got, 63-k)
				}
				if got := b64.IndexOfLSB(v | 1<<63); got != k {
					t.Errorf("IndexOfLSB64(1<<%d|1<<63): got %d", k, got)
				}
				if got := b64.Log2(v); got != k {
					t.Errorf("Log2_64(1<<%d): got %d", k, got)
				}
			}
		})
	}
}

// TestZeroConvention pins the values both implementations return for a
// zero input to the bit scans.
func TestZeroConvention(t *testing.T) {
	for _, impl := range Implementations() {
		b32 := For32(impl)
		b64 := For64(impl)
		t.Run(impl.String(), func(t *testing.T) {
			ints := []struct {
				name string
				got  int
				want int
			}{
				{"TZCnt32", b32.TZCnt(0), 32},
				{"LZCnt32", b32.LZCnt(0), 32},
				{"IndexOfLSB32", b32.IndexOfLSB(0), -1},
				{"IndexOfMSB32", b32.IndexOfMSB(0), -1},
				{"Log2_32", b32.Log2(0), -1},
				{"TZCnt64", b64.TZCnt(0), 64},
				{"LZCnt64", b64.LZCnt(0), 64},
				{"IndexOfLSB64", b64.IndexOfLSB(0), -1},
				{"IndexOfMSB64", b64.IndexOfMSB(0), -1},
				{"Log2_64", b64.Log2(0), -1},
			}
			for _, tt := range ints {
				if tt.got != tt.want {
					t.Errorf("%s(0): got %d, want %d", tt.name, tt.got, tt.want)
				}
			}
			if got := b32.MSB(0); got != 0 {
				t.Errorf("MSB32(0): got %d, want 0", got)
			}
			if got := b32.FloorPowerOfTwo(0); got != 0 {
				t.Errorf("FloorPowerOfTwo32(0): got %d, want 0", got)
			}
			if got := b32.CeilPowerOfTwo(0); got != 0 {
				t.Errorf("CeilPowerOfTwo32(0): got %d, want 0", got)
			}
			if got := b64.MSB(0); got != 0 {
				t.Errorf("MSB64(0): got %d, want 0", got)
			}
			if got := b64.CeilPowerOfTwo(0); got != 0 {
				t.Errorf("CeilPowerOfTwo64(0): got %d, want 0", got)
			}
			if !b32.IsPowerOfTwo(0) || !b64.IsPowerOfTwo(0) {
				t.Error("IsPowerOfTwo(0): got false, want true")
			}
		})
	}
}

func TestExtractBits(t *testing.T) {
	tests := []struct {
		v      uint32
		offset int
		size   int
		want   uint32
	}{
		{0xDEADBEEF, 0, 8, 0xEF},
		{0xDEADBEEF, 8, 8, 0xBE},
		{0xDEADBEEF, 28, 4, 0xD},
		{0xDEADBEEF, 4, 12, 0xBEE},
		{0xDEADBEEF, 0, 32, 0xDEADBEEF},
		{0xDEADBEEF, 31, 1, 1},
		{0xDEADBEEF, 16, 0, 0},
	}

	for _, impl := range Implementations() {
		b32 := For32(impl)
		b64 := For64(impl)
		for _, tt := range tests {
			if got := b32.ExtractBits(tt.v, tt.offset, tt.size); got != tt.want {
				t.Errorf("%s: ExtractBits32(0x%08X, %d, %d): got 0x%X, want 0x%X",
					impl, tt.v, tt.offset, tt.size, got, tt.want)
			}
			v64 := uint64(tt.v)<<32 | 0x12345678
			if got := b64.ExtractBits(v64, tt.offset+32, tt.size); uint32(got) != tt.want {
				t.Errorf("%s: ExtractBits64(0x%016X, %d, %d): got 0x%X, want 0x%X",
					impl, v64, tt.offset+32, tt.size, got, tt.want)
			}
		}
		if got := b64.ExtractBits(0xFEDCBA9876543210, 0, 64); got != 0xFEDCBA9876543210 {
			t.Errorf("%s: ExtractBits64 full width: got 0x%X", impl, got)
		}
	}
}

func TestSelect(t *testing.T) {
	for _, impl := range Implementations() {
		b32 := For32(impl)
		b64 := For64(impl)
		if got := b32.Select(0xFFFF0000, 0xAAAAAAAA, 0x55555555); got != 0xAAAA5555 {
			t.Errorf("%s: Select32 halves: got 0x%08X", impl, got)
		}
		// Each mask bit picks independently.
		if got := b32.Select(0b1010, 0b1111, 0b0000); got != 0b1010 {
			t.Errorf("%s: Select32 per bit: got 0b%b", impl, got)
		}
		if got := b64.Select(0, 1, 2); got != 2 {
			t.Errorf("%s: Select64 zero mask: got %d", impl, got)
		}
		if got := b64.Select(^uint64(0), 1, 2); got != 1 {
			t.Errorf("%s: Select64 full mask: got %d", impl, got)
		}
	}
}

func TestHasZeroByte64(t *testing.T) {
	tests := []struct {
		v    uint64
		want bool
	}{
		{0x0101010101010101, false},
		{0xFFFFFFFFFFFFFFFF, false},
		{0x0101010101010100, true},
		{0x0001010101010101, true},
		{0x8080808080808080, false},
		{0x0100000000000001, true},
		{0, true},
	}
	for _, impl := range Implementations() {
		b := For64(impl)
		for _, tt := range tests {
			if got := b.HasZeroByte(tt.v); got != tt.want {
				t.Errorf("%s: HasZeroByte64(0x%016X): got %v, want %v", impl, tt.v, got, tt.want)
			}
		}
	}
}

func TestIndexOfExpandedBit(t *testing.T) {
	for k := range 32 {
		mask := uint32(1)<<k | (uint32(1)<<k - 1)
		if got := IndexOfExpandedBit32(mask); got != k {
			t.Errorf("IndexOfExpandedBit32(0x%08X): got %d, want %d", mask, got, k)
		}
		if got := IndexOfBit32(uint32(1) << k); got != k {
			t.Errorf("IndexOfBit32(1<<%d): got %d", k, got)
		}
	}
	for k := range 64 {
		mask := uint64(1)<<k | (uint64(1)<<k - 1)
		if got := IndexOfExpandedBit64(mask); got != k {
			t.Errorf("IndexOfExpandedBit64(0x%016X): got %d, want %d", mask, got, k)
		}
		if got := IndexOfBit64(uint64(1) << k); got != k {
			t.Errorf("IndexOfBit64(1<<%d): got %d", k, got)
		}
	}
}

func TestParallelDepositExtract(t *testing.T) {
	tests := []struct {
		src, mask, deposit, extract uint64
	}{
		{0b1011, 0b11110000, 0b10110000, 0},
		{0xFF, 0x5555, 0x5555, 0xF},
		{0b101, 0b1001001, 0b1000001, 0b1},
		{0xFFFFFFFFFFFFFFFF, 0x8000000000000001, 0x8000000000000001, 0b11},
		{0x1234, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := ParallelDeposit64(tt.src, tt.mask); got != tt.deposit {
			t.Errorf("ParallelDeposit64(0x%X, 0x%X): got 0x%X, want 0x%X", tt.src, tt.mask, got, tt.deposit)
		}
		if got := ParallelExtract64(tt.src, tt.mask); got != tt.extract {
			t.Errorf("ParallelExtract64(0x%X, 0x%X): got 0x%X, want 0x%X", tt.src, tt.mask, got, tt.extract)
		}
	}
}

func TestParseImpl(t *testing.T) {
	tests := []struct {
		in      string
		want    Impl
		wantErr bool
	}{
		{"base", ImplBase, false},
		{"Hardware", ImplHardware, false},
		{" hw ", ImplHardware, false},
		{"portable", ImplBase, false},
		{"avx9000", ImplBase, true},
	}
	for _, tt := range tests {
		got, err := ParseImpl(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseImpl(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseImpl(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelectImpl(t *testing.T) {
	tests := []struct {
		name      string
		noSimd    bool
		env       string
		fastScans bool
		want      Impl
		wantErr   bool
	}{
		{"detect hardware", false, "", true, ImplHardware, false},
		{"detect base", false, "", false, ImplBase, false},
		{"env base", false, "base", true, ImplBase, false},
		{"env hardware", false, "hardware", false, ImplHardware, false},
		{"no simd wins", true, "hardware", true, ImplBase, false},
		{"unknown env detects hardware", false, "avx9000", true, ImplHardware, true},
		{"unknown env detects base", false, "avx9000", false, ImplBase, true},
		{"unknown env no simd", true, "avx9000", true, ImplBase, true},
	}
	for _, tt := range tests {
		got, err := selectImpl(tt.noSimd, tt.env, tt.fastScans)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUse(t *testing.T) {
	prev := Active()
	defer Use(prev)

	for _, impl := range Implementations() {
		Use(impl)
		if Active() != impl {
			t.Fatalf("Active(): got %v, want %v", Active(), impl)
		}
		if got := CountBits32(0xF0F0F0F0); got != 16 {
			t.Errorf("%s: CountBits32: got %d, want 16", impl, got)
		}
		if got := CountBits64(0xF0F0F0F0F0F0F0F0); got != 32 {
			t.Errorf("%s: CountBits64: got %d, want 32", impl, got)
		}
		if got := Log2_64(1 << 50); got != 50 {
			t.Errorf("%s: Log2_64: got %d, want 50", impl, got)
		}
	}
	if _, ok := For32(ImplHardware).(Hardware32); !ok {
		t.Error("For32(ImplHardware) is not Hardware32")
	}
	if _, ok := For64(ImplBase).(Base64); !ok {
		t.Error("For64(ImplBase) is not Base64")
	}
}

func BenchmarkCountBits_U32(b *testing.B) {
	for _, impl := range Implementations() {
		ops := For32(impl)
		b.Run(impl.String(), func(b *testing.B) {
			var sink int
			for i := 0; i < b.N; i++ {
				sink += ops.CountBits(uint32(i) * 0x9E3779B9)
			}
			_ = sink
		})
	}
}

func BenchmarkIndexOfMSB_U32(b *testing.B) {
	for _, impl := range Implementations() {
		ops := For32(impl)
		b.Run(impl.String(), func(b *testing.B) {
			var sink int
			for i := 0; i < b.N; i++ {
				sink += ops.IndexOfMSB(uint32(i) | 1)
			}
			_ = sink
		})
	}
}

func BenchmarkInterleavePair_U32(b *testing.B) {
	for _, impl := range Implementations() {
		ops := For32(impl)
		b.Run(impl.String(), func(b *testing.B) {
			var sink uint32
			for i := 0; i < b.N; i++ {
				sink ^= ops.InterleavePair(uint32(i), uint32(i)>>3)
			}
			_ = sink
		})
	}
}

func BenchmarkTZCnt_U64(b *testing.B) {
	for _, impl := range Implementations() {
		ops := For64(impl)
		b.Run(impl.String(), func(b *testing.B) {
			var sink int
			for i := 0; i < b.N; i++ {
				sink += ops.TZCnt(uint64(i) | 1<<63)
			}
			_ = sink
		})
	}
}
