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

package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchSVE, "sve"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
	if w := CurrentWidth(); w != 16 && w != 32 && w != 64 {
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", w)
	}
	t.Logf("level=%v width=%d features=%v", CurrentLevel(), CurrentWidth(), Features())
}

func TestFeatures(t *testing.T) {
	want := []string{"popcount", "bitscan", "bitfield", "bitdeposit", "halfconvert"}
	got := Features()
	if len(got) != len(want) {
		t.Fatalf("Features() has %d entries, want %d", len(got), len(want))
	}
	getters := []func() bool{HasPopCount, HasBitScan, HasBitField, HasBitDeposit, HasHalfConvert}
	for i, f := range got {
		if f.Name != want[i] {
			t.Errorf("Features()[%d].Name = %q, want %q", i, f.Name, want[i])
		}
		if f.Present != getters[i]() {
			t.Errorf("feature %s: Present = %v, getter says %v", f.Name, f.Present, getters[i]())
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.value)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSetScalarMode(t *testing.T) {
	saved := struct {
		level                                     DispatchLevel
		width                                     int
		popCount, bitScan, bitField, deposit, f16 bool
	}{currentLevel, currentWidth, hasPopCount, hasBitScan, hasBitField, hasBitDeposit, hasHalfConvert}
	defer func() {
		currentLevel, currentWidth = saved.level, saved.width
		hasPopCount, hasBitScan, hasBitField = saved.popCount, saved.bitScan, saved.bitField
		hasBitDeposit, hasHalfConvert = saved.deposit, saved.f16
	}()

	setScalarMode()
	if CurrentLevel() != DispatchScalar {
		t.Errorf("CurrentLevel() = %v after setScalarMode", CurrentLevel())
	}
	for _, f := range Features() {
		if f.Present {
			t.Errorf("feature %s still present after setScalarMode", f.Name)
		}
	}
}
