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

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bitkernel/hwy/contrib/bitops"
)

func newBitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bits <value>",
		Short: "Evaluate every bit operation on a value",
		Long: `Evaluate every bit operation on an unsigned integer. The value may be
decimal, hex (0x), octal (0o) or binary (0b).`,
		Args: cobra.ExactArgs(1),
		RunE: runBits,
	}
	cmd.Flags().Int("width", 32, "Operand width: 32 or 64")
	cmd.Flags().String("impl", "", "Implementation: base or hardware (default: active)")
	cmd.Flags().Int("offset", 0, "Bit offset for ExtractBits")
	cmd.Flags().Int("size", 8, "Field size for ExtractBits")
	cmd.Flags().Uint64("y", 0, "Second coordinate for InterleavePair")
	return cmd
}

// bitsOptions holds the parsed flags of the bits command.
type bitsOptions struct {
	width        int
	impl         bitops.Impl
	offset, size int
	y            uint64
}

func parseBitsOptions(cmd *cobra.Command) (bitsOptions, error) {
	var o bitsOptions
	o.width, _ = cmd.Flags().GetInt("width")
	if o.width != 32 && o.width != 64 {
		return o, fmt.Errorf("invalid --width %d: want 32 or 64", o.width)
	}

	o.impl = bitops.Active()
	if name, _ := cmd.Flags().GetString("impl"); name != "" {
		impl, err := bitops.ParseImpl(name)
		if err != nil {
			return o, err
		}
		o.impl = impl
	}

	o.offset, _ = cmd.Flags().GetInt("offset")
	o.size, _ = cmd.Flags().GetInt("size")
	if o.offset < 0 || o.size < 0 || o.offset+o.size > o.width {
		return o, fmt.Errorf("invalid extract field: offset %d + size %d exceeds %d bits", o.offset, o.size, o.width)
	}
	o.y, _ = cmd.Flags().GetUint64("y")
	return o, nil
}

func runBits(cmd *cobra.Command, args []string) error {
	o, err := parseBitsOptions(cmd)
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(args[0], 0, o.width)
	if err != nil {
		return fmt.Errorf("parsing value: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d-bit %s implementation\n", o.width, o.impl)
	if o.width == 32 {
		printBits32(out, bitops.For32(o.impl), uint32(v), o)
	} else {
		printBits64(out, bitops.For64(o.impl), v, o)
	}
	return nil
}

func row(out io.Writer, name string, value any) {
	fmt.Fprintf(out, "  %-18s %v\n", name, value)
}

func hex32(v uint32) string { return fmt.Sprintf("%#010x", v) }
func hex64(v uint64) string { return fmt.Sprintf("%#018x", v) }

func printBits32(out io.Writer, b bitops.Bits32, v uint32, o bitsOptions) {
	y := uint32(o.y)
	row(out, "value", hex32(v))
	row(out, "ByteSwap", hex32(b.ByteSwap(v)))
	row(out, "ReverseBits", hex32(b.ReverseBits(v)))
	row(out, "CountBits", b.CountBits(v))
	row(out, "ClearLSB", hex32(b.ClearLSB(v)))
	row(out, "LSB", hex32(b.LSB(v)))
	row(out, "ExpandLSB", hex32(b.ExpandLSB(v)))
	row(out, "ExpandHighLSB", hex32(b.ExpandHighLSB(v)))
	row(out, "ExpandMSB", hex32(b.ExpandMSB(v)))
	row(out, "MSB", hex32(b.MSB(v)))
	row(out, "TZCnt", b.TZCnt(v))
	row(out, "LZCnt", b.LZCnt(v))
	row(out, "IndexOfLSB", b.IndexOfLSB(v))
	row(out, "IndexOfMSB", b.IndexOfMSB(v))
	row(out, "Log2", b.Log2(v))
	row(out, "ExtractBits", fmt.Sprintf("%s [%d:%d]", hex32(b.ExtractBits(v, o.offset, o.size)), o.offset, o.offset+o.size))
	row(out, "InterleaveBits", hex32(b.InterleaveBits(v)))
	row(out, "DeinterleaveBits", hex32(b.DeinterleaveBits(v)))
	row(out, "InterleavePair", hex32(b.InterleavePair(v, y)))
	row(out, "HasZeroByte", b.HasZeroByte(v))
	row(out, "IsPowerOfTwo", b.IsPowerOfTwo(v))
	row(out, "FloorPowerOfTwo", hex32(b.FloorPowerOfTwo(v)))
	row(out, "CeilPowerOfTwo", hex32(b.CeilPowerOfTwo(v)))
}

func printBits64(out io.Writer, b bitops.Bits64, v uint64, o bitsOptions) {
	row(out, "value", hex64(v))
	row(out, "ByteSwap", hex64(b.ByteSwap(v)))
	row(out, "ReverseBits", hex64(b.ReverseBits(v)))
	row(out, "CountBits", b.CountBits(v))
	row(out, "ClearLSB", hex64(b.ClearLSB(v)))
	row(out, "LSB", hex64(b.LSB(v)))
	row(out, "ExpandLSB", hex64(b.ExpandLSB(v)))
	row(out, "ExpandHighLSB", hex64(b.ExpandHighLSB(v)))
	row(out, "ExpandMSB", hex64(b.ExpandMSB(v)))
	row(out, "MSB", hex64(b.MSB(v)))
	row(out, "TZCnt", b.TZCnt(v))
	row(out, "LZCnt", b.LZCnt(v))
	row(out, "IndexOfLSB", b.IndexOfLSB(v))
	row(out, "IndexOfMSB", b.IndexOfMSB(v))
	row(out, "Log2", b.Log2(v))
	row(out, "ExtractBits", fmt.Sprintf("%s [%d:%d]", hex64(b.ExtractBits(v, o.offset, o.size)), o.offset, o.offset+o.size))
	row(out, "InterleaveBits", hex64(b.InterleaveBits(v)))
	row(out, "DeinterleaveBits", hex32(b.DeinterleaveBits(v)))
	row(out, "InterleavePair", hex64(b.InterleavePair(v, o.y)))
	row(out, "HasZeroByte", b.HasZeroByte(v))
	row(out, "IsPowerOfTwo", b.IsPowerOfTwo(v))
	row(out, "FloorPowerOfTwo", hex64(b.FloorPowerOfTwo(v)))
	row(out, "CeilPowerOfTwo", hex64(b.CeilPowerOfTwo(v)))
}
