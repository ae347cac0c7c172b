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
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bitkernel/hwy/contrib/floatbits"
)

var namedFormats = map[string]floatbits.Format{
	"half":     floatbits.HalfFormat,
	"bfloat16": floatbits.BFloat16Format,
	"fp8e5m2":  floatbits.FP8E5M2Format,
	"ufloat11": floatbits.UFloat11Format,
	"ufloat10": floatbits.UFloat10Format,
}

func formatNames() string {
	return strings.Join(slices.Sorted(maps.Keys(namedFormats)), ", ")
}

// parseFloat32 accepts anything strconv.ParseFloat does. Magnitudes beyond
// float32 become infinities rather than errors.
func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parsing value: %w", err)
	}
	return float32(v), nil
}

func newHalfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "half <value>",
		Short: "Convert a float32 to half precision with both rounding modes",
		Args:  cobra.ExactArgs(1),
		RunE:  runHalf,
	}
}

func runHalf(cmd *cobra.Command, args []string) error {
	f, err := parseFloat32(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "float32       %v (%#010x)\n", f, math.Float32bits(f))
	printHalf(out, "F32ToF16", floatbits.F32ToF16(f))
	printHalf(out, "F32ToF16Even", floatbits.F32ToF16Even(f))

	b := floatbits.NewBFloat16(f)
	fmt.Fprintf(out, "%-13s %#06x -> %v\n", "BFloat16", b.Bits(), b.Float32())
	return nil
}

func printHalf(out io.Writer, name string, h floatbits.Half) {
	fmt.Fprintf(out, "%-13s %#06x sign=%d exponent=%d mantissa=%#05x -> %v\n",
		name, h.Bits(), h.Sign(), h.Exponent(), h.Mantissa(), h.Float32())
}

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <value>",
		Short: "Encode a float32 in an arbitrary narrow float format",
		Long: `Encode a float32 in a narrow float format given by its field widths, or
by name with --format (` + formatNames() + `).`,
		Args: cobra.ExactArgs(1),
		RunE: runPack,
	}
	cmd.Flags().String("format", "", "Named format; overrides the field widths")
	cmd.Flags().Int("sign", 1, "Sign bits (0 or 1)")
	cmd.Flags().Int("exponent", 5, "Exponent bits (2 to 8)")
	cmd.Flags().Int("mantissa", 10, "Mantissa bits (1 to 22)")
	return cmd
}

func formatFromFlags(cmd *cobra.Command) (floatbits.Format, error) {
	if name, _ := cmd.Flags().GetString("format"); name != "" {
		f, ok := namedFormats[strings.ToLower(name)]
		if !ok {
			return floatbits.Format{}, fmt.Errorf("unknown format %q (want one of %s)", name, formatNames())
		}
		return f, nil
	}
	sign, _ := cmd.Flags().GetInt("sign")
	exponent, _ := cmd.Flags().GetInt("exponent")
	mantissa, _ := cmd.Flags().GetInt("mantissa")
	return floatbits.NewFormat(sign, exponent, mantissa)
}

func runPack(cmd *cobra.Command, args []string) error {
	format, err := formatFromFlags(cmd)
	if err != nil {
		return err
	}
	f, err := parseFloat32(args[0])
	if err != nil {
		return err
	}

	bits := format.FromFloat32(f)
	sign, exponent, mantissa := format.Fields(bits)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "format    %v (bias %d)\n", format, format.Bias())
	fmt.Fprintf(out, "packed    %#x (%0*b)\n", bits, format.Bits(), bits)
	fmt.Fprintf(out, "fields    sign=%d exponent=%d mantissa=%#x\n", sign, exponent, mantissa)
	fmt.Fprintf(out, "decoded   %v\n", format.ToFloat32(bits))
	return nil
}
