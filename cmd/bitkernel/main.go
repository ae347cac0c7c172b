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

// Command bitkernel inspects the bit-manipulation kernels on the running
// machine: detected CPU features, the active bitops implementation, and the
// result of every bit query or float encoding for a given input.
//
// Usage:
//
//	bitkernel info
//	bitkernel bits 0x80000001 --width 32 --impl base
//	bitkernel half 65504
//	bitkernel pack 1.5 --sign 1 --exponent 5 --mantissa 2
//	bitkernel bench --count 16777216 --workers 0
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bitkernel",
		Short: "Inspect bit-manipulation and float conversion kernels",
		Long: `bitkernel reports which bit-manipulation implementation this machine uses
and evaluates the kernels on values given on the command line.

Environment:
  HWY_NO_SIMD=1       use the portable implementations only
  HWY_BITOPS=<name>   force the bitops implementation (base or hardware)`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newBitsCmd())
	rootCmd.AddCommand(newHalfCmd())
	rootCmd.AddCommand(newPackCmd())
	rootCmd.AddCommand(newBenchCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
