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
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bitkernel/hwy"
	"github.com/ajroetker/go-bitkernel/hwy/contrib/bitops"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print detected CPU features and the active implementation",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = "unknown"
	}
	fmt.Fprintf(out, "cpu:       %s\n", brand)
	fmt.Fprintf(out, "dispatch:  %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
	fmt.Fprintf(out, "bitops:    %s\n", bitops.Active())
	if err := bitops.EnvError(); err != nil {
		fmt.Fprintf(out, "warning:   %v; using CPU detection\n", err)
	}
	fmt.Fprintln(out, "features:")
	for _, f := range hwy.Features() {
		mark := "no"
		if f.Present {
			mark = "yes"
		}
		fmt.Fprintf(out, "  %-12s %s\n", f.Name, mark)
	}
	return nil
}
