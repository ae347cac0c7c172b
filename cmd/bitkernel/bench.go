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
	"math/rand"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bitkernel/hwy/contrib/floatbits"
	"github.com/ajroetker/go-bitkernel/hwy/contrib/workerpool"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare sequential and pool-parallel float32 <-> half conversion",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	cmd.Flags().Int("count", 1<<22, "Number of values to convert")
	cmd.Flags().Int("workers", 0, "Worker goroutines for the parallel run (0 = GOMAXPROCS)")
	cmd.Flags().Int64("seed", 1, "Seed for the random input")
	return cmd
}

// conversionTimes holds the wall time of one encode and one decode pass.
type conversionTimes struct {
	encode, decode time.Duration
}

// timeConversions converts src to halves and back through pool, which may
// be nil for the sequential path.
func timeConversions(pool *workerpool.Pool, src []float32, halves []floatbits.Half, back []float32) conversionTimes {
	start := time.Now()
	floatbits.ParallelF32ToF16(pool, halves, src)
	encode := time.Since(start)

	start = time.Now()
	floatbits.ParallelF16ToF32(pool, back, halves)
	return conversionTimes{encode: encode, decode: time.Since(start)}
}

func runBench(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	workers, _ := cmd.Flags().GetInt("workers")
	seed, _ := cmd.Flags().GetInt64("seed")
	if count <= 0 {
		return fmt.Errorf("invalid --count %d: must be positive", count)
	}

	pool := workerpool.New(workers)
	defer pool.Close()

	rng := rand.New(rand.NewSource(seed))
	src := make([]float32, count)
	for i := range src {
		src[i] = float32(rng.NormFloat64() * 1000)
	}
	seqHalves := make([]floatbits.Half, count)
	parHalves := make([]floatbits.Half, count)
	back := make([]float32, count)

	seq := timeConversions(nil, src, seqHalves, back)
	par := timeConversions(pool, src, parHalves, back)
	if !slices.Equal(seqHalves, parHalves) {
		return errors.New("parallel conversion differs from sequential")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s values, %d workers\n", humanize.Comma(int64(count)), pool.NumWorkers())
	fmt.Fprintf(out, "%-9s %-10s %14s %14s\n", "op", "mode", "time", "throughput")
	rows := []struct {
		op, mode string
		d        time.Duration
		bytes    int
	}{
		{"F32ToF16", "sequential", seq.encode, count * 4},
		{"F32ToF16", "parallel", par.encode, count * 4},
		{"F16ToF32", "sequential", seq.decode, count * 2},
		{"F16ToF32", "parallel", par.decode, count * 2},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%-9s %-10s %14v %12s/s\n", r.op, r.mode, r.d, humanize.Bytes(throughput(r.bytes, r.d)))
	}
	fmt.Fprintf(out, "speedup   encode %.2fx  decode %.2fx\n", speedup(seq.encode, par.encode), speedup(seq.decode, par.decode))
	return nil
}

// speedup returns how many times faster parallel was than sequential.
func speedup(sequential, parallel time.Duration) float64 {
	if parallel <= 0 {
		return 0
	}
	return float64(sequential) / float64(parallel)
}

// throughput returns bytes per second for n bytes processed in d.
func throughput(n int, d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(float64(n) / d.Seconds())
}
