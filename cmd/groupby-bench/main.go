// Command groupby-bench times GroupBySum over synthetic Int64-keyed data.
// Not part of the core library; included as a CLI benchmark surface only,
// ported from fp-groupby's src/bin/groupby-bench.rs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/t7a/frankenpandas/frame"
	"github.com/t7a/frankenpandas/groupby"
	"github.com/t7a/frankenpandas/internal/index"
	"github.com/t7a/frankenpandas/internal/policy"
	"github.com/t7a/frankenpandas/internal/scalar"
)

func main() {
	rows := flag.Int("rows", 500_000, "number of synthetic rows")
	keyCardinality := flag.Int("key-cardinality", 512, "number of distinct keys")
	iters := flag.Int("iters", 25, "number of timed iterations")
	flag.Parse()

	if *rows <= 0 || *keyCardinality <= 0 || *iters <= 0 {
		fmt.Fprintln(os.Stderr, "groupby-bench: rows, key-cardinality, and iters must all be positive")
		os.Exit(1)
	}

	labels := make([]index.IndexLabel, *rows)
	keyValues := make([]scalar.Scalar, *rows)
	valueValues := make([]scalar.Scalar, *rows)
	for i := 0; i < *rows; i++ {
		labels[i] = index.Int64Label(int64(i))
		keyValues[i] = scalar.FromInt64(int64(i % *keyCardinality))
		valueValues[i] = scalar.FromInt64(int64((i*7 + 3) % 97))
	}

	keys, err := frame.FromValues("keys", labels, keyValues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groupby-bench: %v\n", err)
		os.Exit(1)
	}
	values, err := frame.FromValues("values", labels, valueValues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groupby-bench: %v\n", err)
		os.Exit(1)
	}

	pol := policy.Strict()
	var checksum float64
	var total time.Duration
	for i := 0; i < *iters; i++ {
		ledger := policy.NewEvidenceLedger()
		start := time.Now()
		out, err := groupby.GroupBySum(keys, values, groupby.DefaultOptions(), pol, ledger)
		total += time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "groupby-bench: %v\n", err)
			os.Exit(1)
		}
		for _, v := range out.Values() {
			if f, err := v.ToFloat64(); err == nil {
				checksum += f
			}
		}
	}

	meanMs := total.Seconds() * 1000.0 / float64(*iters)
	fmt.Printf("groupby_bench rows=%d key_cardinality=%d iters=%d mean_ms=%.3f checksum=%.3f\n",
		*rows, *keyCardinality, *iters, meanMs, checksum)
}
