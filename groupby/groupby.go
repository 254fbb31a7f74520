// Package groupby implements the group-by-sum aggregator: alignment of
// keys and values, a dense-bucket fast path for small-span Int64 keys, a
// generic hash-based path for everything else, and the arena-vs-global
// allocator choice for their intermediates. Ported from
// original_source/crates/fp-groupby/src/lib.rs (spec.md §4.4).
package groupby

import (
	"fmt"

	"github.com/t7a/frankenpandas/frame"
	"github.com/t7a/frankenpandas/internal/index"
	"github.com/t7a/frankenpandas/internal/policy"
	"github.com/t7a/frankenpandas/internal/scalar"
)

// Options configures how missing keys are handled.
type Options struct {
	// DropNA, when true, skips rows whose key is any Null variant. When
	// false, all Null key kinds collapse into a single group labeled
	// "<null>".
	DropNA bool
}

// DefaultOptions matches fp-groupby's GroupByOptions::default (dropna=true).
func DefaultOptions() Options {
	return Options{DropNA: true}
}

// DefaultArenaBudgetBytes mirrors fp-groupby's DEFAULT_ARENA_BUDGET_BYTES.
const DefaultArenaBudgetBytes = 256 * 1024 * 1024

// ExecutionOptions controls the arena-vs-global allocator choice. Path
// choice (dense vs generic) is a performance optimization only; this
// struct's choice is too — outputs must be identical either way (spec.md
// §4.4.2, §4.4.6).
type ExecutionOptions struct {
	UseArena         bool
	ArenaBudgetBytes int
}

// DefaultExecutionOptions matches fp-groupby's GroupByExecutionOptions::default.
func DefaultExecutionOptions() ExecutionOptions {
	return ExecutionOptions{UseArena: true, ArenaBudgetBytes: DefaultArenaBudgetBytes}
}

// ExecutionTrace records what GroupBySumWithTrace actually did, for tests
// that need to assert on arena-vs-global dispatch (spec.md §4.4.6).
type ExecutionTrace struct {
	UsedArena       bool
	InputRows       int
	EstimatedBytes  int
}

// GroupBySum aggregates values by key with the default execution options, producing a
// Series named "sum" indexed by each distinct key in first-seen order.
func GroupBySum(keys, values frame.Series, options Options, pol policy.RuntimePolicy, ledger *policy.EvidenceLedger) (frame.Series, error) {
	return GroupBySumWithOptions(keys, values, options, pol, ledger, DefaultExecutionOptions())
}

// GroupBySumWithOptions is GroupBySum with explicit execution options.
func GroupBySumWithOptions(keys, values frame.Series, options Options, pol policy.RuntimePolicy, ledger *policy.EvidenceLedger, execOptions ExecutionOptions) (frame.Series, error) {
	out, _, err := GroupBySumWithTrace(keys, values, options, pol, ledger, execOptions)
	return out, err
}

// GroupBySumWithTrace is GroupBySumWithOptions that also returns the
// execution trace spec.md §4.4.6 calls for "for testing".
func GroupBySumWithTrace(keys, values frame.Series, options Options, pol policy.RuntimePolicy, ledger *policy.EvidenceLedger, execOptions ExecutionOptions) (frame.Series, ExecutionTrace, error) {
	keyValues, valueValues, err := alignedValues(keys, values)
	if err != nil {
		return frame.Series{}, ExecutionTrace{}, fmt.Errorf("GroupBySum(): %w", err)
	}

	inputRows := len(keyValues)
	estimatedBytes := estimateIntermediateBytes(inputRows)
	useArena := execOptions.UseArena && estimatedBytes <= execOptions.ArenaBudgetBytes

	var result frame.Series
	if useArena {
		result, err = groupBySumWithArena(keyValues, valueValues, options)
	} else {
		result, err = groupBySumWithGlobalAllocator(keyValues, valueValues, options)
	}
	if err != nil {
		return frame.Series{}, ExecutionTrace{}, fmt.Errorf("GroupBySum(): %w", err)
	}

	return result, ExecutionTrace{
		UsedArena:      useArena,
		InputRows:      inputRows,
		EstimatedBytes: estimatedBytes,
	}, nil
}

// alignedValues implements spec.md §4.4.1: if keys and values already share
// an index with no duplicates, alignment is skipped entirely (fast path).
// Otherwise the union-alignment planner runs and both columns are
// reindexed by their position maps.
func alignedValues(keys, values frame.Series) ([]scalar.Scalar, []scalar.Scalar, error) {
	if keys.Index().Equal(values.Index()) && !keys.Index().HasDuplicates() {
		return keys.Values(), values.Values(), nil
	}

	plan := index.AlignUnion(keys.Index(), values.Index())
	if err := index.ValidateAlignmentPlan(plan); err != nil {
		return nil, nil, err
	}
	alignedKeys, err := keys.Column().ReindexByPositions(plan.LeftPositions)
	if err != nil {
		return nil, nil, err
	}
	alignedVals, err := values.Column().ReindexByPositions(plan.RightPositions)
	if err != nil {
		return nil, nil, err
	}
	return alignedKeys.Values(), alignedVals.Values(), nil
}

// estimateIntermediateBytes is a conservative upper bound on the
// intermediate memory a group-by call needs, covering the generic path's
// per-entry hash overhead (spec.md §4.4.6): rows * (sizeof(f64) +
// sizeof(bool) + sizeof(i64) + 64).
func estimateIntermediateBytes(rows int) int {
	const perRow = 8 + 1 + 8 + 64
	return rows * perRow
}
