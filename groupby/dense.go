package groupby

import (
	"github.com/t7a/frankenpandas/frame"
	"github.com/t7a/frankenpandas/internal/arena"
	"github.com/t7a/frankenpandas/internal/index"
	"github.com/t7a/frankenpandas/internal/scalar"
)

// denseIntKeyRangeLimit mirrors fp-groupby's DENSE_INT_KEY_RANGE_LIMIT: the
// largest (max-min+1) span the dense bucket path will allocate for.
const denseIntKeyRangeLimit = 65536

// denseInt64Range scans the non-dropped keys and reports whether every one
// of them is Int64 and their span fits the dense path's budget. ok is false
// whenever any non-dropped key is missing or non-Int64, or the span is out
// of range, or there are no eligible rows at all (spec.md §4.4.2).
func denseInt64Range(keys []scalar.Scalar, options Options) (min, max int64, count int, ok bool) {
	first := true
	for _, k := range keys {
		if options.DropNA && k.IsMissing() {
			continue
		}
		if k.IsMissing() || k.Kind() != scalar.KindInt64 {
			return 0, 0, 0, false
		}
		v := k.Int64()
		if first {
			min, max = v, v
			first = false
		} else {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		count++
	}
	if count == 0 {
		return 0, 0, 0, false
	}
	// max-min+1 can overflow int64 when the keys span near the full int64
	// range (e.g. min=MinInt64, max=MaxInt64); comparing the unsigned
	// distance against the limit first avoids ever forming that sum.
	span := uint64(max) - uint64(min)
	if span > denseIntKeyRangeLimit-1 {
		return 0, 0, 0, false
	}
	return min, max, count, true
}

// tryGroupBySumDenseInt64 attempts the dense bucket path, returning ok=false
// when the keys are not eligible so the caller can fall back to the generic
// path.
func tryGroupBySumDenseInt64(keys, values []scalar.Scalar, options Options) (frame.Series, bool, error) {
	min, max, _, ok := denseInt64Range(keys, options)
	if !ok {
		return frame.Series{}, false, nil
	}
	span := int(max - min + 1)

	sums := make([]float64, span)
	seen := make([]bool, span)
	ordering := make([]int64, 0, span)

	denseFill(keys, values, options, min, sums, seen, &ordering)

	out, err := emitFromDense(ordering, min, sums)
	return out, true, err
}

// tryGroupBySumDenseInt64Arena is tryGroupBySumDenseInt64 with its sums/seen
// buffers drawn from an Arena instead of plain make() calls (spec.md
// §4.4.6's arena-vs-global allocator choice; see internal/arena).
func tryGroupBySumDenseInt64Arena(a *arena.Arena, keys, values []scalar.Scalar, options Options) (frame.Series, bool, error) {
	min, max, _, ok := denseInt64Range(keys, options)
	if !ok {
		return frame.Series{}, false, nil
	}
	span := int(max - min + 1)

	sums := a.Float64s(span)
	seen := a.Bools(span)
	ordering := a.Int64s(span)

	denseFill(keys, values, options, min, sums, seen, &ordering)

	out, err := emitFromDense(ordering, min, sums)
	return out, true, err
}

// denseFill buckets each non-dropped row's value into sums. A non-missing
// but non-numeric value (Bool/Utf8) has no f64 representation; per
// spec.md §3 that is treated as "skip this value", not an error — the
// bucket is still seen/ordered, it just doesn't contribute to the sum.
func denseFill(keys, values []scalar.Scalar, options Options, min int64, sums []float64, seen []bool, ordering *[]int64) {
	for i, k := range keys {
		if options.DropNA && k.IsMissing() {
			continue
		}
		bucket := int(k.Int64() - min)
		if !seen[bucket] {
			seen[bucket] = true
			*ordering = append(*ordering, k.Int64())
		}
		if i < len(values) && !values[i].IsMissing() {
			if add, err := values[i].ToFloat64(); err == nil {
				sums[bucket] += add
			}
		}
	}
}

func emitFromDense(ordering []int64, min int64, sums []float64) (frame.Series, error) {
	labels := make([]index.IndexLabel, len(ordering))
	out := make([]scalar.Scalar, len(ordering))
	for i, k := range ordering {
		labels[i] = index.Int64Label(k)
		out[i] = scalar.FromFloat64(sums[int(k-min)])
	}
	return frame.FromValues("sum", labels, out)
}
