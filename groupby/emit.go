package groupby

import (
	"strconv"

	"github.com/t7a/frankenpandas/frame"
	"github.com/t7a/frankenpandas/internal/arena"
	"github.com/t7a/frankenpandas/internal/index"
	"github.com/t7a/frankenpandas/internal/scalar"
)

// labelFromKeyScalar rebuilds the output IndexLabel for a group from the
// key scalar that first established it (spec.md §4.4.5): Int64 and Utf8
// keys carry their own label type through; Bool and Float64 keys are
// rendered to their canonical string form since IndexLabel has no Bool or
// Float64 variant; any Null kind collapses to the literal label "<null>".
func labelFromKeyScalar(k scalar.Scalar) index.IndexLabel {
	if k.IsMissing() {
		return index.Utf8Label("<null>")
	}
	switch k.Kind() {
	case scalar.KindInt64:
		return index.Int64Label(k.Int64())
	case scalar.KindUtf8:
		return index.Utf8Label(k.Utf8())
	case scalar.KindBool:
		return index.Utf8Label(strconv.FormatBool(k.Bool()))
	default:
		return index.Utf8Label(strconv.FormatFloat(k.Float64(), 'g', -1, 64))
	}
}

// emitFromGeneric rebuilds the output Series from the generic path's
// ordering and slot map: the label is read back from the source key
// scalar exactly once per group, never per row.
func emitFromGeneric(keys []scalar.Scalar, ordering []fingerprint, slots map[fingerprint]*genericSlot) (frame.Series, error) {
	labels := make([]index.IndexLabel, len(ordering))
	values := make([]scalar.Scalar, len(ordering))
	for i, fp := range ordering {
		slot := slots[fp]
		labels[i] = labelFromKeyScalar(keys[slot.sourceRowIndex])
		values[i] = scalar.FromFloat64(slot.sum)
	}
	return frame.FromValues("sum", labels, values)
}

// groupBySumWithGlobalAllocator runs the dense path when the keys are
// eligible, otherwise falls back to the generic path, using ordinary
// garbage-collected allocation throughout.
func groupBySumWithGlobalAllocator(keys, values []scalar.Scalar, options Options) (frame.Series, error) {
	if out, ok, err := tryGroupBySumDenseInt64(keys, values, options); ok || err != nil {
		return out, err
	}
	return groupBySumGeneric(keys, values, options)
}

// groupBySumWithArena is groupBySumWithGlobalAllocator with the dense
// path's intermediate buffers drawn from an Arena, released in bulk once
// emission has copied out its results. The generic path has no arena
// variant of its own — it is a hash map regardless of allocator choice —
// so the fallback calls groupBySumGeneric directly.
func groupBySumWithArena(keys, values []scalar.Scalar, options Options) (frame.Series, error) {
	a := arena.New()
	defer a.Release()

	if out, ok, err := tryGroupBySumDenseInt64Arena(a, keys, values, options); ok || err != nil {
		return out, err
	}
	return groupBySumGeneric(keys, values, options)
}
