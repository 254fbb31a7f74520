package groupby

import (
	"github.com/t7a/frankenpandas/frame"
	"github.com/t7a/frankenpandas/internal/scalar"
)

// fingerprint is the Go analogue of fp-groupby's GroupKeyRef: a value type
// that identifies a key's group without copying its label more than once.
// Being a plain comparable struct, it doubles as its own hash map key — Go
// has no borrowed-reference equivalent to Rust's GroupKeyRef::Utf8(&str),
// so string keys are compared by value instead of by borrow.
type fingerprint struct {
	kind scalar.Kind
	b    bool
	i    int64
	bits uint64
	s    string
}

func fingerprintOf(v scalar.Scalar) fingerprint {
	if v.IsMissing() {
		return fingerprint{kind: scalar.KindNull}
	}
	switch v.Kind() {
	case scalar.KindBool:
		return fingerprint{kind: scalar.KindBool, b: v.Bool()}
	case scalar.KindInt64:
		return fingerprint{kind: scalar.KindInt64, i: v.Int64()}
	case scalar.KindFloat64:
		return fingerprint{kind: scalar.KindFloat64, bits: v.FloatBits()}
	default:
		return fingerprint{kind: scalar.KindUtf8, s: v.Utf8()}
	}
}

// genericSlot is the generic path's per-group accumulator: the row index
// the label should be rebuilt from, and the running sum.
type genericSlot struct {
	sourceRowIndex int
	sum            float64
}

// groupBySumGeneric runs the hash-based path: a fingerprint per distinct
// key, first-seen ordering, missing-value skip on add, dropna semantics on
// the key side (spec.md §4.4.2, §4.4.3). A value with no numeric
// representation (Bool/Utf8) is skipped rather than erroring, matching
// fp-groupby's `if let Ok(v) = value.to_f64() { entry.1 += v }`: there is
// no error kind in spec.md §6 for "value not numeric", only for missing
// values or structural mismatches.
//
// groupBySumWithArena also calls this directly for its fallback path: the
// generic path is a hash map either way, so there is no separate
// arena-backed variant to maintain (spec.md §4.4.6's arena-vs-global
// choice is exercised by the dense path's sums/seen/ordering buffers).
func groupBySumGeneric(keys, values []scalar.Scalar, options Options) (frame.Series, error) {
	slots := make(map[fingerprint]*genericSlot, len(keys))
	ordering := make([]fingerprint, 0, len(keys))

	for i, k := range keys {
		if options.DropNA && k.IsMissing() {
			continue
		}
		fp := fingerprintOf(k)
		slot, ok := slots[fp]
		if !ok {
			slot = &genericSlot{sourceRowIndex: i}
			slots[fp] = slot
			ordering = append(ordering, fp)
		}
		if i < len(values) && !values[i].IsMissing() {
			if add, err := values[i].ToFloat64(); err == nil {
				slot.sum += add
			}
		}
	}

	return emitFromGeneric(keys, ordering, slots)
}
