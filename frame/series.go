// Package frame implements the in-scope core spec.md names: Series, its
// policy-gated binary arithmetic, series concatenation, and the DataFrame
// N-way constructor. It is ported from
// original_source/crates/fp-frame/src/lib.rs, generalized from that Rust
// crate's API onto the Go index/column/scalar/policy packages the way the
// teacher (t7a-tada) generalizes pandas' Series/DataFrame onto its own
// valueContainer plumbing.
package frame

import (
	"fmt"

	"github.com/t7a/frankenpandas/internal/column"
	"github.com/t7a/frankenpandas/internal/index"
	"github.com/t7a/frankenpandas/internal/policy"
	"github.com/t7a/frankenpandas/internal/scalar"
)

// Series is a named pair of (Index, Column); index.Len() always equals
// column.Len(). Series is immutable after construction.
type Series struct {
	name   string
	index  index.Index
	column column.Column
}

// New builds a Series, failing with LengthMismatchError if the index and
// column lengths disagree.
func New(name string, idx index.Index, col column.Column) (Series, error) {
	if idx.Len() != col.Len() {
		return Series{}, &LengthMismatchError{IndexLen: idx.Len(), ColumnLen: col.Len()}
	}
	return Series{name: name, index: idx, column: col}, nil
}

// FromValues builds a Series directly from index labels and scalar values.
func FromValues(name string, labels []index.IndexLabel, values []scalar.Scalar) (Series, error) {
	idx := index.New(labels)
	col, err := column.FromValues(values)
	if err != nil {
		return Series{}, fmt.Errorf("Series.FromValues(): %w", err)
	}
	return New(name, idx, col)
}

// Name returns the series name.
func (s Series) Name() string { return s.name }

// Index returns the series' labels.
func (s Series) Index() index.Index { return s.index }

// Column returns the series' underlying column.
func (s Series) Column() column.Column { return s.column }

// Values returns the series' scalar values.
func (s Series) Values() []scalar.Scalar { return s.column.Values() }

// Len returns the number of elements in the series.
func (s Series) Len() int { return s.index.Len() }

// IsEmpty reports whether the series has zero elements.
func (s Series) IsEmpty() bool { return s.index.Len() == 0 }

// AddWithPolicy aligns this series with other on the union of their
// indices, then adds the aligned columns element-wise (spec.md §4.2):
//
//  1. If either index has duplicates, the policy is informed; strict mode
//     rejects with DuplicateIndexUnsupportedError, other modes proceed and
//     record an "index_alignment" unknown-feature entry.
//  2. The alignment plan is computed and validated.
//  3. Both columns are reindexed by the plan's position maps; absent
//     positions become typed nulls.
//  4. The policy is asked to admit the union length; Reject fails with
//     CompatibilityRejectedError.
//  5. The aligned columns are combined with arithmetic-add.
//
// The output name reuses the shared name if both operands share one,
// otherwise concatenates as "{left}+{right}".
func (s Series) AddWithPolicy(other Series, pol policy.RuntimePolicy, ledger *policy.EvidenceLedger) (Series, error) {
	if s.index.HasDuplicates() || other.index.HasDuplicates() {
		pol.DecideUnknownFeature("index_alignment", "duplicate labels are not yet fully modeled", ledger)
		if pol.Mode() == policy.ModeStrict {
			return Series{}, &DuplicateIndexUnsupportedError{}
		}
	}

	plan := index.AlignUnion(s.index, other.index)
	if err := index.ValidateAlignmentPlan(plan); err != nil {
		return Series{}, fmt.Errorf("Series.AddWithPolicy(): %w", err)
	}

	left, err := s.column.ReindexByPositions(plan.LeftPositions)
	if err != nil {
		return Series{}, fmt.Errorf("Series.AddWithPolicy(): %w", err)
	}
	right, err := other.column.ReindexByPositions(plan.RightPositions)
	if err != nil {
		return Series{}, fmt.Errorf("Series.AddWithPolicy(): %w", err)
	}

	action := pol.DecideJoinAdmission(plan.Union.Len(), ledger)
	if action == policy.Reject {
		return Series{}, &CompatibilityRejectedError{Detail: "runtime policy rejected alignment admission"}
	}

	combined, err := left.BinaryNumeric(right, column.OpAdd)
	if err != nil {
		return Series{}, fmt.Errorf("Series.AddWithPolicy(): %w", err)
	}

	outName := s.name
	if s.name != other.name {
		outName = fmt.Sprintf("%s+%s", s.name, other.name)
	}

	return New(outName, plan.Union, combined)
}

// Add is a convenience wrapper over AddWithPolicy using a strict policy and
// a throwaway ledger, matching fp-frame's Series::add.
func (s Series) Add(other Series) (Series, error) {
	ledger := policy.NewEvidenceLedger()
	return s.AddWithPolicy(other, policy.Strict(), ledger)
}

// ConcatSeries concatenates series along axis 0 (row-wise): index labels
// are concatenated in order (duplicates preserved), values follow the same
// order, and an empty input returns an empty series named "concat". The
// output is named "concat" unless exactly one series is given, in which
// case its name is preserved.
func ConcatSeries(seriesList []Series) (Series, error) {
	if len(seriesList) == 0 {
		return FromValues("concat", nil, nil)
	}

	totalLen := 0
	for _, s := range seriesList {
		totalLen += s.Len()
	}
	labels := make([]index.IndexLabel, 0, totalLen)
	values := make([]scalar.Scalar, 0, totalLen)
	for _, s := range seriesList {
		labels = append(labels, s.index.Labels()...)
		values = append(values, s.Values()...)
	}

	name := "concat"
	if len(seriesList) == 1 {
		name = seriesList[0].name
	}
	return FromValues(name, labels, values)
}
