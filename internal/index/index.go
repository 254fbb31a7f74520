// Package index implements the alignment planner: the union-index
// computation and positional projection maps that every binary operation
// over two indexed containers (Series addition, DataFrame construction,
// group-by alignment) is built on. This is spec.md §4.1 in full.
package index

import (
	"errors"
	"fmt"
)

// LabelKind tags which variant of IndexLabel is populated.
type LabelKind int

const (
	LabelInt64 LabelKind = iota
	LabelUtf8
)

// IndexLabel is a tagged value over Int64 or Utf8, used to identify rows.
type IndexLabel struct {
	kind   LabelKind
	intVal int64
	strVal string
}

// Int64Label builds an Int64 label.
func Int64Label(v int64) IndexLabel { return IndexLabel{kind: LabelInt64, intVal: v} }

// Utf8Label builds a Utf8 label.
func Utf8Label(v string) IndexLabel { return IndexLabel{kind: LabelUtf8, strVal: v} }

// Kind reports which variant is populated.
func (l IndexLabel) Kind() LabelKind { return l.kind }

// Int64 returns the int64 value; only meaningful when Kind() == LabelInt64.
func (l IndexLabel) Int64() int64 { return l.intVal }

// Utf8 returns the string value; only meaningful when Kind() == LabelUtf8.
func (l IndexLabel) Utf8() string { return l.strVal }

// Equal reports value-equality between two labels.
func (l IndexLabel) Equal(other IndexLabel) bool {
	if l.kind != other.kind {
		return false
	}
	if l.kind == LabelInt64 {
		return l.intVal == other.intVal
	}
	return l.strVal == other.strVal
}

// String renders the label's plain display text: the int64 in base 10, or
// the utf8 string unchanged. Note this is lossy for dedup purposes — use
// key() internally wherever Int64(1) and Utf8("1") must stay distinct.
func (l IndexLabel) String() string {
	if l.kind == LabelInt64 {
		return fmt.Sprintf("%d", l.intVal)
	}
	return l.strVal
}

// key returns a type-tagged identity string safe for use as a map key,
// keeping Int64(1) and Utf8("1") distinct (unlike String(), which is for
// display only).
func (l IndexLabel) key() string {
	if l.kind == LabelInt64 {
		return "i:" + fmt.Sprintf("%d", l.intVal)
	}
	return "s:" + l.strVal
}

// ErrIndex is the sentinel base for Error, so callers can branch with
// errors.Is instead of errors.As when they don't need the message.
var ErrIndex = errors.New("index: validation failed")

// Error is the planner-internal validation failure kind (spec.md §7's
// "Index" error). Encountering it outside malformed input is a bug signal.
type Error struct {
	msg string
}

func (e *Error) Error() string { return "index: " + e.msg }

func (e *Error) Is(target error) bool { return target == ErrIndex }

func newError(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Index is an ordered sequence of labels identifying the rows of a Series
// or DataFrame.
type Index struct {
	labels []IndexLabel
}

// New builds an Index from a label slice, copying it so later mutation of
// the caller's slice cannot change the Index.
func New(labels []IndexLabel) Index {
	out := make([]IndexLabel, len(labels))
	copy(out, labels)
	return Index{labels: out}
}

// Len is the canonical length of any Series/Column bound to this Index.
func (ix Index) Len() int { return len(ix.labels) }

// Labels returns the underlying label slice. Callers must not mutate it.
func (ix Index) Labels() []IndexLabel { return ix.labels }

// At returns the label at position i.
func (ix Index) At(i int) IndexLabel { return ix.labels[i] }

// HasDuplicates reports whether any label appears more than once.
func (ix Index) HasDuplicates() bool {
	seen := make(map[string]struct{}, len(ix.labels))
	for _, l := range ix.labels {
		key := l.key()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// Equal reports whether two indices hold the same labels in the same order.
func (ix Index) Equal(other Index) bool {
	if len(ix.labels) != len(other.labels) {
		return false
	}
	for i := range ix.labels {
		if !ix.labels[i].Equal(other.labels[i]) {
			return false
		}
	}
	return true
}

// Absent marks a plan position with no corresponding source row.
const Absent = -1

// Plan is the result of aligning two indices: the union index, plus two
// positional maps projecting each source's values into the union. LeftLen
// and RightLen record the source lengths the positions must stay in range
// of, so ValidateAlignmentPlan can be a single-argument contract.
type Plan struct {
	Union          Index
	LeftPositions  []int
	RightPositions []int
	LeftLen        int
	RightLen       int
}

// AlignUnion computes the union of left and right: left labels in order,
// then right labels in order, skipping any right label already present in
// the union. Duplicate labels on either side are equal to their first
// occurrence for membership purposes; position maps choose the first
// matching source position (spec.md §4.1).
func AlignUnion(left, right Index) Plan {
	seen := make(map[string]int, len(left.labels)+len(right.labels))
	union := make([]IndexLabel, 0, len(left.labels)+len(right.labels))

	leftFirstPos := make(map[string]int, len(left.labels))
	for i, l := range left.labels {
		key := l.key()
		if _, ok := leftFirstPos[key]; !ok {
			leftFirstPos[key] = i
		}
	}
	rightFirstPos := make(map[string]int, len(right.labels))
	for i, l := range right.labels {
		key := l.key()
		if _, ok := rightFirstPos[key]; !ok {
			rightFirstPos[key] = i
		}
	}

	for _, l := range left.labels {
		key := l.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = len(union)
		union = append(union, l)
	}
	for _, l := range right.labels {
		key := l.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = len(union)
		union = append(union, l)
	}

	leftPositions := make([]int, len(union))
	rightPositions := make([]int, len(union))
	for i, l := range union {
		key := l.key()
		if pos, ok := leftFirstPos[key]; ok {
			leftPositions[i] = pos
		} else {
			leftPositions[i] = Absent
		}
		if pos, ok := rightFirstPos[key]; ok {
			rightPositions[i] = pos
		} else {
			rightPositions[i] = Absent
		}
	}

	return Plan{
		Union:          New(union),
		LeftPositions:  leftPositions,
		RightPositions: rightPositions,
		LeftLen:        left.Len(),
		RightLen:       right.Len(),
	}
}

// ValidateAlignmentPlan checks that both position maps have the union's
// length and that every non-absent position is in range for its source.
func ValidateAlignmentPlan(plan Plan) error {
	n := plan.Union.Len()
	if len(plan.LeftPositions) != n || len(plan.RightPositions) != n {
		return newError(
			"position map length mismatch: union=%d left=%d right=%d",
			n, len(plan.LeftPositions), len(plan.RightPositions))
	}
	for i, pos := range plan.LeftPositions {
		if pos != Absent && (pos < 0 || pos >= plan.LeftLen) {
			return newError("left position %d at union index %d is out of range [0,%d)", pos, i, plan.LeftLen)
		}
	}
	for i, pos := range plan.RightPositions {
		if pos != Absent && (pos < 0 || pos >= plan.RightLen) {
			return newError("right position %d at union index %d is out of range [0,%d)", pos, i, plan.RightLen)
		}
	}
	return nil
}
