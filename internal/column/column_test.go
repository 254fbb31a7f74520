package column

import (
	"testing"

	"github.com/d4l3k/messagediff"

	"github.com/t7a/frankenpandas/internal/index"
	"github.com/t7a/frankenpandas/internal/scalar"
)

func TestColumn_ReindexByPositions(t *testing.T) {
	c, _ := FromValues([]scalar.Scalar{scalar.FromInt64(10), scalar.FromInt64(30)})

	got, err := c.ReindexByPositions([]int{0, 1, index.Absent})
	if err != nil {
		t.Fatalf("ReindexByPositions() err = %v", err)
	}
	want := []scalar.Scalar{scalar.FromInt64(10), scalar.FromInt64(30), scalar.FromNull(scalar.NullKindNull)}
	if !scalarsEqual(got.Values(), want) {
		t.Errorf(messagediff.PrettyDiff(got.Values(), want))
	}
}

func TestColumn_ReindexByPositions_OutOfRange(t *testing.T) {
	c, _ := FromValues([]scalar.Scalar{scalar.FromInt64(1)})
	if _, err := c.ReindexByPositions([]int{5}); err == nil {
		t.Errorf("expected an out-of-range position to error")
	}
}

func TestColumn_BinaryNumeric_Add(t *testing.T) {
	tests := []struct {
		name    string
		left    []scalar.Scalar
		right   []scalar.Scalar
		want    []scalar.Scalar
		wantErr bool
	}{
		{
			"int plus int stays int",
			[]scalar.Scalar{scalar.FromInt64(1), scalar.FromInt64(2)},
			[]scalar.Scalar{scalar.FromInt64(10), scalar.FromInt64(20)},
			[]scalar.Scalar{scalar.FromInt64(11), scalar.FromInt64(22)},
			false,
		},
		{
			"any null produces null",
			[]scalar.Scalar{scalar.FromInt64(1), scalar.FromNull(scalar.NullKindNull)},
			[]scalar.Scalar{scalar.FromNull(scalar.NullKindNull), scalar.FromInt64(2)},
			[]scalar.Scalar{scalar.FromNull(scalar.NullKindNull), scalar.FromNull(scalar.NullKindNull)},
			false,
		},
		{
			"float promotes result",
			[]scalar.Scalar{scalar.FromInt64(1)},
			[]scalar.Scalar{scalar.FromFloat64(0.5)},
			[]scalar.Scalar{scalar.FromFloat64(1.5)},
			false,
		},
		{
			"non-numeric operand errors",
			[]scalar.Scalar{scalar.FromUtf8("x")},
			[]scalar.Scalar{scalar.FromInt64(1)},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, _ := FromValues(tt.left)
			right, _ := FromValues(tt.right)
			got, err := left.BinaryNumeric(right, OpAdd)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("BinaryNumeric() err = %v", err)
			}
			if !scalarsEqual(got.Values(), tt.want) {
				t.Errorf(messagediff.PrettyDiff(got.Values(), tt.want))
			}
		})
	}
}

func scalarsEqual(a, b []scalar.Scalar) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
