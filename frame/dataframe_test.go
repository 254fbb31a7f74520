package frame

import (
	"testing"

	"github.com/t7a/frankenpandas/internal/index"
	"github.com/t7a/frankenpandas/internal/scalar"
)

func TestFromSeries_UnionReindexesExistingColumns(t *testing.T) {
	s1, _ := FromValues("a", []index.IndexLabel{index.Int64Label(1), index.Int64Label(2)},
		[]scalar.Scalar{scalar.FromInt64(1), scalar.FromInt64(2)})
	s2, _ := FromValues("b", []index.IndexLabel{index.Int64Label(2), index.Int64Label(3)},
		[]scalar.Scalar{scalar.FromInt64(20), scalar.FromInt64(30)})

	df, err := FromSeries([]Series{s1, s2})
	if err != nil {
		t.Fatalf("FromSeries() err = %v", err)
	}
	if df.Len() != 3 {
		t.Fatalf("FromSeries().Len() = %d, want 3", df.Len())
	}

	colA, ok := df.Column("a")
	if !ok {
		t.Fatalf("expected column %q to exist", "a")
	}
	wantA := []int64{1, 2, -1} // -1 marks expected-missing
	for i, want := range wantA {
		v := colA.At(i)
		if want == -1 {
			if !v.IsMissing() {
				t.Errorf("column a at position %d: expected missing, got %v", i, v)
			}
			continue
		}
		if v.Int64() != want {
			t.Errorf("column a at position %d = %v, want %d", i, v, want)
		}
	}
}

func TestFromSeries_EmptyInput(t *testing.T) {
	df, err := FromSeries(nil)
	if err != nil {
		t.Fatalf("FromSeries(nil) err = %v", err)
	}
	if df.Len() != 0 {
		t.Errorf("FromSeries(nil).Len() = %d, want 0", df.Len())
	}
	if len(df.ColumnNames()) != 0 {
		t.Errorf("FromSeries(nil).ColumnNames() = %v, want empty", df.ColumnNames())
	}
}

func TestDataFrame_ColumnNames_Alphabetical(t *testing.T) {
	s1, _ := FromValues("zeta", []index.IndexLabel{index.Int64Label(1)}, []scalar.Scalar{scalar.FromInt64(1)})
	s2, _ := FromValues("alpha", []index.IndexLabel{index.Int64Label(1)}, []scalar.Scalar{scalar.FromInt64(1)})

	df, err := FromSeries([]Series{s1, s2})
	if err != nil {
		t.Fatalf("FromSeries() err = %v", err)
	}
	names := df.ColumnNames()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("ColumnNames() = %v, want [alpha zeta]", names)
	}
}
