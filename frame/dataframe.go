package frame

import (
	"sort"

	"github.com/t7a/frankenpandas/internal/column"
	"github.com/t7a/frankenpandas/internal/index"
)

// DataFrame is an Index paired with a name -> Column mapping; every column
// has length equal to the index (spec.md §3).
type DataFrame struct {
	index   index.Index
	columns map[string]column.Column
}

// NewDataFrame builds a DataFrame, failing with LengthMismatchError if any
// column's length disagrees with the index's length.
func NewDataFrame(idx index.Index, columns map[string]column.Column) (DataFrame, error) {
	for name, col := range columns {
		if col.Len() != idx.Len() {
			return DataFrame{}, &LengthMismatchError{IndexLen: idx.Len(), ColumnLen: col.Len()}
		}
		_ = name
	}
	out := make(map[string]column.Column, len(columns))
	for name, col := range columns {
		out[name] = col
	}
	return DataFrame{index: idx, columns: out}, nil
}

// FromSeries collates N series into one rectangular shape (spec.md §4.3):
//
//  1. An empty list yields an empty frame.
//  2. The global union index is computed once by left-folding pairwise
//     alignment starting from the first series' index — never by
//     realigning every prior column against each new series (that would be
//     the forbidden O(N²) strategy).
//  3. Each series is then aligned against the global union exactly once,
//     and only the resulting right-positions (where the series' values
//     live inside the union) are used to reindex its column.
//  4. Duplicate series names collapse; the later series wins.
func FromSeries(seriesList []Series) (DataFrame, error) {
	if len(seriesList) == 0 {
		return NewDataFrame(index.New(nil), map[string]column.Column{})
	}

	unionIndex := seriesList[0].Index()
	for _, s := range seriesList[1:] {
		plan := index.AlignUnion(unionIndex, s.Index())
		if err := index.ValidateAlignmentPlan(plan); err != nil {
			return DataFrame{}, err
		}
		unionIndex = plan.Union
	}

	columns := make(map[string]column.Column, len(seriesList))
	for _, s := range seriesList {
		plan := index.AlignUnion(unionIndex, s.Index())
		aligned, err := s.Column().ReindexByPositions(plan.RightPositions)
		if err != nil {
			return DataFrame{}, err
		}
		columns[s.Name()] = aligned
	}

	return NewDataFrame(unionIndex, columns)
}

// Index returns the frame's shared index.
func (df DataFrame) Index() index.Index { return df.index }

// Column returns the named column and whether it exists.
func (df DataFrame) Column(name string) (column.Column, bool) {
	col, ok := df.columns[name]
	return col, ok
}

// ColumnNames returns the column names in the frame's stable iteration
// order. spec.md §3 leaves this choice to the implementation and names
// alphabetical-by-name as acceptable; this is the chosen determinism
// policy (spec.md §9, "DataFrame column iteration order").
func (df DataFrame) ColumnNames() []string {
	names := make([]string, 0, len(df.columns))
	for name := range df.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of rows (the shared index's length).
func (df DataFrame) Len() int { return df.index.Len() }
