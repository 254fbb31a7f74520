package frame

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/ptiger10/tablediff"
)

// String renders the series as an ASCII table of (index, value) pairs, the
// way tada's DataFrame.String() does with olekukonko/tablewriter
// (dataframe.go, ~line 496): "Printing either data type will render an
// ASCII table" (types.go package doc).
func (s Series) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	if s.name != "" {
		table.SetCaption(true, fmt.Sprintf("name: %s", s.name))
	}
	table.SetHeader([]string{"index", "value"})
	labels := s.index.Labels()
	values := s.Values()
	for i := range labels {
		table.Append([]string{labels[i].String(), values[i].String()})
	}
	table.Render()
	return buf.String()
}

// String renders the DataFrame as an ASCII table with the index as the
// leftmost column, followed by each data column in ColumnNames() order.
func (df DataFrame) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	names := df.ColumnNames()
	header := append([]string{"index"}, names...)
	table.SetHeader(header)

	labels := df.index.Labels()
	for i := range labels {
		row := make([]string, 0, len(names)+1)
		row = append(row, labels[i].String())
		for _, name := range names {
			col := df.columns[name]
			row = append(row, col.At(i).String())
		}
		table.Append(row)
	}
	table.Render()
	return buf.String()
}

// ToCSV renders the DataFrame as a CSV-shaped grid: a header row of
// "index" plus column names, followed by one row per index position. If
// ignoreLabels is true, the index column is omitted.
func (df DataFrame) ToCSV(ignoreLabels bool) [][]string {
	names := df.ColumnNames()
	var header []string
	if !ignoreLabels {
		header = append(header, "index")
	}
	header = append(header, names...)
	rows := [][]string{header}

	labels := df.index.Labels()
	for i := range labels {
		var row []string
		if !ignoreLabels {
			row = append(row, labels[i].String())
		}
		for _, name := range names {
			col := df.columns[name]
			row = append(row, col.At(i).String())
		}
		rows = append(rows, row)
	}
	return rows
}

// EqualsCSV converts the DataFrame to CSV and compares it against csv,
// returning whether they match and, when they do not, a tablediff.
// Differences object that can be printed to isolate the mismatch (ported
// from tada's DataFrame.EqualsCSV, dataframe.go:335).
func (df DataFrame) EqualsCSV(csv [][]string, ignoreLabels bool) (bool, *tablediff.Differences) {
	compare := df.ToCSV(ignoreLabels)
	diffs, eq := tablediff.Diff(compare, csv)
	return eq, diffs
}
