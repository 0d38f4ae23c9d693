package datatables

import (
	"sort"
)

// Column is the assembled view of one column's parameters.
//
// Fields:
//   - Index: The column index the parameters arrived under.
//   - Data: The data property name of the column.
//   - Name: The display name of the column.
//   - Searchable: Indicates if the column is searchable.
//   - Orderable: Indicates if the column can be ordered.
//   - SearchValue: The column-local search value.
//   - SearchRegex: Indicates if the column-local search value is a regular
//     expression.
type Column struct {
	Index       int
	Data        string
	Name        string
	Searchable  bool
	Orderable   bool
	SearchValue string
	SearchRegex bool
}

// ColumnIndexes returns, in ascending order, every column index that
// appeared in any of the per-column parameter maps.
func (req *Request) ColumnIndexes() []int {
	seen := make(map[int]bool)
	for i := range req.ColumnData {
		seen[i] = true
	}
	for i := range req.ColumnName {
		seen[i] = true
	}
	for i := range req.ColumnSearchable {
		seen[i] = true
	}
	for i := range req.ColumnOrderable {
		seen[i] = true
	}
	for i := range req.ColumnSearchValue {
		seen[i] = true
	}
	for i := range req.ColumnSearchRegex {
		seen[i] = true
	}

	indexes := make([]int, 0, len(seen))
	for i := range seen {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	return indexes
}

// Column assembles the view for one column index. Attributes whose
// parameter never arrived keep their zero value. ok is false when the index
// appears in none of the per-column maps.
func (req *Request) Column(index int) (col Column, ok bool) {
	col.Index = index
	if v, found := req.ColumnData[index]; found {
		col.Data, ok = v, true
	}
	if v, found := req.ColumnName[index]; found {
		col.Name, ok = v, true
	}
	if v, found := req.ColumnSearchable[index]; found {
		col.Searchable, ok = v, true
	}
	if v, found := req.ColumnOrderable[index]; found {
		col.Orderable, ok = v, true
	}
	if v, found := req.ColumnSearchValue[index]; found {
		col.SearchValue, ok = v, true
	}
	if v, found := req.ColumnSearchRegex[index]; found {
		col.SearchRegex, ok = v, true
	}
	return col, ok
}

// Columns assembles the view for every column index, in ascending index
// order.
func (req *Request) Columns() []Column {
	indexes := req.ColumnIndexes()
	columns := make([]Column, 0, len(indexes))
	for _, i := range indexes {
		col, _ := req.Column(i)
		columns = append(columns, col)
	}
	return columns
}
