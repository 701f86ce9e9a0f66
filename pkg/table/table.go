package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColumn is returned when a requested column is not present in a table.
var ErrUnknownColumn = errors.New("unknown column")

// Table is an ordered collection of rows sharing a fixed set of named columns.
// Cell values are scalars: string, int64, float64, float32, bool, or nil for
// a missing value. Row order follows insertion order.
type Table struct {
	cols []string
	idx  map[string]int
	rows [][]any
}

// New creates an empty table with the given columns.
func New(cols ...string) *Table {
	t := &Table{
		cols: append([]string(nil), cols...),
		idx:  make(map[string]int, len(cols)),
	}
	for i, c := range t.cols {
		t.idx[c] = i
	}
	return t
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table defines the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.idx[name]
	return ok
}

// AppendRow adds a row. The number of values must match the column count.
func (t *Table) AppendRow(vals ...any) error {
	if len(vals) != len(t.cols) {
		return fmt.Errorf("row has %d values, table has %d columns", len(vals), len(t.cols))
	}
	t.rows = append(t.rows, append([]any(nil), vals...))
	return nil
}

// Cell returns the value at row i in the named column, or nil if the row or
// column does not exist.
func (t *Table) Cell(i int, col string) any {
	ci, ok := t.idx[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i][ci]
}

// SetCell overwrites the value at row i in the named column. Unknown columns
// and out-of-range rows are ignored.
func (t *Table) SetCell(i int, col string, v any) {
	ci, ok := t.idx[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return
	}
	t.rows[i][ci] = v
}

// Row is a view onto a single table row.
type Row struct {
	t *Table
	i int
}

// RowAt returns a view of row i.
func (t *Table) RowAt(i int) Row {
	return Row{t: t, i: i}
}

// Get returns the row's value in the named column.
func (r Row) Get(col string) any {
	return r.t.Cell(r.i, col)
}

// Select returns a new table containing only the requested columns, in the
// requested order. Requesting a column the table does not define fails with
// ErrUnknownColumn.
func (t *Table) Select(cols []string) (*Table, error) {
	src := make([]int, len(cols))
	for i, c := range cols {
		ci, ok := t.idx[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
		src[i] = ci
	}
	out := New(cols...)
	for _, row := range t.rows {
		vals := make([]any, len(cols))
		for i, ci := range src {
			vals[i] = row[ci]
		}
		out.rows = append(out.rows, vals)
	}
	return out, nil
}

// DropColumns returns a new table without the named columns. Names the table
// does not define are ignored.
func (t *Table) DropColumns(names ...string) *Table {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	var keep []string
	for _, c := range t.cols {
		if !drop[c] {
			keep = append(keep, c)
		}
	}
	out, _ := t.Select(keep)
	return out
}

// Rename renames columns in place according to the old-name to new-name mapping.
func (t *Table) Rename(mapping map[string]string) {
	for i, c := range t.cols {
		if n, ok := mapping[c]; ok {
			t.cols[i] = n
		}
	}
	t.idx = make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		t.idx[c] = i
	}
}

// SetConst sets every cell of the named column to v, appending the column if
// the table does not define it yet.
func (t *Table) SetConst(col string, v any) {
	ci, ok := t.idx[col]
	if !ok {
		t.idx[col] = len(t.cols)
		t.cols = append(t.cols, col)
		for i := range t.rows {
			t.rows[i] = append(t.rows[i], v)
		}
		return
	}
	for i := range t.rows {
		t.rows[i][ci] = v
	}
}

// Apply sets the named column per row to the result of fn, appending the
// column if the table does not define it yet.
func (t *Table) Apply(col string, fn func(Row) any) {
	if !t.HasColumn(col) {
		t.SetConst(col, nil)
	}
	ci := t.idx[col]
	for i := range t.rows {
		t.rows[i][ci] = fn(Row{t: t, i: i})
	}
}

// Filter returns a new table containing the rows for which keep returns true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := New(t.cols...)
	for i := range t.rows {
		if keep(Row{t: t, i: i}) {
			out.rows = append(out.rows, append([]any(nil), t.rows[i]...))
		}
	}
	return out
}

// Concat concatenates tables into one. The result's column set is the union of
// the inputs' columns in first-seen order; cells for columns a given input does
// not define are filled with a missing value. Row order follows input order.
func Concat(tables ...*Table) *Table {
	var cols []string
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, c := range t.cols {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	out := New(cols...)
	for _, t := range tables {
		for _, row := range t.rows {
			vals := make([]any, len(cols))
			for j, c := range t.cols {
				vals[out.idx[c]] = row[j]
			}
			out.rows = append(out.rows, vals)
		}
	}
	return out
}

// AsFloat converts a numeric cell value to float64.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}

// AsString converts a cell value to its string form, or "" for missing values.
func AsString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// keyString builds a grouping key from cell values. Numeric values are
// normalized so int64(7) and float64(7) group together.
func keyString(vals []any) string {
	var b strings.Builder
	for _, v := range vals {
		if f, ok := AsFloat(v); ok {
			fmt.Fprintf(&b, "%g\x00", f)
			continue
		}
		fmt.Fprintf(&b, "%v\x00", v)
	}
	return b.String()
}

// NumericColumns returns the columns whose first non-missing value is numeric.
func (t *Table) NumericColumns() []string {
	var out []string
	for ci, c := range t.cols {
		for _, row := range t.rows {
			if row[ci] == nil {
				continue
			}
			if _, ok := AsFloat(row[ci]); ok {
				out = append(out, c)
			}
			break
		}
	}
	return out
}

// GroupBySum groups rows by the key columns and sums the given numeric columns
// within each group. Missing and non-numeric cells contribute zero. The result
// holds one row per group, in first-seen order, with columns keys+sums.
func (t *Table) GroupBySum(keys, sums []string) (*Table, error) {
	for _, c := range append(append([]string(nil), keys...), sums...) {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}
	out := New(append(append([]string(nil), keys...), sums...)...)
	groups := make(map[string]int)
	for i := range t.rows {
		kv := make([]any, len(keys))
		for j, k := range keys {
			kv[j] = t.Cell(i, k)
		}
		key := keyString(kv)
		gi, ok := groups[key]
		if !ok {
			gi = len(out.rows)
			groups[key] = gi
			vals := make([]any, len(keys)+len(sums))
			copy(vals, kv)
			for j := range sums {
				vals[len(keys)+j] = float64(0)
			}
			out.rows = append(out.rows, vals)
		}
		for j, s := range sums {
			if f, ok := AsFloat(t.Cell(i, s)); ok {
				acc, _ := AsFloat(out.rows[gi][len(keys)+j])
				out.rows[gi][len(keys)+j] = acc + f
			}
		}
	}
	return out, nil
}

// GroupByCount groups rows by the key columns and counts rows per group into a
// new column with the given name.
func (t *Table) GroupByCount(keys []string, name string) (*Table, error) {
	for _, c := range keys {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}
	out := New(append(append([]string(nil), keys...), name)...)
	groups := make(map[string]int)
	for i := range t.rows {
		kv := make([]any, len(keys))
		for j, k := range keys {
			kv[j] = t.Cell(i, k)
		}
		key := keyString(kv)
		gi, ok := groups[key]
		if !ok {
			gi = len(out.rows)
			groups[key] = gi
			vals := make([]any, len(keys)+1)
			copy(vals, kv)
			vals[len(keys)] = int64(0)
			out.rows = append(out.rows, vals)
		}
		n := out.rows[gi][len(keys)].(int64)
		out.rows[gi][len(keys)] = n + 1
	}
	return out, nil
}

// LeftJoin joins every row of left with the first matching row of right on the
// given key columns. Right-side key columns are dropped from the result; rows
// of left without a match keep missing values in the right-side columns.
func LeftJoin(left, right *Table, leftOn, rightOn []string) (*Table, error) {
	if len(leftOn) != len(rightOn) {
		return nil, fmt.Errorf("join key counts differ: %d vs %d", len(leftOn), len(rightOn))
	}
	for _, c := range leftOn {
		if !left.HasColumn(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}
	for _, c := range rightOn {
		if !right.HasColumn(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}

	rightKeys := make(map[string]bool, len(rightOn))
	for _, c := range rightOn {
		rightKeys[c] = true
	}
	var rightCols []string
	for _, c := range right.cols {
		if !rightKeys[c] && !left.HasColumn(c) {
			rightCols = append(rightCols, c)
		}
	}

	index := make(map[string]int, right.Len())
	for i := range right.rows {
		kv := make([]any, len(rightOn))
		for j, k := range rightOn {
			kv[j] = right.Cell(i, k)
		}
		key := keyString(kv)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	out := New(append(left.Columns(), rightCols...)...)
	for i := range left.rows {
		kv := make([]any, len(leftOn))
		for j, k := range leftOn {
			kv[j] = left.Cell(i, k)
		}
		vals := make([]any, 0, len(out.cols))
		vals = append(vals, left.rows[i]...)
		if ri, ok := index[keyString(kv)]; ok {
			for _, c := range rightCols {
				vals = append(vals, right.Cell(ri, c))
			}
		} else {
			for range rightCols {
				vals = append(vals, nil)
			}
		}
		out.rows = append(out.rows, vals)
	}
	return out, nil
}

// FillMissing replaces missing cells in the named columns with v. Unknown
// columns are ignored.
func (t *Table) FillMissing(cols []string, v any) {
	for _, c := range cols {
		ci, ok := t.idx[c]
		if !ok {
			continue
		}
		for i := range t.rows {
			if t.rows[i][ci] == nil {
				t.rows[i][ci] = v
			}
		}
	}
}

// DropDuplicates returns a new table keeping only the first row for each
// distinct combination of values in the subset columns.
func (t *Table) DropDuplicates(subset []string) *Table {
	seen := make(map[string]bool)
	return t.Filter(func(r Row) bool {
		kv := make([]any, len(subset))
		for j, c := range subset {
			kv[j] = r.Get(c)
		}
		key := keyString(kv)
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
}

// DropMissing returns a new table without the rows that hold a missing value
// in any of the subset columns.
func (t *Table) DropMissing(subset []string) *Table {
	return t.Filter(func(r Row) bool {
		for _, c := range subset {
			if r.Get(c) == nil {
				return false
			}
		}
		return true
	})
}

// Unique returns the distinct values of a column in first-seen order.
func (t *Table) Unique(col string) []any {
	seen := make(map[string]bool)
	var out []any
	for i := range t.rows {
		v := t.Cell(i, col)
		key := keyString([]any{v})
		if !seen[key] {
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// DowncastFloats converts columns holding only float64 values to float32.
// Missing cells are ignored; columns with no float64 values are untouched.
func (t *Table) DowncastFloats() {
	for ci := range t.cols {
		all := true
		some := false
		for _, row := range t.rows {
			if row[ci] == nil {
				continue
			}
			if _, ok := row[ci].(float64); ok {
				some = true
			} else {
				all = false
				break
			}
		}
		if !all || !some {
			continue
		}
		for i := range t.rows {
			if f, ok := t.rows[i][ci].(float64); ok {
				t.rows[i][ci] = float32(f)
			}
		}
	}
}
