package frame

import "github.com/vegasq/dframe/cell"

// Table is an ordered sequence of rows plus the declared column names.
//
// The zero value is an empty table ready to use.
type Table struct {
	rows    []Row
	columns []string
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// AppendRow adds a copy of row at the end. Keys are not checked against the
// declared columns.
func (t *Table) AppendRow(row Row) {
	t.rows = append(t.rows, row.Clone())
}

// RowCount returns the number of stored rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColCount returns the number of entries in the first row, or 0 for an
// empty table. Rows are not required to share a width, so this can differ
// from len(Columns()).
func (t *Table) ColCount() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// Columns returns a copy of the declared column names.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// SetColumns replaces the declared column names with a copy of names.
func (t *Table) SetColumns(names []string) {
	t.columns = make([]string, len(names))
	copy(t.columns, names)
}

// Row returns a copy of the i-th row.
func (t *Table) Row(i int) (Row, bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i].Clone(), true
}

// Rows returns copies of all rows in insertion order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// Record returns the i-th row's values in declared column order. It panics
// if i is out of range.
//
// Returns *MissingColumnError if the row lacks a declared column.
func (t *Table) Record(i int) ([]cell.Value, error) {
	row := t.rows[i]
	values := make([]cell.Value, len(t.columns))
	for j, col := range t.columns {
		v, ok := row[col]
		if !ok {
			return nil, &MissingColumnError{Row: i, Column: col}
		}
		values[j] = v
	}
	return values, nil
}

// Head returns a new table with the same columns and at most the first n
// rows. A negative n keeps every row.
func (t *Table) Head(n int) *Table {
	if n < 0 || n > len(t.rows) {
		n = len(t.rows)
	}
	out := &Table{rows: make([]Row, n)}
	out.SetColumns(t.columns)
	for i := 0; i < n; i++ {
		out.rows[i] = t.rows[i].Clone()
	}
	return out
}
