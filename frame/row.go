package frame

import "github.com/vegasq/dframe/cell"

// Row is one record, keyed by column name.
type Row map[string]cell.Value

// Get returns the value stored under column, or *MissingColumnError.
func (r Row) Get(column string) (cell.Value, error) {
	v, ok := r[column]
	if !ok {
		return cell.Value{}, &MissingColumnError{Row: -1, Column: column}
	}
	return v, nil
}

// Clone returns a shallow copy of r. Values are immutable, so the copy
// shares nothing mutable with r.
func (r Row) Clone() Row {
	if r == nil {
		return Row{}
	}
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
