package frame

import "fmt"

// MissingColumnError reports a row without an entry for a declared column.
// Row is the 0-based row index, or -1 when the row is not part of a table.
type MissingColumnError struct {
	Row    int
	Column string
}

func (e *MissingColumnError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("missing column %q", e.Column)
	}
	return fmt.Sprintf("row %d: missing column %q", e.Row, e.Column)
}
