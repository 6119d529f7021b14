package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vegasq/dframe/cell"
	"github.com/vegasq/dframe/frame"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *frame.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

var constructors = map[string]func(io.Writer) Formatter{
	"text":  func(w io.Writer) Formatter { return NewTextFormatter(w) },
	"table": func(w io.Writer) Formatter { return NewTableFormatter(w) },
	"csv":   func(w io.Writer) Formatter { return NewCSVFormatter(w) },
	"jsonl": func(w io.Writer) Formatter { return NewJSONFormatter(w) },
	"json":  func(w io.Writer) Formatter { return NewJSONArrayFormatter(w) },
}

// New returns the formatter registered under name.
func New(name string, w io.Writer) (Formatter, error) {
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(w), nil
}

// Names lists the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// view is a table's columns plus a row accessor that honours the
// declared-or-union rule described in the package docs.
type view struct {
	table    *frame.Table
	columns  []string
	declared bool
}

func newView(t *frame.Table) view {
	if cols := t.Columns(); len(cols) > 0 {
		return view{table: t, columns: cols, declared: true}
	}

	// Extract all unique column names from all rows (in case of heterogeneous schemas)
	columnSet := make(map[string]bool)
	for _, row := range t.Rows() {
		for col := range row {
			columnSet[col] = true
		}
	}
	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	return view{table: t, columns: columns}
}

// record returns row i's values in view column order. present[j] is false
// for keys filled in as empty under the union fallback.
func (v view) record(i int) (values []cell.Value, present []bool, err error) {
	present = make([]bool, len(v.columns))
	if v.declared {
		values, err = v.table.Record(i)
		if err != nil {
			return nil, nil, err
		}
		for j := range present {
			present[j] = true
		}
		return values, present, nil
	}

	row, _ := v.table.Row(i)
	values = make([]cell.Value, len(v.columns))
	for j, col := range v.columns {
		values[j], present[j] = row[col]
	}
	return values, present, nil
}
