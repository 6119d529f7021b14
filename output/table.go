package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/dframe/frame"
)

// TableFormatter outputs a bordered grid
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new grid formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the table as a grid. Nothing is written if any row fails,
// since tablewriter lays out the whole grid at once.
func (f *TableFormatter) Format(t *frame.Table) error {
	v := newView(t)

	tw := tablewriter.NewWriter(f.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(v.columns)

	for i := 0; i < t.RowCount(); i++ {
		values, _, err := v.record(i)
		if err != nil {
			return err
		}
		line := make([]string, len(values))
		for j, val := range values {
			line[j] = val.String()
		}
		tw.Append(line)
	}

	tw.Render()
	return nil
}
