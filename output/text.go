package output

import (
	"io"

	"github.com/vegasq/dframe/frame"
)

// TextFormatter outputs the fixed-width layout of Table.Render
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new fixed-width text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TextFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table
func (f *TextFormatter) Format(t *frame.Table) error {
	return t.Render(f.writer)
}
