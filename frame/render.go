package frame

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnWidth is the minimum display width of every rendered field.
//
// Width is counted in terminal cells: one per rune, two for East Asian wide
// runes such as 日本. Ambiguous-width runes (Greek, accented Latin) always
// count as one cell regardless of the process locale. For ASCII this is the
// plain 15-character rule.
const ColumnWidth = 15

// cellWidth measures text independently of LC_ALL, LC_CTYPE and LANG.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

// Render writes the table as fixed-width text to w.
//
// Each row is written as one complete line, so when a row fails with
// *MissingColumnError every earlier line has already reached w.
func (t *Table) Render(w io.Writer) error {
	var line strings.Builder

	for _, col := range t.columns {
		line.WriteString(pad(col))
	}
	line.WriteByte('\n')
	line.WriteString(strings.Repeat("-", ColumnWidth*len(t.columns)))
	line.WriteByte('\n')
	if _, err := io.WriteString(w, line.String()); err != nil {
		return err
	}

	for i := range t.rows {
		values, err := t.Record(i)
		if err != nil {
			return err
		}

		line.Reset()
		for _, v := range values {
			line.WriteString(pad(v.String()))
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}

	return nil
}

// WriteTo implements io.WriterTo by rendering the table.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := t.Render(cw)
	return cw.n, err
}

// pad left-justifies s in a ColumnWidth field without truncating.
func pad(s string) string {
	return cellWidth.FillRight(s, ColumnWidth)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
