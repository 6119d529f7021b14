package frame

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vegasq/dframe/cell"
)

func TestRender_Format(t *testing.T) {
	tbl := New()
	tbl.SetColumns([]string{"name", "age"})
	tbl.AppendRow(Row{"name": cell.Text("Bob"), "age": cell.Int(30)})

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "name           age            \n" +
		strings.Repeat("-", 30) + "\n" +
		"Bob            30             \n"
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRender_UsesDeclaredOrder(t *testing.T) {
	tbl := New()
	tbl.SetColumns([]string{"c", "a", "b"})
	tbl.AppendRow(Row{"a": cell.Int(1), "b": cell.Double(2.5), "c": cell.Float(0.5), "extra": cell.Text("ignored")})

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[2] != pad("0.5")+pad("1")+pad("2.5") {
		t.Errorf("data line = %q", lines[2])
	}
	if strings.Contains(buf.String(), "ignored") {
		t.Error("undeclared column should not be rendered")
	}
}

func TestRender_WideFieldsNotTruncated(t *testing.T) {
	tbl := New()
	long := "a_column_name_longer_than_fifteen"
	tbl.SetColumns([]string{long, "b"})
	tbl.AppendRow(Row{long: cell.Text("v"), "b": cell.Text("0123456789abcdefghij")})

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != long+"b"+strings.Repeat(" ", 14) {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", 30) {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[2] != "v"+strings.Repeat(" ", 14)+"0123456789abcdefghij" {
		t.Errorf("data line = %q", lines[2])
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "\n\n" {
		t.Errorf("Render() of empty table = %q, want two newlines", buf.String())
	}
}

func TestRender_MissingColumn(t *testing.T) {
	tbl := New()
	tbl.SetColumns([]string{"name", "age"})
	tbl.AppendRow(Row{"name": cell.Text("Ann"), "age": cell.Int(41)})
	tbl.AppendRow(Row{"name": cell.Text("Bob")})
	tbl.AppendRow(Row{"name": cell.Text("Cy"), "age": cell.Int(7)})

	var buf bytes.Buffer
	err := tbl.Render(&buf)

	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("Render() error = %v, want *MissingColumnError", err)
	}
	if mce.Row != 1 || mce.Column != "age" {
		t.Errorf("MissingColumnError = %+v, want row 1 column age", mce)
	}

	// Header, separator and the first row were written before the failure.
	out := buf.String()
	if !strings.Contains(out, "Ann") {
		t.Errorf("partial output should include the first row, got %q", out)
	}
	if strings.Contains(out, "Bob") || strings.Contains(out, "Cy") {
		t.Errorf("output should stop at the failing row, got %q", out)
	}
}

func TestRender_ShortCSVLineFails(t *testing.T) {
	path := writeFile(t, "short.csv", "a,b,c\n1,2\n")
	tbl := New()
	if err := tbl.ReadCSV(path); err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	var mce *MissingColumnError
	if err := tbl.Render(&bytes.Buffer{}); !errors.As(err, &mce) {
		t.Fatalf("Render() error = %v, want *MissingColumnError", err)
	}
	if mce.Column != "c" {
		t.Errorf("Column = %q, want c", mce.Column)
	}
}

func TestWriteTo(t *testing.T) {
	tbl := New()
	tbl.SetColumns([]string{"x"})
	tbl.AppendRow(Row{"x": cell.Int(1)})

	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d bytes, buffer holds %d", n, buf.Len())
	}
	if n != 3*(ColumnWidth+1) {
		t.Errorf("WriteTo() = %d bytes, want %d", n, 3*(ColumnWidth+1))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestRender_WriterError(t *testing.T) {
	tbl := New()
	tbl.SetColumns([]string{"x"})
	if err := tbl.Render(failingWriter{}); err == nil || err.Error() != "sink closed" {
		t.Errorf("Render() error = %v, want sink closed", err)
	}
}

func TestRender_NonASCIIWidth(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantRunes int
	}{
		{"greek", "αβγ", ColumnWidth},
		{"accented latin", "é", ColumnWidth},
		{"mixed narrow", "naïve café", ColumnWidth},
		{"cjk wide", "日本", ColumnWidth - 2},
	}

	// Ambiguous-width runes must not depend on the locale.
	for _, locale := range []string{"C", "ja_JP.UTF-8"} {
		t.Run(locale, func(t *testing.T) {
			t.Setenv("LC_ALL", locale)
			t.Setenv("LC_CTYPE", locale)
			t.Setenv("LANG", locale)

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					tbl := New()
					tbl.SetColumns([]string{"v"})
					tbl.AppendRow(Row{"v": cell.Text(tt.value)})

					var buf bytes.Buffer
					if err := tbl.Render(&buf); err != nil {
						t.Fatalf("Render() error = %v", err)
					}

					line := strings.Split(buf.String(), "\n")[2]
					if !strings.HasPrefix(line, tt.value) {
						t.Fatalf("data line = %q, want prefix %q", line, tt.value)
					}
					if got := utf8.RuneCountInString(line); got != tt.wantRunes {
						t.Errorf("data line %q has %d runes, want %d", line, got, tt.wantRunes)
					}
				})
			}
		})
	}
}
