package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/dframe/cell"
)

// numericRegex accepts integers, decimals and scientific notation. It keeps
// strconv from turning tokens like "Inf", "NaN" or "0x1p-2" into numbers.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

const utf8BOM = "\ufeff"

// Options configures a CSVReader. The zero value reads comma-separated
// input with strict quoting.
type Options struct {
	// Comma is the field delimiter (default ',').
	Comma rune

	// Comment, if set, marks lines to skip when it is the first character.
	Comment rune

	// LazyQuotes allows quotes to appear in unquoted fields.
	LazyQuotes bool
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// Validate reports whether the delimiter and comment runes are usable.
func (o Options) Validate() error {
	comma := o.comma()
	if comma == '"' || comma == '\r' || comma == '\n' || comma == utf8.RuneError || !utf8.ValidRune(comma) {
		return fmt.Errorf("invalid delimiter %q", comma)
	}
	if o.Comment != 0 && o.Comment == comma {
		return fmt.Errorf("comment character %q must differ from delimiter", o.Comment)
	}
	return nil
}

// CSVReader reads a delimited file with a mandatory header line.
type CSVReader struct {
	path   string
	file   *os.File
	stream io.ReadCloser
	csv    *csv.Reader
	header []string
}

// NewCSVReader opens path, applies decompression by extension and reads the
// header line.
//
// Returns *FileAccessError if the file cannot be opened and *ParseError if
// the header is missing, malformed or contains duplicate names.
func NewCSVReader(path string, opts Options) (*CSVReader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	stream, err := decompress(path, file)
	if err != nil {
		_ = file.Close()
		return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to open compressed stream: %w", err)}
	}

	cr := csv.NewReader(stream)
	cr.Comma = opts.comma()
	cr.Comment = opts.Comment
	cr.LazyQuotes = opts.LazyQuotes
	// Row width is checked against the header in Next.
	cr.FieldsPerRecord = -1

	r := &CSVReader{
		path:   path,
		file:   file,
		stream: stream,
		csv:    cr,
	}

	header, err := cr.Read()
	if err != nil {
		_ = r.Close()
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Line: 1, Err: errors.New("missing header line")}
		}
		return nil, r.classify(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if !utf8.ValidString(name) {
			_ = r.Close()
			return nil, &ParseError{Path: path, Line: 1, Err: fmt.Errorf("invalid UTF-8 in header %q", name)}
		}
		if seen[name] {
			_ = r.Close()
			return nil, &ParseError{Path: path, Line: 1, Err: fmt.Errorf("duplicate column name %q", name)}
		}
		seen[name] = true
	}
	r.header = header

	return r, nil
}

// Header returns the column names in file order.
func (r *CSVReader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// Next returns the typed fields of the next data line, or io.EOF.
//
// A line with more fields than the header is a *ParseError. A line with
// fewer fields is returned as is.
func (r *CSVReader) Next() ([]cell.Value, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, r.classify(err)
	}

	line, _ := r.csv.FieldPos(0)
	if len(record) > len(r.header) {
		return nil, &ParseError{
			Path: r.path,
			Line: line,
			Err:  fmt.Errorf("record has %d fields, header declares %d", len(record), len(r.header)),
		}
	}

	fields := make([]cell.Value, len(record))
	for i, tok := range record {
		if !utf8.ValidString(tok) {
			return nil, &ParseError{Path: r.path, Line: line, Err: fmt.Errorf("invalid UTF-8 in column %q", r.header[i])}
		}
		fields[i] = InferValue(tok)
	}
	return fields, nil
}

// Close releases the decompressor and the file handle. It is safe to call
// Close multiple times.
func (r *CSVReader) Close() error {
	var streamErr error
	if r.stream != nil {
		streamErr = r.stream.Close()
		r.stream = nil
	}
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		if err != nil {
			return err
		}
	}
	return streamErr
}

// classify maps a read failure onto the error taxonomy: I/O errors on the
// underlying file are access errors, everything else is a parse error.
func (r *CSVReader) classify(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Path: r.path, Line: csvErr.Line, Err: csvErr.Err}
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &FileAccessError{Path: r.path, Err: err}
	}
	return &ParseError{Path: r.path, Err: err}
}

// InferValue types a single delimited token.
func InferValue(tok string) cell.Value {
	s := strings.TrimSpace(tok)
	if s == "" || !numericRegex.MatchString(s) {
		return cell.Text(tok)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return cell.Int(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return cell.Text(tok)
	}
	return cell.Double(f)
}
