package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/dframe/cell"
)

// ParquetReader reads a flat Parquet file row by row.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	path   string
	file   *os.File
	pqFile *parquet.File
	rows   *parquet.Reader
	header []string
	kinds  []parquet.Kind
	buf    []parquet.Row
}

// NewParquetReader opens path and validates that its schema is flat.
//
// Returns *FileAccessError if the file cannot be opened and *ParseError if
// it is not a valid Parquet file or has nested or repeated columns.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, &FileAccessError{Path: path, Err: fmt.Errorf("failed to stat file: %w", err)}
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to open parquet file: %w", err)}
	}

	fields := pqFile.Schema().Fields()
	header := make([]string, len(fields))
	kinds := make([]parquet.Kind, len(fields))
	for i, field := range fields {
		if len(field.Fields()) > 0 || field.Repeated() {
			_ = file.Close()
			return nil, &ParseError{Path: path, Err: fmt.Errorf("column %q: nested and repeated columns are not supported", field.Name())}
		}
		header[i] = field.Name()
		kinds[i] = field.Type().Kind()
	}

	return &ParquetReader{
		path:   path,
		file:   file,
		pqFile: pqFile,
		rows:   parquet.NewReader(pqFile),
		header: header,
		kinds:  kinds,
		buf:    make([]parquet.Row, 1),
	}, nil
}

// Header returns the column names in schema order.
func (r *ParquetReader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// NumRows returns the row count recorded in the file metadata.
func (r *ParquetReader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// Next returns the next row converted to cell values, or io.EOF.
func (r *ParquetReader) Next() ([]cell.Value, error) {
	n, err := r.rows.ReadRows(r.buf)
	if n == 0 {
		// Use errors.Is for proper EOF detection
		if err == nil || errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, &ParseError{Path: r.path, Err: fmt.Errorf("failed to read row: %w", err)}
	}

	fields := make([]cell.Value, len(r.header))
	for _, v := range r.buf[0] {
		col := v.Column()
		if col < 0 || col >= len(fields) {
			return nil, &ParseError{Path: r.path, Err: fmt.Errorf("value for unknown column index %d", col)}
		}
		fields[col] = convertValue(v, r.kinds[col])
	}
	return fields, nil
}

// Close closes the parquet reader and releases associated resources.
//
// It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.rows != nil {
		_ = r.rows.Close()
		r.rows = nil
	}
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// convertValue maps a parquet value onto the closed cell variant set.
func convertValue(v parquet.Value, kind parquet.Kind) cell.Value {
	if v.IsNull() {
		return cell.Text("")
	}

	switch kind {
	case parquet.Int32:
		return cell.Int(int64(v.Int32()))
	case parquet.Int64:
		return cell.Int(v.Int64())
	case parquet.Float:
		return cell.Float(v.Float())
	case parquet.Double:
		return cell.Double(v.Double())
	case parquet.Boolean:
		return cell.Text(strconv.FormatBool(v.Boolean()))
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return cell.Text(string(v.ByteArray()))
	default:
		return cell.Text(v.String())
	}
}
